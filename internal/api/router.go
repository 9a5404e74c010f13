package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.ProfileAuth)
			r.Get("/contracts", h.Contracts)
			r.Get("/contracts/{id}", h.Contract)
			r.Get("/jobs/unpaid", h.UnpaidJobs)
			r.Post("/jobs/{job_id}/pay", h.PayJob)
			r.Post("/balances/deposit/{client_id}", h.Deposit)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.ProfileAuth)
			r.Get("/best-profession", h.BestProfession)
			r.Get("/best-clients", h.BestClients)
		})
	})

	return mux
}
