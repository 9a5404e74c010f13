package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/DimaSavchenko/brokerage/internal/entity"
)

type Service interface {
	PayJob(ctx context.Context, jobID uuid.UUID) (entity.Payment, error)
	Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal) (entity.Profile, error)
	Contract(ctx context.Context, id uuid.UUID) (entity.Contract, error)
	Contracts(ctx context.Context) ([]entity.Contract, error)
	UnpaidJobs(ctx context.Context) ([]entity.Job, error)
	BestProfession(ctx context.Context, w entity.ReportWindow) (entity.ProfessionEarnings, error)
	BestClients(ctx context.Context, w entity.ReportWindow, limit uint64) ([]entity.ClientSpend, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type PayJobResponse struct {
	JobID       string    `json:"jobId"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"paymentDate"`
}

// PayJob transfers the job price from the caller to the contractor of
// the job's contract. All business failures map to 400 with a fixed
// message.
func (h *Handler) PayJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.FromString(chi.URLParam(r, "job_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Job not found")
		return
	}

	payment, err := h.s.PayJob(ctx, jobID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Job not found")
		case errors.Is(err, entity.ErrAlreadyPaid):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Already paid")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Wrong job id")
		case errors.Is(err, entity.ErrInsufficientFunds):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Insufficient funds")
		case errors.Is(err, entity.ErrUnauthenticated):
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Unauthenticated")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to pay job")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, PayJobResponse{
		JobID:       payment.JobID.String(),
		Amount:      payment.Amount.String(),
		PaymentDate: payment.PaidAt,
	})
}

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type DepositResponse struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
}

// Deposit credits a client balance, capped against their outstanding
// unpaid work.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Client not found")
		return
	}

	var req DepositRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	profile, err := h.s.Deposit(ctx, clientID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Client not found")
		case errors.Is(err, entity.ErrDepositLimitExceeded):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Deposit amount exceeds the maximum allowed")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Deposit amount must be positive")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to deposit")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, DepositResponse{
		ID:      profile.ID.String(),
		Balance: profile.Balance.String(),
	})
}

type ContractEntity struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	ContractorID string    `json:"contractorId"`
	Status       string    `json:"status"`
	Terms        string    `json:"terms"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (h *Handler) Contract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid contract id")
		return
	}

	contract, err := h.s.Contract(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Contract not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get contract")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, contractToAPI(contract))
}

type ContractsResponse struct {
	Contracts []ContractEntity `json:"contracts"`
}

func (h *Handler) Contracts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contracts, err := h.s.Contracts(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get contracts")
		return
	}

	resp := ContractsResponse{Contracts: make([]ContractEntity, 0, len(contracts))}
	for _, c := range contracts {
		resp.Contracts = append(resp.Contracts, contractToAPI(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type JobEntity struct {
	ID          string     `json:"id"`
	ContractID  string     `json:"contractId"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type UnpaidJobsResponse struct {
	Jobs []JobEntity `json:"jobs"`
}

func (h *Handler) UnpaidJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobs, err := h.s.UnpaidJobs(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get unpaid jobs")
		return
	}

	resp := UnpaidJobsResponse{Jobs: make([]JobEntity, 0, len(jobs))}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, JobEntity{
			ID:          j.ID.String(),
			ContractID:  j.ContractID.String(),
			Description: j.Description,
			Price:       j.Price.String(),
			Paid:        j.Paid,
			PaymentDate: j.PaymentDate,
			CreatedAt:   j.CreatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type BestProfessionResponse struct {
	BestProfession string `json:"bestProfession,omitempty"`
	Earned         string `json:"earned,omitempty"`
	Message        string `json:"message,omitempty"`
}

// BestProfession reports the top-earning profession over a payment-date
// window. An empty window is not an error: the response carries a
// "no data" message instead.
func (h *Handler) BestProfession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	window, err := parseReportWindow(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Both start and end parameters are required")
		return
	}

	res, err := h.s.BestProfession(ctx, window)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSON(ctx, w, http.StatusOK, BestProfessionResponse{Message: "no data"})
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get best profession")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, BestProfessionResponse{
		BestProfession: res.Profession,
		Earned:         res.Earned.String(),
	})
}

type BestClientEntity struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Paid     string `json:"paid"`
}

type BestClientsResponse struct {
	Clients []BestClientEntity `json:"clients"`
}

// BestClients reports the top-paying clients over a contract-creation
// window, limit defaulting to 2.
func (h *Handler) BestClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	window, err := parseReportWindow(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Both start and end parameters are required")
		return
	}

	clients, err := h.s.BestClients(ctx, window, parseLimit(r.URL.Query()))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get best clients")
		return
	}

	resp := BestClientsResponse{Clients: make([]BestClientEntity, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, BestClientEntity{
			ID:       c.ID.String(),
			FullName: c.FullName,
			Paid:     c.Paid.String(),
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// HealthHandler - returns service health status.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is unhealthy")
		return
	}
}

func contractToAPI(c entity.Contract) ContractEntity {
	return ContractEntity{
		ID:           c.ID.String(),
		ClientID:     c.ClientID.String(),
		ContractorID: c.ContractorID.String(),
		Status:       c.Status.String(),
		Terms:        c.Terms,
		CreatedAt:    c.CreatedAt,
	}
}

func parseReportWindow(url url.Values) (entity.ReportWindow, error) {
	start, err := parseDate(url.Get("start"))
	if err != nil {
		return entity.ReportWindow{}, err
	}

	end, err := parseDate(url.Get("end"))
	if err != nil {
		return entity.ReportWindow{}, err
	}

	return entity.ReportWindow{Start: start, End: end}, nil
}

// parseDate accepts a date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, entity.ErrInvalidArgument
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}

func parseLimit(url url.Values) uint64 {
	const (
		defaultLimit uint64 = 2
		maxLimit     uint64 = 100
	)

	limit, err := strconv.ParseUint(url.Get("limit"), 10, 64)
	if err != nil || limit == 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return limit
}
