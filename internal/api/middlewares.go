package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/DimaSavchenko/brokerage/internal/entity"
	"github.com/DimaSavchenko/brokerage/pkg/logger"
)

// ProfileIDHeader carries the resolved caller identity. Upstream auth is
// trusted unconditionally: whoever can set this header acts as that
// profile.
const ProfileIDHeader = "X-Profile-Id"

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type ProfileProvider interface {
	Profile(ctx context.Context, id uuid.UUID) (entity.Profile, error)
}

type Middleware struct {
	profiles ProfileProvider
}

func NewMiddleware(profiles ProfileProvider) *Middleware {
	return &Middleware{
		profiles: profiles,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ProfileAuth resolves the caller profile from the X-Profile-Id header
// and attaches it to the request context.
func (m *Middleware) ProfileAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rawID := r.Header.Get(ProfileIDHeader)
		if rawID == "" {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "Profile id is missing")
			return
		}

		id, err := uuid.FromString(rawID)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Invalid profile id")
			return
		}

		profile, err := m.profiles.Profile(ctx, id)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Profile not found")
			} else {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to resolve profile")
			}

			return
		}

		ctx = entity.CtxWithProfile(ctx, profile)
		ctx = logger.WithProfileID(ctx, profile.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
