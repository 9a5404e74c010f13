package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/gofrs/uuid/v5"
)

type ctxKey int8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyProfileID
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		record.Add("request_id", v)
	}

	if v, ok := ctx.Value(ctxKeyProfileID).(string); ok {
		record.Add("profile_id", v)
	}

	return h.Handler.Handle(ctx, record)
}

func New(level, format string) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: sLevel,
	}

	l := slog.New(&Handler{newHandler(os.Stdout, format, opts)})

	slog.SetDefault(l)

	return l, nil
}

// newHandler falls back to JSON for any format other than "text".
func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func WithProfileID(ctx context.Context, profileID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeyProfileID, profileID.String())
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}
