package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

// apiEnvelope is the wire contract shared by every /api response: a success
// flag, the payload, an optional item count, and an error message on failure.
type apiEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"internal server error"}`))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, apiEnvelope{Success: true, Data: data})
}

func writeSuccessCount(ctx context.Context, w http.ResponseWriter, status int, data any, count int) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccessCount")
	defer span.End()

	writeJSON(ctx, w, status, apiEnvelope{Success: true, Data: data, Count: &count})
}

// writeError maps the error chain to a status code. Client faults echo the
// error text; server faults hide it behind the caller-provided fallback.
func writeError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := statusFor(ctx, err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = fallback
	}

	writeJSON(ctx, w, status, apiEnvelope{Success: false, Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, apiEnvelope{
		Success: false,
		Error:   "internal server error",
	})
}

func statusFor(ctx context.Context, err error) int {
	ctx, span := startSpan(ctx, "httpapi.statusFor")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrConstraint):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	default:
		// usecase.ErrDecode and storage failures land here.
		return http.StatusInternalServerError
	}
}
