package web

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/ruimonteiro/playerdesk/internal/domain/player"
	"github.com/ruimonteiro/playerdesk/internal/usecase"
)

var errRateLimited = errors.New("rate limit exceeded")

type errorPageData struct {
	Title   string
	Status  int
	Message string
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// renderError maps an error to a status code and renders the HTML
// error page. Client mistakes keep their message; server faults get a
// generic line so storage details never reach the browser.
func (h *Handler) renderError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusForError(err)

	message := "something went wrong"
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	var fieldErr player.ValidationError
	if errors.As(err, &fieldErr) {
		message = fieldErr.Error()
	}

	h.renderPage(ctx, w, status, "error", errorPageData{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}

func statusForError(err error) int {
	var fieldErr player.ValidationError
	switch {
	case errors.As(err, &fieldErr), errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, usecase.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		// Pool exhaustion and backend outages shed load rather than queue.
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
