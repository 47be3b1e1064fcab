package web

import "net/http"

// Ping is the liveness probe. It never touches storage and is exempt
// from rate limiting, so it answers even when the database or limiter
// backend is down.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "playerdesk is alive",
		"status":  "success",
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
