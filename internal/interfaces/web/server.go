package web

import (
	"net/http"

	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
	"github.com/ruimonteiro/playerdesk/internal/platform/ratelimit"
)

// RouterConfig carries the rate-limit policy split: the default
// limiter guards every data route, the view limiter adds the stricter
// per-second rule on the listing and edit-view pages. /ping and
// /healthz stay exempt.
type RouterConfig struct {
	DefaultLimiter *ratelimit.Limiter
	ViewLimiter    *ratelimit.Limiter
	FailOpen       bool
}

func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	limited := func(next http.HandlerFunc) http.Handler {
		return handler.RateLimit(cfg.DefaultLimiter, cfg.FailOpen, next)
	}
	viewLimited := func(next http.HandlerFunc) http.Handler {
		return handler.RateLimit(cfg.ViewLimiter, cfg.FailOpen, next)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", handler.Ping)
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.Handle("GET /{$}", viewLimited(handler.PlayerIndex))
	mux.Handle("GET /players", viewLimited(handler.PlayerIndex))
	mux.Handle("GET /players/{playerAPIID}/update", viewLimited(handler.PlayerUpdateView))
	mux.Handle("POST /players/update", limited(handler.PlayerUpdateLookup))
	mux.Handle("POST /players/{playerAPIID}/update", limited(handler.PlayerUpdateSave))

	mux.Handle("GET /accounts", limited(handler.AccountIndex))
	mux.Handle("POST /accounts/{accountNumber}/delete", limited(handler.AccountDelete))

	return RequestTracing(RequestLogging(logger, handler.recoverPanic(mux)))
}
