package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
	"github.com/ruimonteiro/playerdesk/internal/usecase"
)

//go:embed templates
var templateFS embed.FS

type Handler struct {
	playerService  *usecase.PlayerService
	accountService *usecase.AccountService
	logger         *logging.Logger
	validator      *validator.Validate
	templates      *template.Template
}

func NewHandler(
	playerService *usecase.PlayerService,
	accountService *usecase.AccountService,
	logger *logging.Logger,
) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	templates, err := template.New("playerdesk").Funcs(template.FuncMap{
		"datefmt": func(t interface{ Format(string) string }) string {
			return t.Format("2006-01-02 15:04:05")
		},
	}).ParseFS(templateFS,
		"templates/*.html",
		"templates/players/*.html",
		"templates/accounts/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{
		playerService:  playerService,
		accountService: accountService,
		logger:         logger,
		validator:      newFormValidator(),
		templates:      templates,
	}, nil
}

// renderPage executes the named template into a buffer first, so a
// template fault never leaks a half-written page with a 200 status.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.ErrorContext(ctx, "render template failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
