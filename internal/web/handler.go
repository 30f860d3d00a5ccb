// Package web serves the lookup form and renders lookup results as HTML.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/qepting91/reddit-book-reviews/internal/domain"
	"github.com/qepting91/reddit-book-reviews/internal/review"
)

const pageTitle = "Reddit Book Review Summarizer"

// Lookuper runs one review lookup for a title.
type Lookuper interface {
	Lookup(ctx context.Context, title string) (review.Outcome, error)
}

// Handler is the HTML front end of the lookup service.
type Handler struct {
	lookups Lookuper
	logger  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(lookups Lookuper, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{lookups: lookups, logger: logger}
}

// Index renders the empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	form := FormView{Title: defaultTitle, CSRF: csrfToken(w, r)}
	h.render(w, r, http.StatusOK, Layout(pageTitle, LookupForm(form)))
}

// Summary runs a lookup for the submitted title and renders its outcome.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		h.logger.Warn("CSRF validation failed", "remote", r.RemoteAddr)
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	form := FormView{Title: title, CSRF: csrfToken(w, r)}

	out, err := h.lookups.Lookup(r.Context(), title)
	if err != nil {
		form.Error = inputMessage(err)
		status := http.StatusBadRequest
		if form.Error == "" {
			h.logger.Error("Lookup rejected", "err", err)
			form.Error = "The lookup could not be started."
			status = http.StatusInternalServerError
		}
		h.render(w, r, status, Layout(pageTitle, LookupForm(form)))
		return
	}

	status := http.StatusOK
	if out.Kind == review.OutcomeCollectionFailed || out.Kind == review.OutcomeSummarizationFailed {
		status = http.StatusBadGateway
	}
	h.render(w, r, status, Layout(pageTitle, LookupForm(form), Result(toResultView(out))))
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func inputMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return "Please enter a book title."
	case errors.Is(err, domain.ErrInvalidLimit):
		return "Post and comment limits must be positive."
	case errors.Is(err, domain.ErrNoForums):
		return "No forums are configured to search."
	default:
		return ""
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}
