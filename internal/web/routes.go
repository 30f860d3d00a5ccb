package web

import "net/http"

// RegisterRoutes registers the form, result, stats and health routes.
func RegisterRoutes(mux *http.ServeMux, h *Handler, stats http.Handler) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /summary", h.Summary)
	mux.HandleFunc("GET /healthz", h.Healthz)
	if stats != nil {
		mux.Handle("GET /stats", stats)
	}
}
