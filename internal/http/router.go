package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the application router
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.IndexHandler)
	r.Post("/", h.SearchFormHandler)
	r.Post("/api/search", h.SearchHandler)
	r.Get("/health", HealthHandler)

	return r
}
