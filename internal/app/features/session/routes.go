// internal/app/features/session/routes.go
package session

import (
	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/system/auth"
)

// Routes mounts the session routes (typically at "/session").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeCurrent)
		pr.Delete("/", h.HandleDelete)
	})

	return r
}
