// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
)

// Routes mounts the organization directory (typically at "/organizations").
// Directory maintenance is admin-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(survey.RoleAdmin))
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
