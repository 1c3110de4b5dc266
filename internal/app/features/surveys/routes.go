// internal/app/features/surveys/routes.go
package surveys

import (
	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
)

// Routes mounts the published-survey routes (typically at "/surveys").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(survey.RoleManager, survey.RoleAdmin))
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
	})

	return r
}
