// internal/app/features/catalog/routes.go
package catalog

import (
	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
)

// Routes mounts catalog routes under the base path (typically "/catalog").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Reads: any signed-in user picks from the catalog while authoring.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/domains", h.ServeDomains)
		pr.Get("/filters", h.ServeFilters)
	})

	// Mutations: admin only. The survey.Catalog service re-checks the
	// elevated gate, so a misrouted caller still gets a permission fault.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(survey.RoleAdmin))
		pr.Post("/domains", h.HandleCreateDomain)
		pr.Delete("/domains/{id}", h.HandleDeleteDomain)
		pr.Post("/filters", h.HandleCreateFilter)
		pr.Delete("/filters/{id}", h.HandleDeleteFilter)
	})

	return r
}
