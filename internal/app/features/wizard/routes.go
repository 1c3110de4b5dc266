// internal/app/features/wizard/routes.go
package wizard

import (
	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
)

// Routes mounts the authoring wizard under the base path (typically
// "/wizard"). Managers author for their own organization; admins may author
// on behalf of any organization. Draft ownership is enforced per request.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(survey.RoleManager, survey.RoleAdmin))

		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}", h.ServeDraft)
		pr.Delete("/{id}", h.HandleDiscard)

		pr.Put("/{id}/basics", h.HandleBasics)
		pr.Put("/{id}/selections", h.HandleSelections)

		pr.Post("/{id}/questions", h.HandleAddQuestion)
		pr.Delete("/{id}/questions/{qid}", h.HandleDeleteQuestion)

		pr.Post("/{id}/beneficiaries", h.HandleAddBeneficiary)
		pr.Post("/{id}/beneficiaries/import", h.HandleImport)
		pr.Delete("/{id}/beneficiaries/{bid}", h.HandleRemoveBeneficiary)

		pr.Put("/{id}/window", h.HandleWindow)

		pr.Post("/{id}/advance", h.HandleAdvance)
		pr.Post("/{id}/back", h.HandleBack)
		pr.Post("/{id}/publish", h.HandlePublish)
	})

	return r
}
