// internal/app/features/wizard/basics.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/models"
)

type basicsRequest struct {
	Title        string                      `json:"title"`
	Description  string                      `json:"description"`
	Organization models.OrganizationIdentity `json:"organization"`
}

// HandleBasics updates title, description, and the organization identity.
func (h *Handler) HandleBasics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	var req basicsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	survey.SetBasics(d, req.Title, req.Description, req.Organization)
	h.save(ctx, w, d)
}
