// internal/app/features/wizard/selections.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
)

type selectionsRequest struct {
	Sectors []string `json:"sectors"`
	Filters []string `json:"filters"`
}

// HandleSelections replaces the draft's selected domains and filters. Every
// id is resolved against the live catalog before anything is stored.
func (h *Handler) HandleSelections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	var req selectionsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if err := survey.SetSelections(ctx, h.Catalog, d, req.Sectors, req.Filters); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}
