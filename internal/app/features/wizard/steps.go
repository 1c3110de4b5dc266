// internal/app/features/wizard/steps.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
)

// HandleAdvance moves the wizard one step forward. When the current step's
// guard fails the draft is untouched and the fault names the unmet
// condition.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if err := survey.Advance(d); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}

// HandleBack moves the wizard one step backward; always permitted.
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if err := survey.Back(d); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}
