// internal/app/features/wizard/publish.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// HandlePublish freezes the draft into an immutable SurveyDefinition. The
// whole draft is re-validated first: a catalog deletion after a step was
// passed can invalidate it retroactively. On success the definition is
// persisted and the draft session deleted; the draft is consumed.
func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardImportTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}

	def, err := survey.Publish(ctx, h.Catalog, d)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	saved, err := h.Surveys.Save(ctx, def)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	if err := h.Drafts.Delete(ctx, d.ID); err != nil {
		// The definition is already persisted; an expired draft key is the
		// same outcome, so log and carry on.
		h.Log.Warn("draft cleanup after publish failed", zap.String("draft_id", d.ID), zap.Error(err))
	}

	h.Log.Info("survey published",
		zap.String("draft_id", d.ID),
		zap.String("survey_id", saved.ID.Hex()),
		zap.Int("beneficiaries", len(saved.Beneficiaries)))
	httpjson.Write(h.Log, w, http.StatusCreated, saved)
}
