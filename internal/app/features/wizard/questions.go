// internal/app/features/wizard/questions.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/authz"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.uber.org/zap"
)

type addQuestionRequest struct {
	Phase             string              `json:"phase"`
	ApplyToBothPhases bool                `json:"apply_to_both_phases,omitempty"`
	Question          survey.QuestionSpec `json:"question"`
}

// HandleAddQuestion builds a question from the request body and appends it to
// the chosen phase, or to both phases atomically for symmetric before/after
// measurement of the same item.
func (h *Handler) HandleAddQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	var req addQuestionRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}

	q, err := survey.NewQuestion(ctx, h.Catalog, req.Question, authz.ActorCtx(r))
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	if err := survey.AddQuestion(d, req.Phase, q, req.ApplyToBothPhases); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}

// HandleDeleteQuestion removes a question from the phase given by the
// ?phase= query. Fixed questions stay put unless the caller is elevated.
func (h *Handler) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}

	phase := r.URL.Query().Get("phase")
	if phase == "" {
		phase = models.PhasePre
	}
	qid := chi.URLParam(r, "qid")
	if err := survey.DeleteQuestion(d, phase, qid, authz.ActorCtx(r)); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("question deleted", zap.String("draft_id", d.ID), zap.String("question_id", qid), zap.String("phase", phase))
	h.save(ctx, w, d)
}
