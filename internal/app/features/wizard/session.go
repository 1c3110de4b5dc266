// internal/app/features/wizard/session.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
	"github.com/impactlens/impactlens/internal/app/system/authz"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createDraftRequest struct {
	// OrganizationID asks for identity prefill from the directory. Only
	// admins author on behalf of another organization.
	OrganizationID string `json:"organization_id,omitempty"`
}

// HandleCreate starts a new authoring session. The draft arrives pre-seeded
// with the fixed question sets and positioned at the basic-info step.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	var req createDraftRequest
	if r.ContentLength > 0 {
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(h.Log, w, err)
			return
		}
	}

	user, _ := auth.CurrentUser(r)

	var identity models.OrganizationIdentity
	if req.OrganizationID != "" {
		if !authz.IsAdmin(r) {
			httpjson.WriteError(h.Log, w, fault.New(fault.Permission, "organization_id", "only admins author on behalf of an organization"))
			return
		}
		oid, err := primitive.ObjectIDFromHex(req.OrganizationID)
		if err != nil {
			httpjson.WriteError(h.Log, w, fault.Validationf("organization_id", "%q is not a valid organization id", req.OrganizationID))
			return
		}
		org, err := h.Orgs.GetByID(ctx, oid)
		if err != nil {
			httpjson.WriteError(h.Log, w, fault.Validationf("organization_id", "organization %s not found", req.OrganizationID))
			return
		}
		identity = org.Identity()
	}

	d := survey.NewDraft(user.ID, identity)
	if err := h.Drafts.Put(ctx, d); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("draft created", zap.String("draft_id", d.ID), zap.String("owner_id", user.ID))
	httpjson.Write(h.Log, w, http.StatusCreated, d)
}

// ServeDraft returns the current draft state.
func (h *Handler) ServeDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, d)
}

// HandleDiscard cancels the authoring session outright.
func (h *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if err := h.Drafts.Delete(ctx, d.ID); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("draft discarded", zap.String("draft_id", d.ID))
	httpjson.Write(h.Log, w, http.StatusNoContent, nil)
}
