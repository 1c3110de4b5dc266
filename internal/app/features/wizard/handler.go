// internal/app/features/wizard/handler.go
package wizard

import (
	"context"
	"net/http"
	"time"

	draftstore "github.com/impactlens/impactlens/internal/app/store/drafts"
	organizationstore "github.com/impactlens/impactlens/internal/app/store/organizations"
	surveystore "github.com/impactlens/impactlens/internal/app/store/surveys"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/authz"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.uber.org/zap"
)

const (
	wizardShortTimeout  = 5 * time.Second
	wizardImportTimeout = 30 * time.Second
)

// Handler drives the survey-authoring wizard. Each request loads the draft
// session from the draft store, applies one core operation, and writes the
// draft back; the draft has a single writer, so no locking is needed here.
type Handler struct {
	Drafts  *draftstore.Store
	Catalog *survey.Catalog
	Surveys *surveystore.Store
	Orgs    *organizationstore.Store
	Log     *zap.Logger
}

func NewHandler(drafts *draftstore.Store, catalog *survey.Catalog, surveys *surveystore.Store, orgs *organizationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Drafts: drafts, Catalog: catalog, Surveys: surveys, Orgs: orgs, Log: logger}
}

// loadDraft fetches the draft named in the URL and enforces ownership.
// It writes the response itself on failure and returns nil.
func (h *Handler) loadDraft(ctx context.Context, w http.ResponseWriter, r *http.Request, id string) *models.SurveyDraft {
	d, err := h.Drafts.Get(ctx, id)
	if err == draftstore.ErrNotFound {
		httpjson.Write(h.Log, w, http.StatusNotFound, notFoundBody(id))
		return nil
	}
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return nil
	}
	if !authz.CanEditDraft(r, d.OwnerID) {
		httpjson.WriteError(h.Log, w, fault.New(fault.Permission, "draft_id", "this draft belongs to another author"))
		return nil
	}
	return d
}

// save writes the draft back and renders it.
func (h *Handler) save(ctx context.Context, w http.ResponseWriter, d *models.SurveyDraft) {
	if err := h.Drafts.Put(ctx, d); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, d)
}

type notFound struct {
	Error struct {
		Kind string `json:"kind"`
		ID   string `json:"id"`
		Msg  string `json:"message"`
	} `json:"error"`
}

func notFoundBody(id string) notFound {
	var body notFound
	body.Error.Kind = "not_found"
	body.Error.ID = id
	body.Error.Msg = "draft not found or expired"
	return body
}
