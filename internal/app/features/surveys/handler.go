// internal/app/features/surveys/handler.go
package surveys

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	surveystore "github.com/impactlens/impactlens/internal/app/store/surveys"
	"github.com/impactlens/impactlens/internal/app/system/authz"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const surveysTimeout = 10 * time.Second

// Handler serves published survey definitions, read-only. Managers see their
// own surveys; admins see everything.
type Handler struct {
	Surveys *surveystore.Store
	Log     *zap.Logger
}

func NewHandler(store *surveystore.Store, logger *zap.Logger) *Handler {
	return &Handler{Surveys: store, Log: logger}
}

// ServeList lists published surveys visible to the caller.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), surveysTimeout)
	defer cancel()

	createdBy := ""
	if authz.IsManager(r) {
		_, _, userID, _ := authz.UserCtx(r)
		createdBy = userID
	}
	list, err := h.Surveys.List(ctx, createdBy)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, list)
}

// ServeView returns one published survey.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), surveysTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		httpjson.WriteError(h.Log, w, fault.Validationf("id", "%q is not a valid survey id", id))
		return
	}
	def, err := h.Surveys.GetByID(ctx, oid)
	if err == surveystore.ErrNotFound {
		httpjson.Write(h.Log, w, http.StatusNotFound, map[string]string{"error": "survey not found"})
		return
	}
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	if authz.IsManager(r) {
		_, _, userID, _ := authz.UserCtx(r)
		if def.CreatedByID != userID {
			httpjson.WriteError(h.Log, w, fault.New(fault.Permission, "id", "this survey belongs to another author"))
			return
		}
	}
	httpjson.Write(h.Log, w, http.StatusOK, def)
}
