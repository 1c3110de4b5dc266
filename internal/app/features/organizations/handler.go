// internal/app/features/organizations/handler.go
package organizations

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	organizationstore "github.com/impactlens/impactlens/internal/app/store/organizations"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const orgsTimeout = 10 * time.Second

// Handler manages the organization directory used for draft identity
// prefill when an admin authors on another organization's behalf.
type Handler struct {
	Orgs *organizationstore.Store
	Log  *zap.Logger
}

func NewHandler(store *organizationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Orgs: store, Log: logger}
}

type createOrgRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

// ServeList lists all organizations.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), orgsTimeout)
	defer cancel()

	orgs, err := h.Orgs.List(ctx)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, orgs)
}

// ServeView returns one organization; used for identity prefill.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), orgsTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		httpjson.WriteError(h.Log, w, fault.Validationf("id", "%q is not a valid organization id", id))
		return
	}
	org, err := h.Orgs.GetByID(ctx, oid)
	if err == organizationstore.ErrNotFound {
		httpjson.Write(h.Log, w, http.StatusNotFound, map[string]string{"error": "organization not found"})
		return
	}
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, org)
}

// HandleCreate registers an organization in the directory.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), orgsTimeout)
	defer cancel()

	var req createOrgRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	org, err := h.Orgs.Create(ctx, models.Organization{
		Name:    req.Name,
		Email:   req.Email,
		Website: req.Website,
		LogoURL: req.LogoURL,
	})
	if err == organizationstore.ErrDuplicateOrganization {
		httpjson.WriteError(h.Log, w, fault.New(fault.Duplicate, "name", err.Error()))
		return
	}
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("organization created", zap.String("id", org.ID.Hex()), zap.String("name", org.Name))
	httpjson.Write(h.Log, w, http.StatusCreated, org)
}
