// internal/app/features/catalog/domains.go
package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/system/authz"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type createDomainRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ServeDomains lists all impact domains.
func (h *Handler) ServeDomains(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogShortTimeout)
	defer cancel()

	domains, err := h.Catalog.Domains(ctx)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, domains)
}

// HandleCreateDomain creates an impact domain.
func (h *Handler) HandleCreateDomain(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogShortTimeout)
	defer cancel()

	var req createDomainRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	d, err := h.Catalog.AddDomain(ctx, authz.ActorCtx(r), req.Name, req.Description)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("domain created", zap.String("id", d.ID.Hex()), zap.String("name", d.Name))
	httpjson.Write(h.Log, w, http.StatusCreated, d)
}

// HandleDeleteDomain removes a domain and unselects it from live drafts.
func (h *Handler) HandleDeleteDomain(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogLongTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Catalog.RemoveDomain(ctx, authz.ActorCtx(r), id); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("domain removed", zap.String("id", id))
	httpjson.Write(h.Log, w, http.StatusNoContent, nil)
}
