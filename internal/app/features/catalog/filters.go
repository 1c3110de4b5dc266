// internal/app/features/catalog/filters.go
package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/system/authz"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type createFilterRequest struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// ServeFilters lists all beneficiary filters.
func (h *Handler) ServeFilters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogShortTimeout)
	defer cancel()

	filters, err := h.Catalog.Filters(ctx)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	httpjson.Write(h.Log, w, http.StatusOK, filters)
}

// HandleCreateFilter creates a beneficiary classification filter.
func (h *Handler) HandleCreateFilter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogShortTimeout)
	defer cancel()

	var req createFilterRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	f, err := h.Catalog.AddFilter(ctx, authz.ActorCtx(r), req.Name, req.Type, req.Options)
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("filter created", zap.String("id", f.ID.Hex()), zap.String("name", f.Name))
	httpjson.Write(h.Log, w, http.StatusCreated, f)
}

// HandleDeleteFilter removes a filter and unselects it from live drafts.
func (h *Handler) HandleDeleteFilter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogLongTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Catalog.RemoveFilter(ctx, authz.ActorCtx(r), id); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("filter removed", zap.String("id", id))
	httpjson.Write(h.Log, w, http.StatusNoContent, nil)
}
