// internal/app/features/catalog/handler.go
package catalog

import (
	"time"

	"github.com/impactlens/impactlens/internal/app/survey"
	"go.uber.org/zap"
)

const (
	catalogShortTimeout = 5 * time.Second
	catalogLongTimeout  = 30 * time.Second // domain removal scans live drafts
)

// Handler exposes the shared catalog of impact domains and beneficiary
// filters. Reads are open to signed-in users; mutations are admin-only at
// the route level and re-checked by the service's elevated gate.
type Handler struct {
	Catalog *survey.Catalog
	Log     *zap.Logger
}

func NewHandler(catalog *survey.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Log: logger}
}
