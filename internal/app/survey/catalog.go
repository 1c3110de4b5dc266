// internal/app/survey/catalog.go
package survey

import (
	"context"
	"strings"

	"github.com/impactlens/impactlens/internal/app/system/sanitize"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// CatalogReader is the read capability handed to draft and publish
// operations. Injected rather than ambient so tests can use a fake catalog
// and deployments can run per-tenant catalogs later.
type CatalogReader interface {
	// DomainActive reports whether the domain exists and is active.
	DomainActive(ctx context.Context, id string) (bool, error)
	// FilterActive reports whether the filter exists and is active.
	FilterActive(ctx context.Context, id string) (bool, error)
}

// CatalogStore is the persistence behind the catalog service.
type CatalogStore interface {
	CatalogReader

	InsertDomain(ctx context.Context, d models.Domain) (models.Domain, error)
	DeleteDomain(ctx context.Context, id string) (int64, error)
	ListDomains(ctx context.Context) ([]models.Domain, error)

	InsertFilter(ctx context.Context, f models.Filter) (models.Filter, error)
	DeleteFilter(ctx context.Context, id string) (int64, error)
	ListFilters(ctx context.Context) ([]models.Filter, error)
}

// DraftCascader removes a deleted catalog entry from every live draft's
// selections. Questions referencing a deleted domain are left alone on
// purpose; they surface as dangling references at publish.
type DraftCascader interface {
	UnselectSector(ctx context.Context, domainID string) error
	UnselectFilter(ctx context.Context, filterID string) error
}

// Catalog is the shared reference-list service. Reads are open to every
// caller; mutations require an elevated actor.
type Catalog struct {
	store  CatalogStore
	drafts DraftCascader
}

// NewCatalog builds the catalog service over its store and the draft
// cascade target.
func NewCatalog(store CatalogStore, drafts DraftCascader) *Catalog {
	return &Catalog{store: store, drafts: drafts}
}

// AddDomain creates an active impact domain.
func (c *Catalog) AddDomain(ctx context.Context, actor Actor, name, description string) (models.Domain, error) {
	if !actor.Elevated() {
		return models.Domain{}, fault.New(fault.Permission, "role", "catalog changes require an elevated role")
	}
	name = sanitize.Text(name)
	if name == "" {
		return models.Domain{}, fault.New(fault.Validation, "name", "name is required")
	}
	return c.store.InsertDomain(ctx, models.Domain{
		Name:        name,
		Description: sanitize.Text(description),
		IsActive:    true,
	})
}

// RemoveDomain deletes a domain and unselects it from every live draft.
func (c *Catalog) RemoveDomain(ctx context.Context, actor Actor, id string) error {
	if !actor.Elevated() {
		return fault.New(fault.Permission, "role", "catalog changes require an elevated role")
	}
	n, err := c.store.DeleteDomain(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fault.New(fault.Validation, "id", "domain not found")
	}
	return c.drafts.UnselectSector(ctx, id)
}

// AddFilter creates an active beneficiary classification filter. Blank
// options are dropped before the emptiness check.
func (c *Catalog) AddFilter(ctx context.Context, actor Actor, name, ftype string, options []string) (models.Filter, error) {
	if !actor.Elevated() {
		return models.Filter{}, fault.New(fault.Permission, "role", "catalog changes require an elevated role")
	}
	name = sanitize.Text(name)
	if name == "" {
		return models.Filter{}, fault.New(fault.Validation, "name", "name is required")
	}
	if !models.ValidFilterType(ftype) {
		return models.Filter{}, fault.Validationf("type", "unknown filter type %q", ftype)
	}
	cleaned := sanitize.Slice(append([]string(nil), options...))
	kept := make([]string, 0, len(cleaned))
	for _, opt := range cleaned {
		if opt != "" {
			kept = append(kept, opt)
		}
	}
	if len(kept) == 0 {
		return models.Filter{}, fault.New(fault.Validation, "options", "at least one non-blank option is required")
	}
	return c.store.InsertFilter(ctx, models.Filter{
		Name:     name,
		Type:     ftype,
		Options:  kept,
		IsActive: true,
	})
}

// RemoveFilter deletes a filter and unselects it from every live draft.
func (c *Catalog) RemoveFilter(ctx context.Context, actor Actor, id string) error {
	if !actor.Elevated() {
		return fault.New(fault.Permission, "role", "catalog changes require an elevated role")
	}
	n, err := c.store.DeleteFilter(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fault.New(fault.Validation, "id", "filter not found")
	}
	return c.drafts.UnselectFilter(ctx, id)
}

// Domains lists all domains.
func (c *Catalog) Domains(ctx context.Context) ([]models.Domain, error) {
	return c.store.ListDomains(ctx)
}

// Filters lists all filters.
func (c *Catalog) Filters(ctx context.Context) ([]models.Filter, error) {
	return c.store.ListFilters(ctx)
}

// DomainActive implements CatalogReader.
func (c *Catalog) DomainActive(ctx context.Context, id string) (bool, error) {
	return c.store.DomainActive(ctx, strings.TrimSpace(id))
}

// FilterActive implements CatalogReader.
func (c *Catalog) FilterActive(ctx context.Context, id string) (bool, error) {
	return c.store.FilterActive(ctx, strings.TrimSpace(id))
}
