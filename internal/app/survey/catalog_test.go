package survey_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// fakeCatalogStore is an in-memory CatalogStore for exercising the service
// without MongoDB.
type fakeCatalogStore struct {
	domains map[string]models.Domain
	filters map[string]models.Filter
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{
		domains: map[string]models.Domain{},
		filters: map[string]models.Filter{},
	}
}

func (s *fakeCatalogStore) DomainActive(_ context.Context, id string) (bool, error) {
	d, ok := s.domains[id]
	return ok && d.IsActive, nil
}

func (s *fakeCatalogStore) FilterActive(_ context.Context, id string) (bool, error) {
	f, ok := s.filters[id]
	return ok && f.IsActive, nil
}

func (s *fakeCatalogStore) InsertDomain(_ context.Context, d models.Domain) (models.Domain, error) {
	id := uuid.NewString()
	s.domains[id] = d
	return d, nil
}

func (s *fakeCatalogStore) DeleteDomain(_ context.Context, id string) (int64, error) {
	if _, ok := s.domains[id]; !ok {
		return 0, nil
	}
	delete(s.domains, id)
	return 1, nil
}

func (s *fakeCatalogStore) ListDomains(_ context.Context) ([]models.Domain, error) {
	out := make([]models.Domain, 0, len(s.domains))
	for _, d := range s.domains {
		out = append(out, d)
	}
	return out, nil
}

func (s *fakeCatalogStore) InsertFilter(_ context.Context, f models.Filter) (models.Filter, error) {
	id := uuid.NewString()
	s.filters[id] = f
	return f, nil
}

func (s *fakeCatalogStore) DeleteFilter(_ context.Context, id string) (int64, error) {
	if _, ok := s.filters[id]; !ok {
		return 0, nil
	}
	delete(s.filters, id)
	return 1, nil
}

func (s *fakeCatalogStore) ListFilters(_ context.Context) ([]models.Filter, error) {
	out := make([]models.Filter, 0, len(s.filters))
	for _, f := range s.filters {
		out = append(out, f)
	}
	return out, nil
}

// cascadeRecorder records which catalog ids were unselected from drafts.
type cascadeRecorder struct {
	sectors []string
	filters []string
}

func (c *cascadeRecorder) UnselectSector(_ context.Context, domainID string) error {
	c.sectors = append(c.sectors, domainID)
	return nil
}

func (c *cascadeRecorder) UnselectFilter(_ context.Context, filterID string) error {
	c.filters = append(c.filters, filterID)
	return nil
}

func TestCatalog_PermissionGate(t *testing.T) {
	svc := survey.NewCatalog(newFakeCatalogStore(), &cascadeRecorder{})
	manager := survey.Actor{ID: "u1", Role: survey.RoleManager}
	ctx := context.Background()

	if _, err := svc.AddDomain(ctx, manager, "Education", ""); !fault.Is(err, fault.Permission) {
		t.Errorf("AddDomain by manager: expected permission fault, got %v", err)
	}
	if err := svc.RemoveDomain(ctx, manager, "any"); !fault.Is(err, fault.Permission) {
		t.Errorf("RemoveDomain by manager: expected permission fault, got %v", err)
	}
	if _, err := svc.AddFilter(ctx, manager, "Gender", models.FilterSingleChoice, []string{"F", "M"}); !fault.Is(err, fault.Permission) {
		t.Errorf("AddFilter by manager: expected permission fault, got %v", err)
	}
	if err := svc.RemoveFilter(ctx, manager, "any"); !fault.Is(err, fault.Permission) {
		t.Errorf("RemoveFilter by manager: expected permission fault, got %v", err)
	}
}

func TestCatalog_AddDomain(t *testing.T) {
	store := newFakeCatalogStore()
	svc := survey.NewCatalog(store, &cascadeRecorder{})
	admin := survey.Actor{ID: "a1", Role: survey.RoleAdmin}
	ctx := context.Background()

	d, err := svc.AddDomain(ctx, admin, "  Education ", "Schooling outcomes")
	if err != nil {
		t.Fatalf("AddDomain failed: %v", err)
	}
	if d.Name != "Education" {
		t.Errorf("name: got %q, want trimmed", d.Name)
	}
	if !d.IsActive {
		t.Error("new domains must be active")
	}

	if _, err := svc.AddDomain(ctx, admin, "   ", ""); !fault.Is(err, fault.Validation) {
		t.Errorf("blank name: expected validation fault, got %v", err)
	}
}

func TestCatalog_AddFilter(t *testing.T) {
	svc := survey.NewCatalog(newFakeCatalogStore(), &cascadeRecorder{})
	admin := survey.Actor{ID: "a1", Role: survey.RoleAdmin}
	ctx := context.Background()

	f, err := svc.AddFilter(ctx, admin, "Age Band", models.FilterDropdown, []string{"18-25", " ", "26-40", ""})
	if err != nil {
		t.Fatalf("AddFilter failed: %v", err)
	}
	if len(f.Options) != 2 {
		t.Errorf("options: got %v, want blanks dropped", f.Options)
	}

	if _, err := svc.AddFilter(ctx, admin, "Bad", "checkbox", []string{"x"}); !fault.Is(err, fault.Validation) {
		t.Errorf("unknown type: expected validation fault, got %v", err)
	}
	if _, err := svc.AddFilter(ctx, admin, "Empty", models.FilterMultiChoice, []string{" ", ""}); !fault.Is(err, fault.Validation) {
		t.Errorf("all-blank options: expected validation fault, got %v", err)
	}
}

func TestCatalog_RemoveCascades(t *testing.T) {
	store := newFakeCatalogStore()
	store.domains["d1"] = models.Domain{Name: "Education", IsActive: true}
	store.filters["f1"] = models.Filter{Name: "Gender", IsActive: true}
	cascade := &cascadeRecorder{}
	svc := survey.NewCatalog(store, cascade)
	admin := survey.Actor{ID: "a1", Role: survey.RoleAdmin}
	ctx := context.Background()

	if err := svc.RemoveDomain(ctx, admin, "d1"); err != nil {
		t.Fatalf("RemoveDomain failed: %v", err)
	}
	if len(cascade.sectors) != 1 || cascade.sectors[0] != "d1" {
		t.Errorf("sector cascade: got %v, want [d1]", cascade.sectors)
	}

	if err := svc.RemoveFilter(ctx, admin, "f1"); err != nil {
		t.Fatalf("RemoveFilter failed: %v", err)
	}
	if len(cascade.filters) != 1 || cascade.filters[0] != "f1" {
		t.Errorf("filter cascade: got %v, want [f1]", cascade.filters)
	}

	// Removing a missing entry reports validation and skips the cascade.
	if err := svc.RemoveDomain(ctx, admin, "gone"); !fault.Is(err, fault.Validation) {
		t.Errorf("missing domain: expected validation fault, got %v", err)
	}
	if len(cascade.sectors) != 1 {
		t.Errorf("cascade ran for a missing domain: %v", cascade.sectors)
	}
}
