package survey_test

import (
	"context"
	"time"

	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// fakeCatalog is an in-memory CatalogReader. The maps hold active ids only;
// anything absent reads as inactive or deleted.
type fakeCatalog struct {
	domains map[string]bool
	filters map[string]bool
}

func (f *fakeCatalog) DomainActive(_ context.Context, id string) (bool, error) {
	return f.domains[id], nil
}

func (f *fakeCatalog) FilterActive(_ context.Context, id string) (bool, error) {
	return f.filters[id], nil
}

var (
	asManager = survey.Actor{ID: "author-1", Role: survey.RoleManager}
	asAdmin   = survey.Actor{ID: "admin-1", Role: survey.RoleAdmin}
)

func activeCatalog(domainIDs, filterIDs []string) *fakeCatalog {
	cat := &fakeCatalog{domains: map[string]bool{}, filters: map[string]bool{}}
	for _, id := range domainIDs {
		cat.domains[id] = true
	}
	for _, id := range filterIDs {
		cat.filters[id] = true
	}
	return cat
}

// publishableDraft returns a draft positioned at preview with everything
// publish requires: identity, one sector, one filter, a roster entry, and a
// valid window. The catalog it validates against has domain "d1" and filter
// "f1" active.
func publishableDraft() (*models.SurveyDraft, *fakeCatalog) {
	cat := &fakeCatalog{
		domains: map[string]bool{"d1": true},
		filters: map[string]bool{"f1": true},
	}

	d := survey.NewDraft("owner-1", models.OrganizationIdentity{Name: "Hope Works"})
	d.Title = "Job Readiness 2026"
	d.Description = "Measures employment outcomes for program participants."
	d.SelectedSectors = []string{"d1"}
	d.SelectedFilters = []string{"f1"}
	d.Beneficiaries = []models.Beneficiary{{
		ID:      "b1",
		Name:    "Ada Obi",
		Email:   "ada@example.org",
		AddedAt: time.Now().UTC(),
		Method:  models.AddedManual,
	}}
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	d.StartDate = &start
	d.EndDate = &end
	d.Step = survey.StepPreview
	return d, cat
}
