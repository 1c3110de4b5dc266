// internal/app/survey/draft.go
package survey

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/impactlens/impactlens/internal/app/system/sanitize"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// NewDraft starts an authoring session for the given owner. The draft is
// pre-seeded with the fixed question sets for both phases and positioned at
// the first wizard step. An empty identity is legal at creation; admins
// prefill it from the organization directory before or during basic info.
func NewDraft(ownerID string, identity models.OrganizationIdentity) *models.SurveyDraft {
	now := time.Now().UTC()
	return &models.SurveyDraft{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Organization:  identity,
		PreQuestions:  FixedQuestions(),
		PostQuestions: FixedQuestions(),
		Step:          StepBasicInfo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SetBasics updates title, description, and the organization identity block.
// Values are sanitized but not required here; the BasicInfo guard enforces
// completeness when the author advances.
func SetBasics(d *models.SurveyDraft, title, description string, identity models.OrganizationIdentity) {
	d.Title = sanitize.Text(title)
	d.Description = sanitize.Text(description)
	d.Organization = models.OrganizationIdentity{
		Name:    sanitize.Text(identity.Name),
		Email:   sanitize.Text(identity.Email),
		Website: sanitize.Text(identity.Website),
		LogoURL: sanitize.Text(identity.LogoURL),
	}
	touch(d)
}

// SetSelections replaces the draft's selected sectors and filters. Every id
// must reference an active catalog entry; order and duplicates from the
// caller are normalized away.
func SetSelections(ctx context.Context, catalog CatalogReader, d *models.SurveyDraft, sectorIDs, filterIDs []string) error {
	sectors, err := checkIDs(ctx, sectorIDs, "selected_sectors", catalog.DomainActive)
	if err != nil {
		return err
	}
	filters, err := checkIDs(ctx, filterIDs, "selected_filters", catalog.FilterActive)
	if err != nil {
		return err
	}
	d.SelectedSectors = sectors
	d.SelectedFilters = filters
	touch(d)
	return nil
}

func checkIDs(ctx context.Context, ids []string, field string, active func(context.Context, string) (bool, error)) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		ok, err := active(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fault.Validationf(field, "%s does not reference an active catalog entry", id)
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

// UnselectSector drops a domain id from the draft's selections. Used by the
// catalog removal cascade; questions tagged with the domain are left in
// place and fail at publish instead.
func UnselectSector(d *models.SurveyDraft, domainID string) {
	d.SelectedSectors = remove(d.SelectedSectors, domainID)
	touch(d)
}

// UnselectFilter drops a filter id from the draft's selections.
func UnselectFilter(d *models.SurveyDraft, filterID string) {
	d.SelectedFilters = remove(d.SelectedFilters, filterID)
	touch(d)
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// SetWindow records the activity window. Either bound may be nil while the
// author is still deciding; the Timing guard and publish enforce presence
// and strict ordering.
func SetWindow(d *models.SurveyDraft, start, end *time.Time) error {
	if start != nil && end != nil && !start.Before(*end) {
		return fault.New(fault.Validation, "start_date", "start date must be strictly before end date")
	}
	d.StartDate = start
	d.EndDate = end
	touch(d)
	return nil
}

func touch(d *models.SurveyDraft) {
	d.UpdatedAt = time.Now().UTC()
}
