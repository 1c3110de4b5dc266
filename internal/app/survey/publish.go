// internal/app/survey/publish.go
package survey

import (
	"context"
	"time"

	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// Publish re-validates the whole draft and freezes it into an immutable
// SurveyDefinition. The per-step guards are not enough on their own: a
// catalog deletion after a step was passed can invalidate it retroactively,
// so every invariant is checked again here. On success the caller persists
// the definition and discards the draft.
func Publish(ctx context.Context, catalog CatalogReader, d *models.SurveyDraft) (models.SurveyDefinition, error) {
	if d.Step != StepPreview {
		return models.SurveyDefinition{}, fault.New(fault.Guard, "step", "publishing is only available from the preview step")
	}
	if d.Title == "" {
		return models.SurveyDefinition{}, fault.New(fault.Validation, "title", "title is required")
	}
	if d.Description == "" {
		return models.SurveyDefinition{}, fault.New(fault.Validation, "description", "description is required")
	}
	if len(d.SelectedSectors) == 0 {
		return models.SurveyDefinition{}, fault.New(fault.Validation, "selected_sectors", "at least one impact domain is required")
	}
	if len(d.Beneficiaries) == 0 {
		return models.SurveyDefinition{}, fault.New(fault.EmptyRoster, "beneficiaries", "the roster is empty")
	}
	if d.StartDate == nil || d.EndDate == nil {
		return models.SurveyDefinition{}, fault.New(fault.Validation, "start_date", "both start and end dates are required")
	}
	if !d.StartDate.Before(*d.EndDate) {
		return models.SurveyDefinition{}, fault.New(fault.Validation, "start_date", "start date must be strictly before end date")
	}

	for _, id := range d.SelectedSectors {
		ok, err := catalog.DomainActive(ctx, id)
		if err != nil {
			return models.SurveyDefinition{}, err
		}
		if !ok {
			return models.SurveyDefinition{}, fault.New(fault.DanglingReference, id, "selected domain is no longer active")
		}
	}
	for _, id := range d.SelectedFilters {
		ok, err := catalog.FilterActive(ctx, id)
		if err != nil {
			return models.SurveyDefinition{}, err
		}
		if !ok {
			return models.SurveyDefinition{}, fault.New(fault.DanglingReference, id, "selected filter is no longer active")
		}
	}
	if err := checkQuestions(ctx, catalog, d, d.PreQuestions); err != nil {
		return models.SurveyDefinition{}, err
	}
	if err := checkQuestions(ctx, catalog, d, d.PostQuestions); err != nil {
		return models.SurveyDefinition{}, err
	}

	def := models.SurveyDefinition{
		Title:           d.Title,
		Description:     d.Description,
		Organization:    d.Organization,
		SelectedSectors: append([]string(nil), d.SelectedSectors...),
		SelectedFilters: append([]string(nil), d.SelectedFilters...),
		PreQuestions:    cloneQuestions(d.PreQuestions),
		PostQuestions:   cloneQuestions(d.PostQuestions),
		Beneficiaries:   append([]models.Beneficiary(nil), d.Beneficiaries...),
		StartDate:       d.StartDate.UTC(),
		EndDate:         d.EndDate.UTC(),
		Status:          models.SurveyStatusActive,
		ResponseCount:   0,
		CreatedByID:     d.OwnerID,
		CreatedAt:       time.Now().UTC(),
	}
	return def, nil
}

// checkQuestions re-asserts the builder invariants and domain references.
// Fixed questions are phase-wide and carry no domain id, so the reference
// checks do not apply to them.
func checkQuestions(ctx context.Context, catalog CatalogReader, d *models.SurveyDraft, qs []models.Question) error {
	for _, q := range qs {
		if q.IsChoice() && q.OptionScores != nil && len(q.OptionScores) != len(q.Options) {
			return fault.Validationf(q.ID, "question has %d scores for %d options", len(q.OptionScores), len(q.Options))
		}
		if q.Fixed {
			continue
		}
		ok, err := catalog.DomainActive(ctx, q.DomainID)
		if err != nil {
			return err
		}
		if !ok {
			return fault.New(fault.DanglingReference, q.ID, "question references a domain that is no longer active")
		}
		if !d.HasSector(q.DomainID) {
			return fault.New(fault.DanglingReference, q.ID, "question references a domain the survey no longer targets")
		}
	}
	return nil
}

func cloneQuestions(qs []models.Question) []models.Question {
	out := make([]models.Question, len(qs))
	for i, q := range qs {
		out[i] = cloneQuestion(q)
	}
	return out
}
