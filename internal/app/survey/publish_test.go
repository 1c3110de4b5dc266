package survey_test

import (
	"context"
	"testing"
	"time"

	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

func TestPublish(t *testing.T) {
	d, cat := publishableDraft()

	def, err := survey.Publish(context.Background(), cat, d)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if def.Title != d.Title || def.Description != d.Description {
		t.Error("definition must carry the draft's title and description")
	}
	if def.Status != models.SurveyStatusActive {
		t.Errorf("status: got %q, want %q", def.Status, models.SurveyStatusActive)
	}
	if def.ResponseCount != 0 {
		t.Errorf("response count: got %d, want 0", def.ResponseCount)
	}
	if def.CreatedByID != d.OwnerID {
		t.Errorf("created_by: got %q, want %q", def.CreatedByID, d.OwnerID)
	}
	if def.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if !def.StartDate.Equal(*d.StartDate) || !def.EndDate.Equal(*d.EndDate) {
		t.Error("definition must carry the draft's activity window")
	}
	if def.StartDate.Location() != time.UTC {
		t.Error("dates must be normalized to UTC")
	}
	if len(def.PreQuestions) != len(d.PreQuestions) {
		t.Errorf("pre questions: got %d, want %d", len(def.PreQuestions), len(d.PreQuestions))
	}
	if len(def.Beneficiaries) != 1 {
		t.Errorf("beneficiaries: got %d, want 1", len(def.Beneficiaries))
	}
}

func TestPublish_DefinitionIsDetachedFromDraft(t *testing.T) {
	d, cat := publishableDraft()

	def, err := survey.Publish(context.Background(), cat, d)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	// Mutating the draft afterwards must not reach into the definition.
	d.SelectedSectors[0] = "mutated"
	d.PreQuestions[0].Text = "mutated"
	d.Beneficiaries[0].Name = "mutated"

	if def.SelectedSectors[0] == "mutated" {
		t.Error("definition shares the draft's sector slice")
	}
	if def.PreQuestions[0].Text == "mutated" {
		t.Error("definition shares the draft's question storage")
	}
	if def.Beneficiaries[0].Name == "mutated" {
		t.Error("definition shares the draft's roster storage")
	}
}

func TestPublish_OnlyFromPreview(t *testing.T) {
	d, cat := publishableDraft()
	d.Step = survey.StepTiming

	_, err := survey.Publish(context.Background(), cat, d)
	if !fault.Is(err, fault.Guard) {
		t.Fatalf("expected guard fault, got %v", err)
	}
}

func TestPublish_EmptyRoster(t *testing.T) {
	d, cat := publishableDraft()
	d.Beneficiaries = nil

	_, err := survey.Publish(context.Background(), cat, d)
	if !fault.Is(err, fault.EmptyRoster) {
		t.Fatalf("expected empty_roster fault, got %v", err)
	}
}

func TestPublish_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SurveyDraft)
	}{
		{"missing title", func(d *models.SurveyDraft) { d.Title = "" }},
		{"missing description", func(d *models.SurveyDraft) { d.Description = "" }},
		{"no sectors", func(d *models.SurveyDraft) { d.SelectedSectors = nil }},
		{"missing start date", func(d *models.SurveyDraft) { d.StartDate = nil }},
		{"missing end date", func(d *models.SurveyDraft) { d.EndDate = nil }},
		{"reversed window", func(d *models.SurveyDraft) { d.StartDate, d.EndDate = d.EndDate, d.StartDate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, cat := publishableDraft()
			tt.mutate(d)
			_, err := survey.Publish(context.Background(), cat, d)
			if !fault.Is(err, fault.Validation) {
				t.Fatalf("expected validation fault, got %v", err)
			}
		})
	}
}

func TestPublish_DanglingSelectedDomain(t *testing.T) {
	d, cat := publishableDraft()
	delete(cat.domains, "d1")

	_, err := survey.Publish(context.Background(), cat, d)
	if !fault.Is(err, fault.DanglingReference) {
		t.Fatalf("expected dangling_reference fault, got %v", err)
	}
}

func TestPublish_DanglingSelectedFilter(t *testing.T) {
	d, cat := publishableDraft()
	delete(cat.filters, "f1")

	_, err := survey.Publish(context.Background(), cat, d)
	if !fault.Is(err, fault.DanglingReference) {
		t.Fatalf("expected dangling_reference fault, got %v", err)
	}
}

func TestPublish_DanglingQuestionDomain(t *testing.T) {
	d, cat := publishableDraft()
	cat.domains["d2"] = true
	q := models.Question{ID: "q1", Text: "Q", Type: models.QuestionShortText, DomainID: "d2"}
	if err := survey.AddQuestion(d, models.PhasePre, q, false); err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}

	// The question's domain is active but no longer among the survey's
	// selected sectors, so publish must refuse.
	_, err := survey.Publish(context.Background(), cat, d)
	if !fault.Is(err, fault.DanglingReference) {
		t.Fatalf("expected dangling_reference fault, got %v", err)
	}

	// Re-selecting the sector repairs the draft.
	d.SelectedSectors = append(d.SelectedSectors, "d2")
	if _, err := survey.Publish(context.Background(), cat, d); err != nil {
		t.Fatalf("Publish after repair failed: %v", err)
	}
}

func TestPublish_FixedQuestionsSkipDomainCheck(t *testing.T) {
	d, cat := publishableDraft()

	// Fixed questions carry no domain id; they must not trip the
	// reference checks.
	if _, err := survey.Publish(context.Background(), cat, d); err != nil {
		t.Fatalf("Publish failed on fixed questions: %v", err)
	}
}

func TestPublish_ScoreAlignmentRechecked(t *testing.T) {
	d, cat := publishableDraft()
	d.PreQuestions = append(d.PreQuestions, models.Question{
		ID:           "broken",
		Text:         "Q",
		Type:         models.QuestionSingleChoice,
		Options:      []string{"A", "B"},
		OptionScores: []*float64{score(1)},
		DomainID:     "d1",
	})

	_, err := survey.Publish(context.Background(), cat, d)
	if !fault.Is(err, fault.Validation) {
		t.Fatalf("expected validation fault, got %v", err)
	}
}
