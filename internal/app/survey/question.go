// internal/app/survey/question.go
package survey

import (
	"context"

	"github.com/google/uuid"
	"github.com/impactlens/impactlens/internal/app/system/sanitize"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// QuestionSpec is the author's input to the question builder.
type QuestionSpec struct {
	Text         string     `json:"text"`
	Type         string     `json:"type"`
	Options      []string   `json:"options,omitempty"`
	OptionScores []*float64 `json:"option_scores,omitempty"`
	Scale        int        `json:"scale,omitempty"`
	Required     bool       `json:"required"`
	Fixed        bool       `json:"fixed,omitempty"`
	DomainID     string     `json:"domain_id"`
}

// NewQuestion validates a spec and returns the question. It fails on the
// first violated invariant: blank text, unknown type, missing options for a
// choice type, score/option length mismatch, bad rating scale, or a domain
// id that does not resolve to an active catalog domain. Only elevated actors
// may author fixed questions, which are phase-wide and carry no domain.
func NewQuestion(ctx context.Context, catalog CatalogReader, spec QuestionSpec, actor Actor) (models.Question, error) {
	text := sanitize.Text(spec.Text)
	if text == "" {
		return models.Question{}, fault.New(fault.Validation, "text", "question text is required")
	}
	if !models.ValidQuestionType(spec.Type) {
		return models.Question{}, fault.Validationf("type", "unknown question type %q", spec.Type)
	}
	if spec.Fixed && !actor.Elevated() {
		return models.Question{}, fault.New(fault.Protected, "fixed", "authoring fixed questions requires an elevated role")
	}

	q := models.Question{
		ID:       uuid.NewString(),
		Text:     text,
		Type:     spec.Type,
		Required: spec.Required,
		DomainID: spec.DomainID,
	}

	switch spec.Type {
	case models.QuestionSingleChoice, models.QuestionMultiChoice, models.QuestionDropdown:
		cleaned := sanitize.Slice(append([]string(nil), spec.Options...))
		opts := make([]string, 0, len(cleaned))
		for _, o := range cleaned {
			if o != "" {
				opts = append(opts, o)
			}
		}
		if len(opts) == 0 {
			return models.Question{}, fault.New(fault.Validation, "options", "choice questions need at least one option")
		}
		if spec.OptionScores != nil && len(spec.OptionScores) != len(spec.Options) {
			return models.Question{}, fault.Validationf("option_scores",
				"got %d scores for %d options; scores must align with options", len(spec.OptionScores), len(spec.Options))
		}
		q.Options = opts
		if spec.OptionScores != nil {
			// Blank options were dropped, so their score slots go with them.
			scores := make([]*float64, 0, len(opts))
			for i, o := range cleaned {
				if o != "" {
					scores = append(scores, spec.OptionScores[i])
				}
			}
			q.OptionScores = scores
		}
	case models.QuestionRating:
		if !models.ValidRatingScale(spec.Scale) {
			return models.Question{}, fault.Validationf("scale", "rating scale must be one of %v", models.RatingScales)
		}
		q.Scale = spec.Scale
	}

	if spec.Fixed {
		if spec.DomainID != "" {
			return models.Question{}, fault.New(fault.Validation, "domain_id", "fixed questions are phase-wide and carry no domain")
		}
		q.Fixed = true
		return q, nil
	}

	if spec.DomainID == "" {
		return models.Question{}, fault.New(fault.Validation, "domain_id", "domain is required")
	}
	ok, err := catalog.DomainActive(ctx, spec.DomainID)
	if err != nil {
		return models.Question{}, err
	}
	if !ok {
		return models.Question{}, fault.Validationf("domain_id", "%s does not reference an active domain", spec.DomainID)
	}
	return q, nil
}

// AddQuestion appends q to the chosen phase. With applyToBothPhases the same
// content is appended to both phases in one call, the post copy under a
// fresh id; the two diverge freely afterwards.
func AddQuestion(d *models.SurveyDraft, phase string, q models.Question, applyToBothPhases bool) error {
	if !models.ValidPhase(phase) {
		return fault.Validationf("phase", "unknown phase %q", phase)
	}
	if applyToBothPhases {
		clone := cloneQuestion(q)
		clone.ID = uuid.NewString()
		d.PreQuestions = append(d.PreQuestions, q)
		d.PostQuestions = append(d.PostQuestions, clone)
	} else {
		list := d.Questions(phase)
		*list = append(*list, q)
	}
	touch(d)
	return nil
}

// DeleteQuestion removes the question with the given id from the phase,
// preserving the order of the rest. Fixed questions are protected from
// non-elevated actors.
func DeleteQuestion(d *models.SurveyDraft, phase, questionID string, actor Actor) error {
	if !models.ValidPhase(phase) {
		return fault.Validationf("phase", "unknown phase %q", phase)
	}
	list := d.Questions(phase)
	for i, q := range *list {
		if q.ID != questionID {
			continue
		}
		if q.Fixed && !actor.Elevated() {
			return fault.New(fault.Protected, questionID, "fixed questions cannot be removed")
		}
		*list = append((*list)[:i], (*list)[i+1:]...)
		touch(d)
		return nil
	}
	return fault.Validationf("question_id", "no question %s in %s phase", questionID, phase)
}

func cloneQuestion(q models.Question) models.Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	if q.OptionScores != nil {
		out.OptionScores = make([]*float64, len(q.OptionScores))
		for i, s := range q.OptionScores {
			if s != nil {
				v := *s
				out.OptionScores[i] = &v
			}
		}
	}
	return out
}

func scorePtr(v float64) *float64 { return &v }

// FixedQuestions returns a fresh copy of the system-seeded question set for
// one phase. Every new draft gets one copy per phase; the same items appear
// before and after the intervention so deltas can be measured. Fixed
// questions are phase-wide rather than sector-tagged, so they carry no
// domain id.
func FixedQuestions() []models.Question {
	return []models.Question{
		{
			ID:    uuid.NewString(),
			Text:  "What is your current housing situation?",
			Type:  models.QuestionSingleChoice,
			Options: []string{
				"Homeless or in a shelter",
				"Temporary housing",
				"Renting",
				"Own home",
			},
			OptionScores: []*float64{scorePtr(0), scorePtr(1), scorePtr(2), scorePtr(3)},
			Required:     true,
			Fixed:        true,
		},
		{
			ID:    uuid.NewString(),
			Text:  "What is your highest completed education level?",
			Type:  models.QuestionSingleChoice,
			Options: []string{
				"No formal education",
				"Primary",
				"Secondary",
				"Vocational",
				"University",
			},
			OptionScores: []*float64{scorePtr(0), scorePtr(1), scorePtr(2), scorePtr(3), scorePtr(4)},
			Required:     true,
			Fixed:        true,
		},
		{
			ID:       uuid.NewString(),
			Text:     "How many employable skills do you have?",
			Type:     models.QuestionNumeric,
			Required: true,
			Fixed:    true,
		},
		{
			ID:       uuid.NewString(),
			Text:     "How satisfied are you with your life overall?",
			Type:     models.QuestionRating,
			Scale:    10,
			Required: true,
			Fixed:    true,
		},
		{
			ID:       uuid.NewString(),
			Text:     "How likely are you to recommend this program to someone in your situation?",
			Type:     models.QuestionRating,
			Scale:    5,
			Required: false,
			Fixed:    true,
		},
	}
}
