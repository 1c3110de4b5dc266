// internal/domain/models/question.go
package models

// Question types. The choice family carries options (and optionally
// per-option scores); rating carries a scale; the rest are free-form.
const (
	QuestionShortText    = "short-text"
	QuestionLongText     = "long-text"
	QuestionSingleChoice = "single-choice"
	QuestionMultiChoice  = "multi-choice"
	QuestionDropdown     = "dropdown"
	QuestionNumeric      = "numeric"
	QuestionRating       = "rating"
)

// RatingScales are the allowed rating scales.
var RatingScales = []int{3, 5, 10}

// Question is a single survey item, used in both the pre- and
// post-intervention question sets.
//
// OptionScores is parallel to Options: entry i is the numeric weight of
// option i, or nil when that option is unscored. Partial scoring is legal;
// the alignment invariant (equal lengths when scores are present) is
// enforced by the builder and re-checked at publish. Scoring itself (summing
// per respondent) belongs to downstream analytics.
//
// Fixed questions are seeded by the system into every new draft and cannot
// be removed or authored by a standard actor. They are phase-wide rather
// than sector-tagged, so their DomainID is empty.
type Question struct {
	ID           string     `bson:"id" json:"id"`
	Text         string     `bson:"text" json:"text"`
	Type         string     `bson:"type" json:"type"`
	Options      []string   `bson:"options,omitempty" json:"options,omitempty"`
	OptionScores []*float64 `bson:"option_scores,omitempty" json:"option_scores,omitempty"`
	Scale        int        `bson:"scale,omitempty" json:"scale,omitempty"`
	Required     bool       `bson:"required" json:"required"`
	Fixed        bool       `bson:"fixed" json:"fixed"`
	DomainID     string     `bson:"domain_id,omitempty" json:"domain_id,omitempty"`
}

// IsChoice reports whether the question type carries options.
func (q Question) IsChoice() bool {
	switch q.Type {
	case QuestionSingleChoice, QuestionMultiChoice, QuestionDropdown:
		return true
	}
	return false
}

// ValidQuestionType reports whether t is a supported question type.
func ValidQuestionType(t string) bool {
	switch t {
	case QuestionShortText, QuestionLongText, QuestionSingleChoice,
		QuestionMultiChoice, QuestionDropdown, QuestionNumeric, QuestionRating:
		return true
	}
	return false
}

// ValidRatingScale reports whether n is an allowed rating scale.
func ValidRatingScale(n int) bool {
	for _, s := range RatingScales {
		if n == s {
			return true
		}
	}
	return false
}
