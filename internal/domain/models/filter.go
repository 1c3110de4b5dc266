// internal/domain/models/filter.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter kinds mirror the choice-family question types; a filter is always
// answered by picking from its options.
const (
	FilterSingleChoice = "single-choice"
	FilterMultiChoice  = "multi-choice"
	FilterDropdown     = "dropdown"
)

// Filter is a beneficiary classification axis (gender, age band, region)
// kept in the shared catalog. Drafts select filters for later segmentation;
// filters are not enforced against actual beneficiary data here.
type Filter struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"`
	Type      string             `bson:"type" json:"type"`
	Options   []string           `bson:"options" json:"options"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ValidFilterType reports whether t is one of the supported filter kinds.
func ValidFilterType(t string) bool {
	switch t {
	case FilterSingleChoice, FilterMultiChoice, FilterDropdown:
		return true
	}
	return false
}
