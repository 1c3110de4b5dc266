// internal/domain/models/survey.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveyDefinition is the immutable, published result of authoring. It is
// produced exactly once by publish and never mutated by this service
// afterwards; downstream status changes and response collection happen
// elsewhere.
type SurveyDefinition struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	Description  string               `bson:"description,omitempty" json:"description,omitempty"`
	Organization OrganizationIdentity `bson:"organization" json:"organization"`

	SelectedSectors []string `bson:"selected_sectors" json:"selected_sectors"`
	SelectedFilters []string `bson:"selected_filters" json:"selected_filters"`

	PreQuestions  []Question    `bson:"pre_questions" json:"pre_questions"`
	PostQuestions []Question    `bson:"post_questions" json:"post_questions"`
	Beneficiaries []Beneficiary `bson:"beneficiaries" json:"beneficiaries"`

	StartDate time.Time `bson:"start_date" json:"start_date"`
	EndDate   time.Time `bson:"end_date" json:"end_date"`

	Status        string    `bson:"status" json:"status"`
	ResponseCount int       `bson:"response_count" json:"response_count"`
	CreatedByID   string    `bson:"created_by_id,omitempty" json:"created_by_id,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// SurveyStatusActive is the status assigned at publish.
const SurveyStatusActive = "active"
