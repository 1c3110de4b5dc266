// internal/domain/models/domain.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Domain is an impact sector (education, health, housing, ...) maintained in
// the shared catalog. Questions are tagged with a domain, and drafts select
// the domains a survey targets.
//
// Domains are never hard-deleted while referenced without consequence:
// removal cascades an unselect to live drafts, and any question still
// pointing at a removed domain fails the draft at publish time.
type Domain struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
