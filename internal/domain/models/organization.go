// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a directory entry for a tenant organization. Admins
// authoring a survey on an organization's behalf use it to prefill the
// draft's identity block.
type Organization struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	LogoURL   string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Identity returns the prefill block for a draft.
func (o Organization) Identity() OrganizationIdentity {
	return OrganizationIdentity{
		Name:    o.Name,
		Email:   o.Email,
		Website: o.Website,
		LogoURL: o.LogoURL,
	}
}
