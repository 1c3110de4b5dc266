// internal/domain/models/beneficiary.go
package models

import "time"

// How a beneficiary entered the roster.
const (
	AddedManual     = "manual"
	AddedBulkImport = "bulk-import"
)

// Beneficiary is a survey recipient on a draft's roster. A beneficiary must
// have a name plus at least one contact field; within a roster no two
// entries may share a non-empty email or a non-empty phone.
type Beneficiary struct {
	ID      string    `bson:"id" json:"id"`
	Name    string    `bson:"name" json:"name"`
	Email   string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string    `bson:"phone,omitempty" json:"phone,omitempty"`
	AddedAt time.Time `bson:"added_at" json:"added_at"`
	Method  string    `bson:"method" json:"method"`
}
