// internal/domain/models/draft.go
package models

import "time"

// OrganizationIdentity is the identity block shown on a survey. It is either
// entered by the author or prefilled from the organization directory when an
// admin authors on behalf of another organization.
type OrganizationIdentity struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
	LogoURL string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
}

// SurveyDraft is the mutable survey under construction. It has a single
// writer (the authoring session) for its whole lifetime and is mutated only
// through the survey package operations; the wizard step records how far the
// author has progressed.
//
// Drafts are held in the draft session store between requests and are
// discarded on cancel or consumed by publish.
type SurveyDraft struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Organization OrganizationIdentity `json:"organization"`

	SelectedSectors []string `json:"selected_sectors"` // domain ids, insertion order
	SelectedFilters []string `json:"selected_filters"` // filter ids, insertion order

	PreQuestions  []Question `json:"pre_questions"`
	PostQuestions []Question `json:"post_questions"`

	Beneficiaries []Beneficiary `json:"beneficiaries"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Step      string    `json:"step"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSector reports whether the draft currently selects the given domain id.
func (d *SurveyDraft) HasSector(domainID string) bool {
	for _, id := range d.SelectedSectors {
		if id == domainID {
			return true
		}
	}
	return false
}

// Questions returns the question list for the given phase. It returns a
// pointer so callers can append/delete in place.
func (d *SurveyDraft) Questions(phase string) *[]Question {
	if phase == PhasePost {
		return &d.PostQuestions
	}
	return &d.PreQuestions
}

// Survey phases.
const (
	PhasePre  = "pre"
	PhasePost = "post"
)

// ValidPhase reports whether p names a survey phase.
func ValidPhase(p string) bool {
	return p == PhasePre || p == PhasePost
}
