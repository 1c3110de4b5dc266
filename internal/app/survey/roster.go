// internal/app/survey/roster.go
package survey

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/impactlens/impactlens/internal/app/system/inputval"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// RosterRow is one beneficiary record as handed over by the import
// collaborator (or entered manually). Parsing the source file is not this
// package's concern.
type RosterRow struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ImportSummary reports the outcome of a bulk import. Bad rows are skipped,
// not fatal; Reasons explains each skip as "row N: <reason>" (1-based).
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Reasons  []string `json:"reasons,omitempty"`
}

func (d *RosterRow) normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = inputval.NormalizePhone(d.Phone)
}

// AddBeneficiary validates row and appends it to the draft's roster with
// method "manual". Unlike bulk import this rejects on the first error: the
// author is looking at a form and can fix the field.
func AddBeneficiary(d *models.SurveyDraft, row RosterRow) (models.Beneficiary, error) {
	b, err := buildBeneficiary(d, row, models.AddedManual)
	if err != nil {
		return models.Beneficiary{}, err
	}
	d.Beneficiaries = append(d.Beneficiaries, b)
	touch(d)
	return b, nil
}

// ImportBeneficiaries applies the same per-row validation and dedupe as
// manual add, but skips offending rows and keeps going: bulk sources are
// dirty and a single bad row must not sink the batch. Rows are also deduped
// against earlier rows in the same batch, so re-importing a file after a
// partial run skips everything already on the roster.
func ImportBeneficiaries(d *models.SurveyDraft, rows []RosterRow) ImportSummary {
	var sum ImportSummary
	for i, row := range rows {
		b, err := buildBeneficiary(d, row, models.AddedBulkImport)
		if err != nil {
			sum.Skipped++
			sum.Reasons = append(sum.Reasons, fmt.Sprintf("row %d: %s", i+1, reason(err)))
			continue
		}
		d.Beneficiaries = append(d.Beneficiaries, b)
		sum.Imported++
	}
	if sum.Imported > 0 {
		touch(d)
	}
	return sum
}

// RemoveBeneficiary removes by id. No cascading effects.
func RemoveBeneficiary(d *models.SurveyDraft, id string) error {
	for i, b := range d.Beneficiaries {
		if b.ID == id {
			d.Beneficiaries = append(d.Beneficiaries[:i], d.Beneficiaries[i+1:]...)
			touch(d)
			return nil
		}
	}
	return fault.Validationf("beneficiary_id", "no beneficiary %s on the roster", id)
}

func buildBeneficiary(d *models.SurveyDraft, row RosterRow, method string) (models.Beneficiary, error) {
	row.normalize()
	if row.Name == "" {
		return models.Beneficiary{}, fault.New(fault.Validation, "name", "name required")
	}
	if row.Email == "" && row.Phone == "" {
		return models.Beneficiary{}, fault.New(fault.Validation, "contact", "email or phone required")
	}
	if row.Email != "" && !inputval.IsValidEmail(row.Email) {
		return models.Beneficiary{}, fault.Validationf("email", "%q is not a valid email", row.Email)
	}
	if row.Phone != "" && !inputval.IsValidPhone(row.Phone) {
		return models.Beneficiary{}, fault.Validationf("phone", "%q is not a valid phone number", row.Phone)
	}
	for _, existing := range d.Beneficiaries {
		if row.Email != "" && strings.EqualFold(existing.Email, row.Email) {
			return models.Beneficiary{}, fault.New(fault.Duplicate, "email", row.Email+" is already on the roster")
		}
		if row.Phone != "" && existing.Phone == row.Phone {
			return models.Beneficiary{}, fault.New(fault.Duplicate, "phone", row.Phone+" is already on the roster")
		}
	}
	return models.Beneficiary{
		ID:      uuid.NewString(),
		Name:    row.Name,
		Email:   row.Email,
		Phone:   row.Phone,
		AddedAt: time.Now().UTC(),
		Method:  method,
	}, nil
}

// reason renders the short form of a row failure for the import summary.
func reason(err error) string {
	var fe *fault.Error
	if errors.As(err, &fe) {
		return fe.Msg
	}
	return err.Error()
}
