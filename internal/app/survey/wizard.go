// internal/app/survey/wizard.go
package survey

import (
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
)

// Wizard steps, in construction order. Forward movement is strictly linear
// and gated; backward movement is always allowed. Preview is terminal but
// not itself publication: publish is a separate action available only there.
const (
	StepBasicInfo     = "basic_info"
	StepSectors       = "sectors_filters"
	StepPreQuestions  = "pre_questions"
	StepPostQuestions = "post_questions"
	StepBeneficiaries = "beneficiaries"
	StepTiming        = "timing"
	StepPreview       = "preview"
)

var stepOrder = []string{
	StepBasicInfo,
	StepSectors,
	StepPreQuestions,
	StepPostQuestions,
	StepBeneficiaries,
	StepTiming,
	StepPreview,
}

// guards maps a step to the predicate that must hold before leaving it
// forward. Steps without an entry advance unconditionally: a survey may
// legally carry zero custom questions beyond the fixed set.
var guards = map[string]func(*models.SurveyDraft) *fault.Error{
	StepBasicInfo: func(d *models.SurveyDraft) *fault.Error {
		if d.Title == "" {
			return fault.New(fault.Guard, "title", "title is required before continuing")
		}
		if d.Description == "" {
			return fault.New(fault.Guard, "description", "description is required before continuing")
		}
		return nil
	},
	StepSectors: func(d *models.SurveyDraft) *fault.Error {
		if len(d.SelectedSectors) == 0 {
			return fault.New(fault.Guard, "selected_sectors", "select at least one impact domain before continuing")
		}
		return nil
	},
	StepBeneficiaries: func(d *models.SurveyDraft) *fault.Error {
		if len(d.Beneficiaries) == 0 {
			return fault.New(fault.Guard, "beneficiaries", "add at least one beneficiary before continuing")
		}
		return nil
	},
	StepTiming: func(d *models.SurveyDraft) *fault.Error {
		if d.StartDate == nil || d.EndDate == nil {
			return fault.New(fault.Guard, "start_date", "both start and end dates are required before continuing")
		}
		if !d.StartDate.Before(*d.EndDate) {
			return fault.New(fault.Guard, "start_date", "start date must be strictly before end date")
		}
		return nil
	},
}

// StepIndex returns the position of step in the wizard order, or -1.
func StepIndex(step string) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// Advance moves the draft one step forward. On a failed guard the draft's
// step is untouched and the returned fault names the unmet condition.
func Advance(d *models.SurveyDraft) error {
	idx := StepIndex(d.Step)
	if idx < 0 {
		return fault.Validationf("step", "draft is at unknown step %q", d.Step)
	}
	if idx == len(stepOrder)-1 {
		return fault.New(fault.Guard, "step", "already at the final step")
	}
	if guard, ok := guards[d.Step]; ok {
		if ferr := guard(d); ferr != nil {
			return ferr
		}
	}
	d.Step = stepOrder[idx+1]
	touch(d)
	return nil
}

// Back moves the draft one step backward. Always permitted; at the first
// step it is a no-op.
func Back(d *models.SurveyDraft) error {
	idx := StepIndex(d.Step)
	if idx < 0 {
		return fault.Validationf("step", "draft is at unknown step %q", d.Step)
	}
	if idx > 0 {
		d.Step = stepOrder[idx-1]
		touch(d)
	}
	return nil
}
