// internal/app/features/wizard/roster.go
package wizard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/app/system/rostercsv"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"go.uber.org/zap"
)

// maxRosterUpload caps the CSV upload size at 5 MB; rosters are lists of
// names and contacts, anything larger is a wrong file.
const maxRosterUpload = 5 << 20

// HandleAddBeneficiary adds one manually-entered beneficiary. Manual entry
// rejects on the first error so the author can fix the field.
func (h *Handler) HandleAddBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	var row survey.RosterRow
	if err := httpjson.Decode(r, &row); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if _, err := survey.AddBeneficiary(d, row); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}

type importResponse struct {
	survey.ImportSummary
	RosterSize int `json:"roster_size"`
}

// HandleImport bulk-imports beneficiaries from an uploaded CSV. Bad rows are
// skipped with a reason, not fatal; the summary tells the author exactly
// what happened to each rejected row.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardImportTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, maxRosterUpload)
	if err := r.ParseMultipartForm(maxRosterUpload); err != nil {
		httpjson.WriteError(h.Log, w, fault.Validationf("file", "upload too large or malformed: %v", err))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpjson.WriteError(h.Log, w, fault.New(fault.Validation, "file", "a CSV file upload named 'file' is required"))
		return
	}
	defer file.Close()

	rows, err := rostercsv.Parse(file)
	if err != nil {
		httpjson.WriteError(h.Log, w, fault.Validationf("file", "could not parse CSV: %v", err))
		return
	}

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	sum := survey.ImportBeneficiaries(d, rows)
	if err := h.Drafts.Put(ctx, d); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("roster import",
		zap.String("draft_id", d.ID),
		zap.Int("imported", sum.Imported),
		zap.Int("skipped", sum.Skipped))
	httpjson.Write(h.Log, w, http.StatusOK, importResponse{ImportSummary: sum, RosterSize: len(d.Beneficiaries)})
}

// HandleRemoveBeneficiary removes a roster entry by id.
func (h *Handler) HandleRemoveBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if err := survey.RemoveBeneficiary(d, chi.URLParam(r, "bid")); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}
