// internal/app/features/wizard/window.go
package wizard

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
)

type windowRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// HandleWindow sets the survey's activity window. Dates arrive as
// YYYY-MM-DD or RFC 3339; either bound may be blank while the author is
// still deciding.
func (h *Handler) HandleWindow(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), wizardShortTimeout)
	defer cancel()

	var req windowRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}

	d := h.loadDraft(ctx, w, r, chi.URLParam(r, "id"))
	if d == nil {
		return
	}
	if err := survey.SetWindow(d, start, end); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.save(ctx, w, d)
}

func parseDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, fault.Validationf(field, "%q is not a valid date; use YYYY-MM-DD or RFC 3339", s)
}
