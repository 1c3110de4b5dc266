// internal/app/system/rostercsv/rostercsv.go
package rostercsv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/impactlens/impactlens/internal/app/survey"
)

// Parse reads a beneficiary roster from CSV: name, email, phone per row,
// header optional. It only shapes rows; per-row validation and dedupe happen
// in the roster manager, which skips bad rows with a reason instead of
// failing the batch. Fully blank rows are dropped here since they carry no
// information at all.
func Parse(r io.Reader) ([]survey.RosterRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []survey.RosterRow
	if !isHeader(first) {
		rows = append(rows, normalize(first))
	}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, normalize(rec))
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.Name != "" || row.Email != "" || row.Phone != "" {
			kept = append(kept, row)
		}
	}
	return kept, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	head := strings.TrimSpace(rec[0])
	return strings.EqualFold(head, "name") || strings.EqualFold(head, "full name")
}

func normalize(rec []string) survey.RosterRow {
	var row survey.RosterRow
	if len(rec) > 0 {
		row.Name = strings.TrimSpace(rec[0])
	}
	if len(rec) > 1 {
		row.Email = strings.TrimSpace(rec[1])
	}
	if len(rec) > 2 {
		row.Phone = strings.TrimSpace(rec[2])
	}
	return row
}
