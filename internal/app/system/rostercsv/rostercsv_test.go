package rostercsv_test

import (
	"strings"
	"testing"

	"github.com/impactlens/impactlens/internal/app/system/rostercsv"
)

func TestParse_WithHeader(t *testing.T) {
	in := "name,email,phone\nAda Obi,ada@example.org,+15551234567\nBen Carter,ben@example.org,\n"

	rows, err := rostercsv.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Ada Obi" || rows[0].Email != "ada@example.org" || rows[0].Phone != "+15551234567" {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].Phone != "" {
		t.Errorf("row 1 phone: got %q, want empty", rows[1].Phone)
	}
}

func TestParse_WithoutHeader(t *testing.T) {
	in := "Ada Obi,ada@example.org\nBen Carter,,+15551234567\n"

	rows, err := rostercsv.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Ada Obi" {
		t.Errorf("first data row was eaten as a header: %+v", rows[0])
	}
}

func TestParse_FullNameHeader(t *testing.T) {
	in := "Full Name,Email,Phone\nAda Obi,ada@example.org,\n"

	rows, err := rostercsv.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestParse_DropsBlankRows(t *testing.T) {
	in := "name,email,phone\nAda Obi,ada@example.org,\n,,\n  ,  ,  \nBen Carter,ben@example.org,\n"

	rows, err := rostercsv.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank rows dropped)", len(rows))
	}
}

func TestParse_KeepsIncompleteRows(t *testing.T) {
	// A row missing contact columns still comes through; the roster
	// manager rejects it with a row-numbered reason.
	in := "name\nAda Obi\n"

	rows, err := rostercsv.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Email != "" || rows[0].Phone != "" {
		t.Errorf("missing columns should read as empty: %+v", rows[0])
	}
}

func TestParse_Empty(t *testing.T) {
	rows, err := rostercsv.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestParse_MalformedCSV(t *testing.T) {
	in := "name,email\n\"unterminated,ada@example.org\n"

	if _, err := rostercsv.Parse(strings.NewReader(in)); err == nil {
		t.Fatal("expected an error for malformed CSV")
	}
}
