package httpjson_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind fault.Kind
		want int
	}{
		{fault.Validation, http.StatusUnprocessableEntity},
		{fault.EmptyRoster, http.StatusUnprocessableEntity},
		{fault.Duplicate, http.StatusConflict},
		{fault.Guard, http.StatusConflict},
		{fault.DanglingReference, http.StatusConflict},
		{fault.Protected, http.StatusForbidden},
		{fault.Permission, http.StatusForbidden},
		{fault.Kind("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := httpjson.StatusFor(tt.kind); got != tt.want {
			t.Errorf("StatusFor(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestWriteError_Fault(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.WriteError(zap.NewNop(), rec, fault.New(fault.Duplicate, "email", "ada@example.org is already on the roster"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
	var body struct {
		Error struct {
			Kind  string `json:"kind"`
			Field string `json:"field"`
			Msg   string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Kind != "duplicate" || body.Error.Field != "email" {
		t.Errorf("body: %+v", body)
	}
}

func TestWriteError_NonFault(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.WriteError(zap.NewNop(), rec, errors.New("mongo exploded"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Error("internal error details must not leak to the client")
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Impact"}`))
	var p payload
	if err := httpjson.Decode(req, &p); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.Title != "Impact" {
		t.Errorf("title: got %q", p.Title)
	}

	// Unknown fields and junk are validation faults.
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nope":1}`))
	if err := httpjson.Decode(req, &p); !fault.Is(err, fault.Validation) {
		t.Errorf("unknown field: expected validation fault, got %v", err)
	}
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	if err := httpjson.Decode(req, &p); !fault.Is(err, fault.Validation) {
		t.Errorf("malformed body: expected validation fault, got %v", err)
	}
}
