// internal/app/system/httpjson/httpjson.go
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/impactlens/impactlens/internal/domain/fault"
	"go.uber.org/zap"
)

// Write serializes payload to JSON with the given status.
func Write(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Warn("json encode failed", zap.Error(err))
	}
}

// errorBody is the wire shape of a failed call: enough structure (kind +
// offending field) for the client to render a specific message.
type errorBody struct {
	Error struct {
		Kind  string `json:"kind"`
		Field string `json:"field,omitempty"`
		Msg   string `json:"message"`
	} `json:"error"`
}

// WriteError maps a fault kind to an HTTP status and writes the structured
// error body. Non-fault errors are logged and rendered as a bare 500.
func WriteError(logger *zap.Logger, w http.ResponseWriter, err error) {
	var fe *fault.Error
	if !errors.As(err, &fe) {
		if logger != nil {
			logger.Error("internal error", zap.Error(err))
		}
		http.Error(w, `{"error":{"kind":"internal","message":"internal error"}}`, http.StatusInternalServerError)
		return
	}

	var body errorBody
	body.Error.Kind = string(fe.Kind)
	body.Error.Field = fe.Field
	body.Error.Msg = fe.Msg
	Write(logger, w, StatusFor(fe.Kind), body)
}

// StatusFor maps fault kinds onto HTTP statuses.
func StatusFor(kind fault.Kind) int {
	switch kind {
	case fault.Validation, fault.EmptyRoster:
		return http.StatusUnprocessableEntity
	case fault.Duplicate, fault.Guard, fault.DanglingReference:
		return http.StatusConflict
	case fault.Protected, fault.Permission:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON request body into dst, returning a validation fault on
// malformed input so handlers can pass it straight to WriteError.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fault.Validationf("body", "malformed request body: %v", err)
	}
	return nil
}
