// internal/domain/fault/fault.go
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the presentation layer can render a specific,
// actionable message instead of a generic one.
type Kind string

const (
	// Validation covers malformed or incomplete input. Recoverable by
	// correcting the input and retrying the same call.
	Validation Kind = "validation"

	// Duplicate is a roster contact collision (email or phone already present).
	Duplicate Kind = "duplicate"

	// Protected is an attempted mutation of a fixed/protected object without
	// an elevated role.
	Protected Kind = "protected"

	// Permission is a privileged catalog operation attempted by a
	// non-elevated caller.
	Permission Kind = "permission"

	// Guard is a wizard step-advance attempted with an unmet precondition.
	Guard Kind = "guard"

	// DanglingReference is a publish-time integrity violation caused by an
	// earlier catalog deletion.
	DanglingReference Kind = "dangling_reference"

	// EmptyRoster is a publish attempt with no beneficiaries.
	EmptyRoster Kind = "empty_roster"
)

// Error carries the failure kind plus the offending field or id.
type Error struct {
	Kind  Kind
	Field string // offending field name or entity id, may be empty
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New constructs an Error of the given kind.
func New(kind Kind, field, msg string) *Error {
	return &Error{Kind: kind, Field: field, Msg: msg}
}

// Validationf builds a Validation error with a formatted message.
func Validationf(field, format string, args ...any) *Error {
	return &Error{Kind: Validation, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is (or wraps) a fault Error of the given kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

// KindOf returns the kind of err, or "" if err is not a fault Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
