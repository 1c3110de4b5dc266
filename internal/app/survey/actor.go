// internal/app/survey/actor.go
package survey

import "strings"

// Roles. Admins are the elevated role: they maintain the shared catalog and
// may author or delete fixed questions. Managers are standard survey authors
// within their organization.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Actor identifies who is performing an operation. The transport layer
// builds it from the session; the core never sees a request.
type Actor struct {
	ID   string
	Role string
}

// Elevated reports whether the actor may perform privileged operations.
func (a Actor) Elevated() bool {
	return strings.EqualFold(a.Role, RoleAdmin)
}
