// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, id, and a found flag.
// ok=true means a valid, signed-in user.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// ActorCtx maps the session user onto the survey core's Actor. Visitors get
// a zero Actor, which is never elevated.
func ActorCtx(r *http.Request) survey.Actor {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return survey.Actor{}
	}
	return survey.Actor{ID: user.ID, Role: strings.ToLower(user.Role)}
}

// IsAdmin reports whether the current request's user carries the elevated
// admin role.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == survey.RoleAdmin
}

// IsManager reports whether the current request's user is a standard survey
// author.
func IsManager(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == survey.RoleManager
}

// CanEditDraft reports whether the current user may touch the draft owned by
// ownerID. Owners can; admins can touch any draft.
func CanEditDraft(r *http.Request, ownerID string) bool {
	role, _, userID, ok := UserCtx(r)
	if !ok {
		return false
	}
	return role == survey.RoleAdmin || userID == ownerID
}
