// internal/app/features/session/handler.go
package session

import (
	"net/http"
	"strings"

	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"go.uber.org/zap"
)

// Identity headers set by the fronting identity provider. Credentials are
// never verified here; the proxy strips these headers from client traffic
// and injects the verified identity before forwarding.
const (
	headerUserID = "X-Auth-User-Id"
	headerName   = "X-Auth-User-Name"
	headerEmail  = "X-Auth-User-Email"
	headerRole   = "X-Auth-User-Role"
	headerOrgID  = "X-Auth-Org-Id"
)

// Handler exchanges a proxy-verified identity for the session cookie the
// rest of the service reads.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// HandleCreate signs the forwarded identity into a session cookie.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.Header.Get(headerUserID))
	if id == "" {
		http.Error(w, `{"error":{"kind":"unauthorized","message":"no verified identity"}}`, http.StatusUnauthorized)
		return
	}
	role := strings.ToLower(strings.TrimSpace(r.Header.Get(headerRole)))
	if role != survey.RoleAdmin && role != survey.RoleManager {
		httpjson.WriteError(h.Log, w, fault.Validationf("role", "unknown role %q", role))
		return
	}

	u := &auth.SessionUser{
		ID:             id,
		Name:           strings.TrimSpace(r.Header.Get(headerName)),
		Email:          strings.TrimSpace(r.Header.Get(headerEmail)),
		Role:           role,
		OrganizationID: strings.TrimSpace(r.Header.Get(headerOrgID)),
	}
	if err := auth.SignIn(w, r, u); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	h.Log.Info("session created", zap.String("user_id", u.ID), zap.String("role", u.Role))
	httpjson.Write(h.Log, w, http.StatusCreated, u)
}

// ServeCurrent returns the signed-in user.
func (h *Handler) ServeCurrent(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	httpjson.Write(h.Log, w, http.StatusOK, u)
}

// HandleDelete clears the session cookie.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		httpjson.WriteError(h.Log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
