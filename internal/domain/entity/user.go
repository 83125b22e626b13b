package entity

import (
	"strings"

	"locus/internal/domain/constants"
)

// UserProfile is the stored profile of an account, keyed by the identity provider's uid.
type UserProfile struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// Identity is a verified account as reported by the identity provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityEventType enumerates identity provider notifications.
type IdentityEventType string

const (
	IdentitySignIn         IdentityEventType = "sign_in"
	IdentitySignOut        IdentityEventType = "sign_out"
	IdentitySessionChanged IdentityEventType = "session_changed"
)

// IdentityEvent is a change of the signed-in account. Identity is nil for sign-out.
type IdentityEvent struct {
	Type     IdentityEventType
	Identity *Identity
}

// SessionState tracks how far role resolution has progressed.
type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionResolving       SessionState = "resolving"
	SessionResolved        SessionState = "resolved"
)

// Session is the explicit authentication context passed to every gated operation.
type Session struct {
	AccountID   string       `json:"account_id,omitempty"`
	Email       string       `json:"email,omitempty"`
	DisplayName string       `json:"display_name,omitempty"`
	Role        Role         `json:"role,omitempty"`
	State       SessionState `json:"state"`
}

// NewUnauthenticatedSession returns the session of a signed-out client.
func NewUnauthenticatedSession() *Session {
	return &Session{State: SessionUnauthenticated}
}

// NewResolvingSession returns a signed-in session whose role is not yet known.
func NewResolvingSession(identity *Identity) *Session {
	return &Session{
		AccountID:   identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		State:       SessionResolving,
	}
}

// IsAuthenticated reports whether the session belongs to a signed-in account.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.State != SessionUnauthenticated && s.AccountID != ""
}

// EffectiveRole returns the role that gates may rely on. It is empty until
// role resolution has completed.
func (s *Session) EffectiveRole() Role {
	if s == nil || s.State != SessionResolved {
		return ""
	}

	return s.Role
}

// Actor identifies the session in change history.
func (s *Session) Actor() string {
	if s == nil {
		return constants.UnknownActor
	}
	if email := strings.TrimSpace(s.Email); email != "" {
		return email
	}
	if s.AccountID != "" {
		return s.AccountID
	}

	return constants.UnknownActor
}
