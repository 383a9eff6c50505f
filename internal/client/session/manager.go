package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
)

// Manager wraps a Store with the authentication rules: the token is decoded
// (not verified, the client holds no signing key) and its exp claim is
// compared lazily against the clock on every check.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Current returns the stored session, or nil when none exists.
func (m *Manager) Current() (*models.Session, error) {
	return m.store.Load()
}

// Set persists a freshly issued session.
func (m *Manager) Set(s *models.Session) error {
	return m.store.Save(s)
}

// Clear drops the stored session.
func (m *Manager) Clear() error {
	return m.store.Clear()
}

// Token returns the stored bearer token, or "" when logged out.
func (m *Manager) Token() string {
	s, err := m.store.Load()
	if err != nil || s == nil {
		return ""
	}
	return s.AccessToken
}

// IsAuthenticated reports whether a valid, non-expired token is stored.
//
// Any failure path (no token, undecodable token, exp at or before now)
// also clears the store, so callers must tolerate the session disappearing
// as a side effect of the check. A token without an exp claim is accepted.
func (m *Manager) IsAuthenticated() bool {
	s, err := m.store.Load()
	if err != nil || s == nil || s.AccessToken == "" {
		return false
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, jwt.MapClaims{})
	if err != nil {
		_ = m.store.Clear()
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		_ = m.store.Clear()
		return false
	}
	if exp != nil && !exp.After(m.now()) {
		_ = m.store.Clear()
		return false
	}

	return true
}
