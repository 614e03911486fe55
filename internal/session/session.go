// Package session issues anonymous tokens that tie a cart to a client.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// Manager hands out random session tokens with a TTL. Tokens are held in
// memory only, matching the process-lifetime scope of the carts they own.
type Manager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]time.Time // token -> expiry
	now      func() time.Time
}

// NewManager returns a Manager whose tokens expire after ttl.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Issue creates and records a new session token.
func (m *Manager) Issue() (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.sessions[token] = m.now().Add(m.ttl)
	m.mu.Unlock()
	return token, nil
}

// Validate reports whether the token is known and unexpired. Expired tokens
// are dropped on access.
func (m *Manager) Validate(token string) bool {
	m.mu.RLock()
	expiry, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return false
	}
	return true
}

// TTLSeconds exposes the configured lifetime for API responses.
func (m *Manager) TTLSeconds() int {
	return int(m.ttl.Seconds())
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
