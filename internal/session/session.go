// Package session holds server-side admin sessions. The browser only ever
// carries an opaque token; the admin id it maps to never leaves the server.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultCookieName = "admin_session"

type entry struct {
	adminID uint
	expires time.Time
}

// Manager issues, resolves and revokes admin sessions. Configuration is
// explicit via Options; there is no package-level state.
type Manager struct {
	cookie string
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]entry
}

type Options struct {
	CookieName string        // defaults to DefaultCookieName
	TTL        time.Duration // defaults to 12h
}

func NewManager(opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.TTL <= 0 {
		opts.TTL = 12 * time.Hour
	}
	return &Manager{
		cookie:   opts.CookieName,
		ttl:      opts.TTL,
		sessions: make(map[string]entry),
	}
}

// Establish creates a session bound to adminID and sets the cookie.
func (m *Manager) Establish(w http.ResponseWriter, adminID uint) {
	token := uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = entry{adminID: adminID, expires: time.Now().Add(m.ttl)}
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(m.ttl),
	})
}

// AdminID resolves the request's session cookie to an admin id.
// Expired entries are dropped on lookup.
func (m *Manager) AdminID(r *http.Request) (uint, bool) {
	c, err := r.Cookie(m.cookie)
	if err != nil || c.Value == "" {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[c.Value]
	if !ok {
		return 0, false
	}
	if time.Now().After(e.expires) {
		delete(m.sessions, c.Value)
		return 0, false
	}
	return e.adminID, true
}

// Clear revokes the request's session (if any) and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(m.cookie); err == nil && c.Value != "" {
		m.mu.Lock()
		delete(m.sessions, c.Value)
		m.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
