package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie set on login.
const CookieName = "blog_session"

// Manager issues and resolves session cookies against a Store.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Issue creates a session for userID and sets the cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, userID int64) error {
	token := uuid.NewString()

	if err := m.store.Set(r.Context(), token, userID, m.ttl); err != nil {
		return fmt.Errorf("issue session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve returns the user ID for the request's session cookie.
// Returns (0, false) for missing, unknown, or expired sessions.
func (m *Manager) Resolve(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	userID, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// Clear destroys the session in the store and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		// Best effort: a stale cookie with no stored session is not an error.
		_ = m.store.Delete(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
