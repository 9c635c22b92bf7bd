package sessions

import (
	"context"
	"net/http"
	"time"

	"miam/models"

	"github.com/google/uuid"
)

const (
	CookieName = "session"

	authTTL  = 24 * time.Hour
	resetTTL = 15 * time.Minute
)

// Manager moves a client between the three session states. The cookie only
// carries a signed session id; the state itself lives in the store, so
// logout and completed resets revoke tokens before they expire.
type Manager struct {
	store  Store
	secret []byte
}

func NewManager(store Store, secret []byte) *Manager {
	return &Manager{store: store, secret: secret}
}

// Begin transitions the client to Authenticated.
func (m *Manager) Begin(ctx context.Context, w http.ResponseWriter, user *models.User) error {
	sess := models.Session{
		ID:       uuid.NewString(),
		State:    models.StateAuthenticated,
		UserID:   user.UserID,
		Username: user.Username,
	}
	return m.start(ctx, w, sess, authTTL)
}

// BeginReset transitions the client to ResetPending(username). Reached only
// through a successful recovery-answer check.
func (m *Manager) BeginReset(ctx context.Context, w http.ResponseWriter, username string) error {
	sess := models.Session{
		ID:       uuid.NewString(),
		State:    models.StateResetPending,
		Username: username,
	}
	return m.start(ctx, w, sess, resetTTL)
}

func (m *Manager) start(ctx context.Context, w http.ResponseWriter, sess models.Session, ttl time.Duration) error {
	if err := m.store.Save(ctx, sess, ttl); err != nil {
		return err
	}
	token, err := NewToken(sess.ID, m.secret, ttl)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Current resolves the request's session, or nil for anonymous clients.
// A cookie that fails verification or points at a revoked record counts
// as anonymous rather than an error.
func (m *Manager) Current(ctx context.Context, r *http.Request) *models.Session {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	id, err := ParseToken(c.Value, m.secret)
	if err != nil {
		return nil
	}
	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil
	}
	return sess
}

// End returns the client to Anonymous.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(CookieName); err == nil {
		if id, err := ParseToken(c.Value, m.secret); err == nil {
			_ = m.store.Delete(ctx, id)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
