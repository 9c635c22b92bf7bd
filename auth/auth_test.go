package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"miam/sessions"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlers(t *testing.T) (*memUserStore, *sessions.Manager) {
	t.Helper()
	origStore, origSessions := Store, Sessions
	t.Cleanup(func() { Store, Sessions = origStore, origSessions })

	store := newMemUserStore()
	m := sessions.NewManager(sessions.NewMemoryStore(), []byte("test-secret"))
	Store, Sessions = store, m
	return store, m
}

func formRequest(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestSignupThenLogin(t *testing.T) {
	_, m := setupHandlers(t)

	rec := httptest.NewRecorder()
	Signup(rec, formRequest("/signup", url.Values{
		"username": {"alice"},
		"password": {"Abcdef1!"},
		"answer1":  {"blue"},
		"answer2":  {"Paris"},
		"answer3":  {"Rex"},
	}), nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	Login(rec, formRequest("/login", url.Values{
		"username": {"alice"},
		"password": {"Abcdef1!"},
	}), nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// The login response carries an authenticated session cookie.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	sess := m.Current(context.Background(), r)
	require.NotNil(t, sess)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "alice", sess.Username)
}

func TestSignupWeakPassword(t *testing.T) {
	setupHandlers(t)

	rec := httptest.NewRecorder()
	Signup(rec, formRequest("/signup", url.Values{
		"username": {"alice"},
		"password": {"abcdefgh"},
	}), nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signup", rec.Header().Get("Location"))
}

func TestSignupDuplicateUsername(t *testing.T) {
	setupHandlers(t)

	form := url.Values{
		"username": {"alice"},
		"password": {"Abcdef1!"},
		"answer1":  {"a"}, "answer2": {"b"}, "answer3": {"c"},
	}
	Signup(httptest.NewRecorder(), formRequest("/signup", form), nil)

	rec := httptest.NewRecorder()
	r := formRequest("/signup", form)
	r.Header.Set("Accept", "application/json")
	Signup(rec, r, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	setupHandlers(t)

	rec := httptest.NewRecorder()
	Login(rec, formRequest("/login", url.Values{
		"username": {"ghost"},
		"password": {"Abcdef1!"},
	}), nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestForgotPasswordFlow(t *testing.T) {
	_, m := setupHandlers(t)

	Signup(httptest.NewRecorder(), formRequest("/signup", url.Values{
		"username": {"alice"},
		"password": {"Abcdef1!"},
		"answer1":  {"blue"}, "answer2": {"Paris"}, "answer3": {"Rex"},
	}), nil)

	// One wrong answer keeps the client anonymous.
	rec := httptest.NewRecorder()
	ForgotPassword(rec, formRequest("/forgot_password", url.Values{
		"username": {"alice"},
		"answer1":  {"blue"}, "answer2": {"Paris"}, "answer3": {"Fido"},
	}), nil)
	assert.Equal(t, "/forgot_password", rec.Header().Get("Location"))

	// All three correct: session becomes ResetPending(alice).
	rec = httptest.NewRecorder()
	ForgotPassword(rec, formRequest("/forgot_password", url.Values{
		"username": {"alice"},
		"answer1":  {"blue"}, "answer2": {"Paris"}, "answer3": {"Rex"},
	}), nil)
	assert.Equal(t, "/reset_password/alice", rec.Header().Get("Location"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	sess := m.Current(context.Background(), r)
	require.NotNil(t, sess)
	assert.True(t, sess.ResetPendingFor("alice"))
}

func TestResetPasswordChangesCredential(t *testing.T) {
	store, _ := setupHandlers(t)

	Signup(httptest.NewRecorder(), formRequest("/signup", url.Values{
		"username": {"alice"},
		"password": {"Abcdef1!"},
		"answer1":  {"a"}, "answer2": {"b"}, "answer3": {"c"},
	}), nil)

	ps := httprouter.Params{{Key: "username", Value: "alice"}}

	// Policy applies at reset too.
	rec := httptest.NewRecorder()
	ResetPassword(rec, formRequest("/reset_password/alice", url.Values{
		"password": {"weak"},
	}), ps)
	assert.Equal(t, "/reset_password/alice", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	ResetPassword(rec, formRequest("/reset_password/alice", url.Values{
		"password": {"Newpass2@"},
	}), ps)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	ctx := context.Background()
	_, err := authenticateUser(ctx, store, "alice", "Newpass2@")
	assert.NoError(t, err)
	_, err = authenticateUser(ctx, store, "alice", "Abcdef1!")
	assert.Error(t, err)
}
