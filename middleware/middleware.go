package middleware

import (
	"context"
	"log"
	"net/http"

	"miam/globals"
	"miam/models"
	"miam/render"
	"miam/sessions"

	"github.com/julienschmidt/httprouter"
)

var manager *sessions.Manager

// Setup wires the shared session manager. Must run before the router serves.
func Setup(m *sessions.Manager) {
	manager = m
}

// Authenticate requires an Authenticated session and puts the user id and
// username on the request context.
func Authenticate(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := manager.Current(r.Context(), r)
		if !sess.Authenticated() {
			render.Fail(w, r, models.ErrUnauthorized, "/login")
			return
		}
		h(w, r.WithContext(withSession(r.Context(), sess)), ps)
	}
}

// OptionalAuth attaches session identity when present but lets anonymous
// requests through.
func OptionalAuth(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if sess := manager.Current(r.Context(), r); sess.Authenticated() {
			r = r.WithContext(withSession(r.Context(), sess))
		}
		h(w, r, ps)
	}
}

// RequireResetPending gates the reset form: the session must be in
// ResetPending for exactly the username in the path. Anything else goes
// back to the recovery entry point.
func RequireResetPending(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := manager.Current(r.Context(), r)
		if !sess.ResetPendingFor(ps.ByName("username")) {
			render.Fail(w, r, models.ErrUnauthorized, "/forgot_password")
			return
		}
		h(w, r, ps)
	}
}

func withSession(ctx context.Context, sess *models.Session) context.Context {
	ctx = context.WithValue(ctx, globals.UserIDKey, sess.UserID)
	return context.WithValue(ctx, globals.UsernameKey, sess.Username)
}

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("🔥 Panic recovered: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
