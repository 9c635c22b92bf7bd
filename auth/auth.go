package auth

import (
	"errors"
	"net/http"

	"miam/models"
	"miam/mq"
	"miam/render"
	"miam/sessions"
	"miam/utils"

	"github.com/julienschmidt/httprouter"
)

var Sessions *sessions.Manager

func ShowLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	render.View(w, "login", utils.M{"flash": render.TakeFlash(w, r)})
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := authenticateUser(r.Context(), Store, username, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			render.Fail(w, r, err, "/login")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := Sessions.Begin(r.Context(), w, user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	render.Redirect(w, r, "/", "")
}

func ShowSignup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	render.View(w, "signup", utils.M{"flash": render.TakeFlash(w, r)})
}

func Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	user, err := registerUser(r.Context(), Store,
		r.FormValue("username"),
		r.FormValue("password"),
		r.FormValue("answer1"),
		r.FormValue("answer2"),
		r.FormValue("answer3"),
	)
	if err != nil {
		if errors.Is(err, models.ErrConflict) || errors.Is(err, models.ErrInvalidPassword) {
			render.Fail(w, r, err, "/signup")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	mq.Emit("user-registered", mq.Index{EntityType: "user", EntityId: user.UserID, Method: "POST"})
	render.Redirect(w, r, "/login", "Account created, please log in")
}

func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	Sessions.End(r.Context(), w, r)
	render.Redirect(w, r, "/login", "")
}

func ShowForgotPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	render.View(w, "forgot_password", utils.M{"flash": render.TakeFlash(w, r)})
}

// ForgotPassword enters ResetPending on a full recovery-answer match.
// Only anonymous clients may start the flow.
func ForgotPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if sess := Sessions.Current(r.Context(), r); sess.Authenticated() {
		render.Redirect(w, r, "/", "")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")

	err := verifyRecovery(r.Context(), Store, username,
		r.FormValue("answer1"),
		r.FormValue("answer2"),
		r.FormValue("answer3"),
	)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			render.Fail(w, r, err, "/forgot_password")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := Sessions.BeginReset(r.Context(), w, username); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	render.Redirect(w, r, "/reset_password/"+username, "")
}

func ShowResetPassword(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	render.View(w, "reset_password", utils.M{
		"username": ps.ByName("username"),
		"flash":    render.TakeFlash(w, r),
	})
}

// ResetPassword runs behind middleware.RequireResetPending, so the pending
// state is already known to match the path username.
func ResetPassword(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	username := ps.ByName("username")

	if err := resetPassword(r.Context(), Store, username, r.FormValue("password")); err != nil {
		if errors.Is(err, models.ErrInvalidPassword) {
			render.Fail(w, r, err, "/reset_password/"+username)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Back to Anonymous: the user logs in with the new password.
	Sessions.End(r.Context(), w, r)
	render.Redirect(w, r, "/login", "Password updated, please log in")
}
