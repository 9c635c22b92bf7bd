package render

import (
	"encoding/base64"
	"errors"
	"net/http"

	"miam/models"
	"miam/utils"
)

// Renderer is the templating collaborator: it receives a view name and a
// data payload and writes the response. The default implementation answers
// with JSON so the service is usable without a template layer mounted.
type Renderer interface {
	Render(w http.ResponseWriter, view string, data interface{})
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, view string, data interface{}) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"view": view, "data": data})
}

var Default Renderer = JSONRenderer{}

func View(w http.ResponseWriter, view string, data interface{}) {
	Default.Render(w, view, data)
}

const flashCookie = "flash"

// SetFlash stores a one-shot message for the next page load.
func SetFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		HttpOnly: true,
	})
}

// TakeFlash reads and clears the pending flash message.
func TakeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	msg, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}
	return string(msg)
}

// Redirect flashes msg and sends the client to location with See Other.
func Redirect(w http.ResponseWriter, r *http.Request, location, msg string) {
	if msg != "" {
		SetFlash(w, msg)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// Fail recovers a taxonomy error at the request boundary: JSON clients get
// the mapped status, page clients get a flash plus redirect.
func Fail(w http.ResponseWriter, r *http.Request, err error, location string) {
	if utils.WantsJSON(r) {
		utils.RespondWithError(w, StatusFor(err), err.Error())
		return
	}
	Redirect(w, r, location, err.Error())
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
