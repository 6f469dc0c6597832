package handler

import (
	"net/http"

	"github.com/sibro/pawhaven/internal/web/middleware"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// UserLoginPage serves the user login form
func (h *Handler) UserLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "user_login", templates.UserLoginData{
		PageData: h.pageData(r, "Login", ""),
	})
}

// UserLogin handles the user login form submission.
// Both fields must be non-empty; beyond that the email is taken on
// trust, so the password is never checked against anything.
func (h *Handler) UserLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "user_login", templates.UserLoginData{
			PageData: h.pageData(r, "Login", ""),
			Email:    email,
			Error:    "Please enter email and password",
		})
		return
	}

	sess, err := h.auth.LoginUser(r.Context(), email)
	if err != nil {
		h.renderError(w, r, err, "We could not sign you in right now. Please try again.")
		return
	}

	h.setSessionCookie(w, sess)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Logout destroys the current session and returns to the landing page.
// Safe to hit without a session; it just redirects.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.destroySession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) destroySession(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to destroy session",
				"error", err.Error(),
			)
		}
	}
	h.clearSessionCookie(w)
}
