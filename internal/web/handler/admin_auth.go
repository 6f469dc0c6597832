package handler

import (
	"errors"
	"net/http"

	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// Bootstrap credentials for the first admin account. The endpoint only
// works while no admin exists and while bootstrap is enabled, so these
// are setup defaults, not a backdoor left open.
const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "admin123"
)

// AdminLoginPage serves the admin login form
func (h *Handler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_login", templates.AdminLoginData{
		PageData: h.pageData(r, "Admin Login", ""),
	})
}

// AdminLogin handles the admin login form submission. Unknown username
// and wrong password produce the same message, so the form never
// confirms which admin accounts exist.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.renderAdminLoginError(w, r, username, "Please enter username and password")
		return
	}

	sess, err := h.auth.LoginAdmin(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.renderAdminLoginError(w, r, username, "Invalid credentials")
			return
		}
		h.renderError(w, r, err, "We could not sign you in right now. Please try again.")
		return
	}

	h.setSessionCookie(w, sess)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) renderAdminLoginError(w http.ResponseWriter, r *http.Request, username, message string) {
	w.WriteHeader(http.StatusUnauthorized)
	h.render(w, r, "admin_login", templates.AdminLoginData{
		PageData: h.pageData(r, "Admin Login", ""),
		Username: username,
		Error:    message,
	})
}

// AdminLogout destroys the current session and returns to the landing
// page
func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.destroySession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CreateFirstAdmin creates the initial admin account with the setup
// credentials. Disabled deployments get a 404; once any admin exists
// the endpoint refuses no matter the flag.
func (h *Handler) CreateFirstAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.bootstrapEnabled {
		http.NotFound(w, r)
		return
	}

	_, err := h.auth.BootstrapAdmin(r.Context(), bootstrapAdminUsername, bootstrapAdminPassword)
	if err != nil {
		if errors.Is(err, auth.ErrAdminExists) {
			h.render(w, r, "submitted", templates.SubmittedData{
				PageData:  h.pageData(r, "Admin Setup", ""),
				Heading:   "Already set up",
				Message:   "An admin account already exists. Sign in with your admin credentials.",
				BackURL:   "/admin/login",
				BackLabel: "Go to admin login",
			})
			return
		}
		h.renderError(w, r, err, "Admin setup failed. Please try again.")
		return
	}

	h.render(w, r, "submitted", templates.SubmittedData{
		PageData:  h.pageData(r, "Admin Setup", ""),
		Heading:   "Admin account created",
		Message:   "The initial admin account is ready. Sign in and change the password.",
		BackURL:   "/admin/login",
		BackLabel: "Go to admin login",
	})
}
