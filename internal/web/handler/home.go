package handler

import (
	"net/http"

	"github.com/sibro/pawhaven/internal/web/middleware"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// Landing serves the public entry page. A request that already carries
// an authenticated session skips straight to its home page.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	switch {
	case sess.IsUser():
		http.Redirect(w, r, "/home", http.StatusSeeOther)
	case sess.IsAdmin():
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	default:
		h.render(w, r, "landing", templates.LandingData{
			PageData: h.pageData(r, "Welcome", ""),
		})
	}
}

// Home serves the signed-in user's home page
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", templates.HomeData{
		PageData: h.pageData(r, "Home", "home"),
	})
}

// About serves the static about page
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about", templates.AboutData{
		PageData: h.pageData(r, "About Us", "about"),
	})
}

// Donate serves the static donation page
func (h *Handler) Donate(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "donate", templates.DonateData{
		PageData: h.pageData(r, "Donate", "donate"),
	})
}
