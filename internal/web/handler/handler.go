// Package handler implements the HTTP handlers behind the web UI
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/session"
	"github.com/sibro/pawhaven/internal/storage"
	"github.com/sibro/pawhaven/internal/web/middleware"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// Handler holds the dependencies shared by all page handlers
type Handler struct {
	logger *slog.Logger
	auth   *auth.Service
	store  storage.Store
	clock  clock.Clock

	bootstrapEnabled bool
}

// New creates a Handler
func New(logger *slog.Logger, authService *auth.Service, store storage.Store, clk clock.Clock, bootstrapEnabled bool) *Handler {
	return &Handler{
		logger:           logger,
		auth:             authService,
		store:            store,
		clock:            clk,
		bootstrapEnabled: bootstrapEnabled,
	}
}

// pageData assembles the fields common to every page from the request
// context
func (h *Handler) pageData(r *http.Request, title, active string) templates.PageData {
	return templates.PageData{
		Title:   title,
		Active:  active,
		Session: middleware.GetSession(r.Context()),
		Flash:   middleware.GetFlash(r.Context()),
	}
}

// render executes a page template, falling back to a plain 500 if the
// template itself fails
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := templates.Render(w, name, data); err != nil {
		h.logger.Error("failed to render page",
			slog.String("page", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// renderError shows the generic failure page. Storage errors reach the
// user only in this sanitized form; the detail goes to the log.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error, message string) {
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	w.WriteHeader(http.StatusInternalServerError)
	h.render(w, r, "error", templates.ErrorData{
		PageData: h.pageData(r, "Error", ""),
		Message:  message,
	})
}

// setSessionCookie attaches the session token to the response.
// The cookie expires alongside the server-side session.
func (h *Handler) setSessionCookie(w http.ResponseWriter, sess *session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pathID extracts the numeric {id} path variable
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
