// Package web wires the HTTP surface: routing, middleware and the server
package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/storage"
	"github.com/sibro/pawhaven/internal/web/handler"
	"github.com/sibro/pawhaven/internal/web/middleware"
)

// RouterConfig holds the dependencies the router needs
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Store       storage.Store
	Clock       clock.Clock

	// BootstrapEnabled exposes the first-admin setup endpoint
	BootstrapEnabled bool
}

// NewRouter builds the full route table.
//
// Three tiers: public pages, user pages behind RequireUser, and admin
// pages behind RequireAdmin. The role gates are independent; neither
// role passes the other's gate.
func NewRouter(cfg RouterConfig) *mux.Router {
	h := handler.New(cfg.Logger, cfg.AuthService, cfg.Store, cfg.Clock, cfg.BootstrapEnabled)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFS)))

	public := r.NewRoute().Subrouter()
	public.Use(middleware.WithSession(cfg.AuthService))
	public.Use(middleware.Flash())
	public.HandleFunc("/", h.Landing).Methods(http.MethodGet)
	public.HandleFunc("/login", h.UserLoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", h.UserLogin).Methods(http.MethodPost)
	public.HandleFunc("/logout", h.Logout).Methods(http.MethodGet)
	public.HandleFunc("/admin/login", h.AdminLoginPage).Methods(http.MethodGet)
	public.HandleFunc("/admin/login", h.AdminLogin).Methods(http.MethodPost)
	public.HandleFunc("/admin/logout", h.AdminLogout).Methods(http.MethodGet)
	public.HandleFunc("/admin/create-first", h.CreateFirstAdmin).Methods(http.MethodGet)

	user := r.NewRoute().Subrouter()
	user.Use(middleware.WithSession(cfg.AuthService))
	user.Use(middleware.Flash())
	user.Use(middleware.RequireUser())
	user.HandleFunc("/home", h.Home).Methods(http.MethodGet)
	user.HandleFunc("/animals", h.Animals).Methods(http.MethodGet)
	user.HandleFunc("/adopt", h.AdoptForm).Methods(http.MethodGet)
	user.HandleFunc("/adopt", h.Adopt).Methods(http.MethodPost)
	user.HandleFunc("/donate", h.Donate).Methods(http.MethodGet)
	user.HandleFunc("/volunteer", h.VolunteerPage).Methods(http.MethodGet)
	user.HandleFunc("/volunteer", h.Volunteer).Methods(http.MethodPost)
	user.HandleFunc("/about", h.About).Methods(http.MethodGet)

	admin := r.NewRoute().Subrouter()
	admin.Use(middleware.WithSession(cfg.AuthService))
	admin.Use(middleware.Flash())
	admin.Use(middleware.RequireAdmin())
	admin.HandleFunc("/admin/dashboard", h.AdminDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/admin", h.AdminAdoptions).Methods(http.MethodGet)
	admin.HandleFunc("/admin/adoptions/{id:[0-9]+}/status", h.AdminAdoptionStatus).Methods(http.MethodPost)
	admin.HandleFunc("/admin/adoptions/{id:[0-9]+}/delete", h.AdminAdoptionDelete).Methods(http.MethodPost)
	admin.HandleFunc("/admin-volunteers", h.AdminVolunteers).Methods(http.MethodGet)
	admin.HandleFunc("/admin-volunteers/{id:[0-9]+}/delete", h.AdminVolunteerDelete).Methods(http.MethodPost)
	admin.HandleFunc("/admin-animals", h.AdminAnimals).Methods(http.MethodGet)
	admin.HandleFunc("/admin-animals/add", h.AdminAnimalAdd).Methods(http.MethodPost)
	admin.HandleFunc("/admin-animals/{id:[0-9]+}/delete", h.AdminAnimalDelete).Methods(http.MethodPost)
	admin.HandleFunc("/admin-animals/{id:[0-9]+}/edit", h.AdminAnimalEditPage).Methods(http.MethodGet)
	admin.HandleFunc("/admin-animals/{id:[0-9]+}/edit", h.AdminAnimalEdit).Methods(http.MethodPost)
	admin.HandleFunc("/admin-logins", h.AdminLogins).Methods(http.MethodGet)

	return r
}
