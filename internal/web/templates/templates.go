// Package templates renders the server-side HTML pages.
// Each page is a small content template wrapped by a shared layout;
// handlers pass a per-page data struct embedding PageData.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/session"
)

//go:embed layout.tmpl pages/*.tmpl
var files embed.FS

// pageNames lists every renderable page; parsing happens once at init
// so a broken template fails fast at startup, not mid-request
var pageNames = []string{
	"landing",
	"user_login",
	"admin_login",
	"home",
	"animals",
	"donate",
	"volunteer",
	"about",
	"admin_dashboard",
	"admin_adoptions",
	"admin_volunteers",
	"admin_animals",
	"admin_animal_edit",
	"admin_logins",
	"submitted",
	"error",
}

var pages = func() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		parsed[name] = template.Must(template.ParseFS(files,
			"layout.tmpl",
			fmt.Sprintf("pages/%s.tmpl", name),
		))
	}
	return parsed
}()

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData carries the fields every page needs
type PageData struct {
	Title   string
	Active  string // nav highlight key
	Session *session.Session
	Flash   *FlashMessage
}

// Page data structs, one per template

type LandingData struct {
	PageData
}

type UserLoginData struct {
	PageData
	Email string
	Error string
}

type AdminLoginData struct {
	PageData
	Username string
	Error    string
}

type HomeData struct {
	PageData
}

type AnimalsData struct {
	PageData
	Animals []*model.Animal
}

type DonateData struct {
	PageData
}

type VolunteerData struct {
	PageData
	Error string
}

type AboutData struct {
	PageData
}

type AdminDashboardData struct {
	PageData
}

type AdminAdoptionsData struct {
	PageData
	Adoptions []*model.Adoption
}

type AdminVolunteersData struct {
	PageData
	Volunteers []*model.Volunteer
}

type AdminAnimalsData struct {
	PageData
	Animals []*model.Animal
	Error   string
}

type AdminAnimalEditData struct {
	PageData
	Animal *model.Animal
	Error  string
}

type AdminLoginsData struct {
	PageData
	Records []*model.LoginRecord
}

type SubmittedData struct {
	PageData
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}

type ErrorData struct {
	PageData
	Message string
}

// Render executes the named page into the response.
// The page is rendered into a buffer first so a template failure
// produces a clean 500 instead of a half-written body.
func Render(w http.ResponseWriter, name string, data any) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
