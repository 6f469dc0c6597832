package web_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sibro/pawhaven/internal/model"
)

func TestAdminLoginSuccess(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")

	ts.loginAdmin("admin", "admin123")

	rr := ts.get("/admin/dashboard")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("nav").Text(), "admin")

	records, err := ts.app.Store.ListLoginRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "admin", records[0].Email)
	require.Equal(t, model.RoleAdmin, records[0].Role)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")

	rr := ts.post("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("p.error").Text(), "Invalid credentials")
	require.False(t, ts.cookies.hasSession(), "Expected no session for rejected login")

	records, err := ts.app.Store.ListLoginRecords(context.Background())
	require.NoError(t, err)
	require.Empty(t, records, "Failed login must not be audited")
}

func TestAdminLoginUnknownUsername(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")

	rr := ts.post("/admin/login", url.Values{"username": {"nobody"}, "password": {"admin123"}})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Same message as a wrong password, so the form does not reveal
	// which admin accounts exist
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("p.error").Text(), "Invalid credentials")
	require.False(t, ts.cookies.hasSession())
}

func TestCreateFirstAdmin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/admin/create-first")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("h1").Text(), "Admin account created")

	ts.loginAdmin("admin", "admin123")
}

func TestCreateFirstAdminRefusesSecond(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/admin/create-first")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.get("/admin/create-first")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("h1").Text(), "Already set up")

	count, err := ts.app.Store.CountAdmins(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAnimalManagement(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")
	ts.loginAdmin("admin", "admin123")

	// Add
	rr := ts.post("/admin-animals/add", url.Values{
		"name":   {"Rex"},
		"breed":  {"Labrador"},
		"health": {"Vaccinated"},
		"image":  {"https://example.com/rex.jpg"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/admin-animals", rr.Header().Get("Location"))

	rr = ts.get("/admin-animals")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("table").Text(), "Rex")
	require.Contains(t, doc.Find(".flash").Text(), "Animal added")

	// Edit
	rr = ts.get("/admin-animals/1/edit")
	require.Equal(t, http.StatusOK, rr.Code)
	doc = parseHTML(rr.Body)
	val, _ := doc.Find(`input[name="name"]`).Attr("value")
	require.Equal(t, "Rex", val)

	rr = ts.post("/admin-animals/1/edit", url.Values{
		"name":   {"Rexy"},
		"breed":  {"Labrador"},
		"health": {"Vaccinated, chipped"},
		"image":  {"https://example.com/rex.jpg"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	animal, err := ts.app.Store.GetAnimal(context.Background(), model.AnimalID(1))
	require.NoError(t, err)
	require.Equal(t, "Rexy", animal.Name)
	require.Equal(t, "Vaccinated, chipped", animal.Health)

	// Rejecting an empty name keeps the record unchanged
	rr = ts.post("/admin-animals/1/edit", url.Values{"name": {""}})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// Delete
	rr = ts.post("/admin-animals/1/delete", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	animals, err := ts.app.Store.ListAnimals(context.Background())
	require.NoError(t, err)
	require.Empty(t, animals)
}

func TestAddAnimalRequiresName(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")
	ts.loginAdmin("admin", "admin123")

	rr := ts.post("/admin-animals/add", url.Values{"name": {""}, "breed": {"Labrador"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("p.error").Text(), "Name is required")

	animals, err := ts.app.Store.ListAnimals(context.Background())
	require.NoError(t, err)
	require.Empty(t, animals)
}

func TestAdoptionReviewFlow(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")
	ts.loginAdmin("admin", "admin123")

	rr := ts.post("/admin-animals/add", url.Values{"name": {"Whiskers"}, "breed": {"Tabby"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	// Switch to a user and file an adoption request
	rr = ts.get("/admin/logout")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	ts.loginUser("jo@example.com")

	rr = ts.get("/animals")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, parseHTML(rr.Body).Text(), "Whiskers")

	rr = ts.post("/adopt", url.Values{
		"animal_id": {"1"},
		"user_name": {"Jo Smith"},
		"email":     {"jo@example.com"},
		"phone":     {"555-0101"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, parseHTML(rr.Body).Find("h1").Text(), "Adoption request submitted")

	// Back to the admin to review it
	rr = ts.get("/logout")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	ts.loginAdmin("admin", "admin123")

	rr = ts.get("/admin")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("table").Text(), "Jo Smith")
	require.Contains(t, doc.Find("table").Text(), "pending")

	rr = ts.post("/admin/adoptions/1/status", url.Values{"status": {"approved"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	adoptions, err := ts.app.Store.ListAdoptions(context.Background())
	require.NoError(t, err)
	require.Len(t, adoptions, 1)
	require.Equal(t, model.AdoptionApproved, adoptions[0].Status)

	// An arbitrary status value is rejected
	rr = ts.post("/admin/adoptions/1/status", url.Values{"status": {"maybe"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.post("/admin/adoptions/1/delete", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	adoptions, err = ts.app.Store.ListAdoptions(context.Background())
	require.NoError(t, err)
	require.Empty(t, adoptions)
}

func TestVolunteerFlow(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")
	ts.loginUser("vol@example.com")

	rr := ts.get("/volunteer")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.post("/volunteer", url.Values{
		"full_name":    {"Sam Park"},
		"email":        {"vol@example.com"},
		"phone":        {"555-0102"},
		"availability": {"Weekends"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, parseHTML(rr.Body).Find("h1").Text(), "Volunteer application submitted")

	rr = ts.get("/logout")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	ts.loginAdmin("admin", "admin123")

	rr = ts.get("/admin-volunteers")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	require.Contains(t, doc.Find("table").Text(), "Sam Park")
	require.Contains(t, doc.Find("table").Text(), "Weekends")

	rr = ts.post("/admin-volunteers/1/delete", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	volunteers, err := ts.app.Store.ListVolunteers(context.Background())
	require.NoError(t, err)
	require.Empty(t, volunteers)
}

func TestLoginHistoryPage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin("admin", "admin123")

	ts.loginUser("jo@example.com")
	rr := ts.get("/logout")
	require.Equal(t, http.StatusSeeOther, rr.Code)

	ts.loginAdmin("admin", "admin123")

	rr = ts.get("/admin-logins")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	text := doc.Find("table").Text()
	require.Contains(t, text, "jo@example.com")
	require.Contains(t, text, "admin")

	records, err := ts.app.Store.ListLoginRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first
	require.Equal(t, model.RoleAdmin, records[0].Role)
	require.Equal(t, model.RoleUser, records[1].Role)
}

func TestBootstrapDisabled(t *testing.T) {
	ts := newWebTestServerWithBootstrap(t, false)

	rr := ts.get("/admin/create-first")
	require.Equal(t, http.StatusNotFound, rr.Code)

	count, err := ts.app.Store.CountAdmins(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}
