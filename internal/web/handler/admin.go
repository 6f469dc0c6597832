package handler

import (
	"errors"
	"net/http"

	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/web/middleware"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// AdminDashboard serves the admin landing page
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_dashboard", templates.AdminDashboardData{
		PageData: h.pageData(r, "Admin Dashboard", "dashboard"),
	})
}

// AdminAdoptions lists all adoption requests for review
func (h *Handler) AdminAdoptions(w http.ResponseWriter, r *http.Request) {
	adoptions, err := h.store.ListAdoptions(r.Context())
	if err != nil {
		h.renderError(w, r, err, "We could not load the adoption requests.")
		return
	}

	h.render(w, r, "admin_adoptions", templates.AdminAdoptionsData{
		PageData:  h.pageData(r, "Adoption Requests", "adoptions"),
		Adoptions: adoptions,
	})
}

// AdminAdoptionStatus approves or rejects an adoption request
func (h *Handler) AdminAdoptionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad adoption id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	status := r.PostFormValue("status")
	if status != model.AdoptionApproved && status != model.AdoptionRejected {
		http.Error(w, "bad status", http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateAdoptionStatus(r.Context(), model.AdoptionID(id), status); err != nil {
		h.renderError(w, r, err, "We could not update the request.")
		return
	}

	middleware.SetFlash(w, "success", "Request "+status)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminAdoptionDelete removes an adoption request
func (h *Handler) AdminAdoptionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad adoption id", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteAdoption(r.Context(), model.AdoptionID(id)); err != nil {
		h.renderError(w, r, err, "We could not delete the request.")
		return
	}

	middleware.SetFlash(w, "success", "Request deleted")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminVolunteers lists all volunteer applications
func (h *Handler) AdminVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.store.ListVolunteers(r.Context())
	if err != nil {
		h.renderError(w, r, err, "We could not load the volunteer applications.")
		return
	}

	h.render(w, r, "admin_volunteers", templates.AdminVolunteersData{
		PageData:   h.pageData(r, "Volunteers", "volunteers"),
		Volunteers: volunteers,
	})
}

// AdminVolunteerDelete removes a volunteer application
func (h *Handler) AdminVolunteerDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad volunteer id", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteVolunteer(r.Context(), model.VolunteerID(id)); err != nil {
		h.renderError(w, r, err, "We could not delete the application.")
		return
	}

	middleware.SetFlash(w, "success", "Volunteer deleted")
	http.Redirect(w, r, "/admin-volunteers", http.StatusSeeOther)
}

// AdminAnimals lists the animals with the add form
func (h *Handler) AdminAnimals(w http.ResponseWriter, r *http.Request) {
	animals, err := h.store.ListAnimals(r.Context())
	if err != nil {
		h.renderError(w, r, err, "We could not load the animals.")
		return
	}

	h.render(w, r, "admin_animals", templates.AdminAnimalsData{
		PageData: h.pageData(r, "Manage Animals", "animals"),
		Animals:  animals,
	})
}

// AdminAnimalAdd creates a new animal record
func (h *Handler) AdminAnimalAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	if name == "" {
		h.renderAdminAnimalsError(w, r, "Name is required")
		return
	}

	animal := &model.Animal{
		Name:   name,
		Breed:  r.PostFormValue("breed"),
		Health: r.PostFormValue("health"),
		Image:  r.PostFormValue("image"),
	}
	if err := h.store.CreateAnimal(r.Context(), animal); err != nil {
		h.renderError(w, r, err, "We could not add the animal.")
		return
	}

	middleware.SetFlash(w, "success", "Animal added")
	http.Redirect(w, r, "/admin-animals", http.StatusSeeOther)
}

func (h *Handler) renderAdminAnimalsError(w http.ResponseWriter, r *http.Request, message string) {
	animals, err := h.store.ListAnimals(r.Context())
	if err != nil {
		h.renderError(w, r, err, "We could not load the animals.")
		return
	}

	w.WriteHeader(http.StatusBadRequest)
	h.render(w, r, "admin_animals", templates.AdminAnimalsData{
		PageData: h.pageData(r, "Manage Animals", "animals"),
		Animals:  animals,
		Error:    message,
	})
}

// AdminAnimalDelete removes an animal record
func (h *Handler) AdminAnimalDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad animal id", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteAnimal(r.Context(), model.AnimalID(id)); err != nil {
		h.renderError(w, r, err, "We could not delete the animal.")
		return
	}

	middleware.SetFlash(w, "success", "Animal deleted")
	http.Redirect(w, r, "/admin-animals", http.StatusSeeOther)
}

// AdminAnimalEditPage serves the edit form for one animal
func (h *Handler) AdminAnimalEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad animal id", http.StatusBadRequest)
		return
	}

	animal, err := h.store.GetAnimal(r.Context(), model.AnimalID(id))
	if err != nil {
		if errors.Is(err, model.ErrAnimalNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderError(w, r, err, "We could not load the animal.")
		return
	}

	h.render(w, r, "admin_animal_edit", templates.AdminAnimalEditData{
		PageData: h.pageData(r, "Edit Animal", "animals"),
		Animal:   animal,
	})
}

// AdminAnimalEdit applies the edit form to an animal record
func (h *Handler) AdminAnimalEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad animal id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	animal := &model.Animal{
		ID:     model.AnimalID(id),
		Name:   r.PostFormValue("name"),
		Breed:  r.PostFormValue("breed"),
		Health: r.PostFormValue("health"),
		Image:  r.PostFormValue("image"),
	}
	if animal.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "admin_animal_edit", templates.AdminAnimalEditData{
			PageData: h.pageData(r, "Edit Animal", "animals"),
			Animal:   animal,
			Error:    "Name is required",
		})
		return
	}

	if err := h.store.UpdateAnimal(r.Context(), animal); err != nil {
		h.renderError(w, r, err, "We could not update the animal.")
		return
	}

	middleware.SetFlash(w, "success", "Animal updated")
	http.Redirect(w, r, "/admin-animals", http.StatusSeeOther)
}

// AdminLogins shows the login audit history, newest first
func (h *Handler) AdminLogins(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListLoginRecords(r.Context())
	if err != nil {
		h.renderError(w, r, err, "We could not load the login history.")
		return
	}

	h.render(w, r, "admin_logins", templates.AdminLoginsData{
		PageData: h.pageData(r, "Login History", "logins"),
		Records:  records,
	})
}
