package handler

import (
	"net/http"
	"strconv"

	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// Animals lists the animals available for adoption
func (h *Handler) Animals(w http.ResponseWriter, r *http.Request) {
	animals, err := h.store.ListAnimals(r.Context())
	if err != nil {
		h.renderError(w, r, err, "We could not load the animals right now. Please try again.")
		return
	}

	h.render(w, r, "animals", templates.AnimalsData{
		PageData: h.pageData(r, "Our Animals", "animals"),
		Animals:  animals,
	})
}

// AdoptForm sends GET requests for /adopt back to the animal listing,
// where each card carries its own adoption form
func (h *Handler) AdoptForm(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/animals", http.StatusSeeOther)
}

// Adopt files an adoption request for an animal. New requests always
// start out pending; an admin decides from there.
func (h *Handler) Adopt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	animalID, err := strconv.ParseInt(r.PostFormValue("animal_id"), 10, 64)
	if err != nil {
		http.Error(w, "bad animal id", http.StatusBadRequest)
		return
	}

	adoption := &model.Adoption{
		UserName:  r.PostFormValue("user_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		AnimalID:  model.AnimalID(animalID),
		Status:    model.AdoptionPending,
		CreatedAt: h.clock.Now(),
	}
	if err := h.store.CreateAdoption(r.Context(), adoption); err != nil {
		h.renderError(w, r, err, "We could not submit your adoption request. Please try again.")
		return
	}

	h.render(w, r, "submitted", templates.SubmittedData{
		PageData:  h.pageData(r, "Request Submitted", "animals"),
		Heading:   "Adoption request submitted",
		Message:   "Thank you! Our team will review your request and get in touch.",
		BackURL:   "/animals",
		BackLabel: "Back to animals",
	})
}
