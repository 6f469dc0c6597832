package handler

import (
	"net/http"

	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/web/templates"
)

// VolunteerPage serves the volunteer application form
func (h *Handler) VolunteerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "volunteer", templates.VolunteerData{
		PageData: h.pageData(r, "Volunteer", "volunteer"),
	})
}

// Volunteer files a volunteer application
func (h *Handler) Volunteer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	volunteer := &model.Volunteer{
		FullName:     r.PostFormValue("full_name"),
		Email:        r.PostFormValue("email"),
		Phone:        r.PostFormValue("phone"),
		Availability: r.PostFormValue("availability"),
		CreatedAt:    h.clock.Now(),
	}
	if err := h.store.CreateVolunteer(r.Context(), volunteer); err != nil {
		h.renderError(w, r, err, "We could not submit your application. Please try again.")
		return
	}

	h.render(w, r, "submitted", templates.SubmittedData{
		PageData:  h.pageData(r, "Application Submitted", "volunteer"),
		Heading:   "Volunteer application submitted",
		Message:   "Thank you for offering your time! We will reach out soon.",
		BackURL:   "/home",
		BackLabel: "Back home",
	})
}
