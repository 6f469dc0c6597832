package model

import "time"

// VolunteerID uniquely identifies a volunteer application
type VolunteerID int64

// Volunteer is a volunteering application submitted by a logged-in user
type Volunteer struct {
	ID           VolunteerID
	FullName     string
	Email        string
	Phone        string
	Availability string
	CreatedAt    time.Time
}
