package model

import "time"

// AdoptionID uniquely identifies an adoption request
type AdoptionID int64

// Adoption statuses. Admins move requests from pending to
// approved/rejected; there are no further transitions.
const (
	AdoptionPending  = "pending"
	AdoptionApproved = "approved"
	AdoptionRejected = "rejected"
)

// Adoption is a request submitted by a logged-in user to adopt an animal
type Adoption struct {
	ID        AdoptionID
	UserName  string
	Email     string
	Phone     string
	AnimalID  AnimalID
	Status    string
	CreatedAt time.Time
}
