package model

import "errors"

// Common errors used across the application
var (
	// Animal errors
	ErrAnimalNotFound = errors.New("animal not found")

	// Adoption errors
	ErrAdoptionNotFound = errors.New("adoption request not found")

	// Volunteer errors
	ErrVolunteerNotFound = errors.New("volunteer not found")

	// Admin account errors
	ErrAdminNotFound = errors.New("admin account not found")
	ErrUsernameTaken = errors.New("username already exists")
)
