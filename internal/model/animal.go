package model

// AnimalID uniquely identifies an animal record
type AnimalID int64

// Animal is a shelter animal available for adoption
type Animal struct {
	ID     AnimalID
	Name   string
	Breed  string
	Health string
	Image  string // URL or static asset path
}
