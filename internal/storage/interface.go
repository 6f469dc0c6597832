package storage

import (
	"context"

	"github.com/sibro/pawhaven/internal/model"
)

// Store defines the interface for data persistence
type Store interface {
	// Animal operations
	CreateAnimal(ctx context.Context, animal *model.Animal) error
	GetAnimal(ctx context.Context, id model.AnimalID) (*model.Animal, error)
	ListAnimals(ctx context.Context) ([]*model.Animal, error)
	UpdateAnimal(ctx context.Context, animal *model.Animal) error
	DeleteAnimal(ctx context.Context, id model.AnimalID) error

	// Adoption request operations
	CreateAdoption(ctx context.Context, adoption *model.Adoption) error
	ListAdoptions(ctx context.Context) ([]*model.Adoption, error)
	UpdateAdoptionStatus(ctx context.Context, id model.AdoptionID, status string) error
	DeleteAdoption(ctx context.Context, id model.AdoptionID) error

	// Volunteer operations
	CreateVolunteer(ctx context.Context, volunteer *model.Volunteer) error
	ListVolunteers(ctx context.Context) ([]*model.Volunteer, error)
	DeleteVolunteer(ctx context.Context, id model.VolunteerID) error

	// Admin account operations
	CreateAdmin(ctx context.Context, admin *model.AdminAccount) error
	GetAdminByUsername(ctx context.Context, username string) (*model.AdminAccount, error)
	CountAdmins(ctx context.Context) (int, error)

	// Login audit log operations
	AppendLoginRecord(ctx context.Context, record *model.LoginRecord) error
	ListLoginRecords(ctx context.Context) ([]*model.LoginRecord, error)
}
