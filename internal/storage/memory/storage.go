package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/storage"
)

// Store is an in-memory implementation of the storage interface.
// Create operations assign auto-incrementing IDs like the SQL backend.
// Deletes and status updates on missing rows are silent no-ops,
// matching SQL semantics (zero rows affected is not an error).
type Store struct {
	mu sync.RWMutex

	animals    map[model.AnimalID]*model.Animal
	adoptions  map[model.AdoptionID]*model.Adoption
	volunteers map[model.VolunteerID]*model.Volunteer
	admins     map[model.AdminID]*model.AdminAccount
	usernames  map[string]model.AdminID
	loginLog   []*model.LoginRecord

	nextAnimalID    model.AnimalID
	nextAdoptionID  model.AdoptionID
	nextVolunteerID model.VolunteerID
	nextAdminID     model.AdminID
	nextLoginID     int64
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		animals:    make(map[model.AnimalID]*model.Animal),
		adoptions:  make(map[model.AdoptionID]*model.Adoption),
		volunteers: make(map[model.VolunteerID]*model.Volunteer),
		admins:     make(map[model.AdminID]*model.AdminAccount),
		usernames:  make(map[string]model.AdminID),
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// Animal operations

func (s *Store) CreateAnimal(_ context.Context, animal *model.Animal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAnimalID++
	animal.ID = s.nextAnimalID
	copied := *animal
	s.animals[animal.ID] = &copied
	return nil
}

func (s *Store) GetAnimal(_ context.Context, id model.AnimalID) (*model.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	animal, ok := s.animals[id]
	if !ok {
		return nil, model.ErrAnimalNotFound
	}
	copied := *animal
	return &copied, nil
}

func (s *Store) ListAnimals(_ context.Context) ([]*model.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	animals := make([]*model.Animal, 0, len(s.animals))
	for _, animal := range s.animals {
		copied := *animal
		animals = append(animals, &copied)
	}
	// Newest first, like the SQL ORDER BY id DESC
	sort.Slice(animals, func(i, j int) bool { return animals[i].ID > animals[j].ID })
	return animals, nil
}

func (s *Store) UpdateAnimal(_ context.Context, animal *model.Animal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.animals[animal.ID]; !ok {
		return nil
	}
	copied := *animal
	s.animals[animal.ID] = &copied
	return nil
}

func (s *Store) DeleteAnimal(_ context.Context, id model.AnimalID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.animals, id)
	return nil
}

// Adoption operations

func (s *Store) CreateAdoption(_ context.Context, adoption *model.Adoption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAdoptionID++
	adoption.ID = s.nextAdoptionID
	if adoption.Status == "" {
		adoption.Status = model.AdoptionPending
	}
	copied := *adoption
	s.adoptions[adoption.ID] = &copied
	return nil
}

func (s *Store) ListAdoptions(_ context.Context) ([]*model.Adoption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	adoptions := make([]*model.Adoption, 0, len(s.adoptions))
	for _, adoption := range s.adoptions {
		copied := *adoption
		adoptions = append(adoptions, &copied)
	}
	sort.Slice(adoptions, func(i, j int) bool { return adoptions[i].ID > adoptions[j].ID })
	return adoptions, nil
}

func (s *Store) UpdateAdoptionStatus(_ context.Context, id model.AdoptionID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if adoption, ok := s.adoptions[id]; ok {
		adoption.Status = status
	}
	return nil
}

func (s *Store) DeleteAdoption(_ context.Context, id model.AdoptionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.adoptions, id)
	return nil
}

// Volunteer operations

func (s *Store) CreateVolunteer(_ context.Context, volunteer *model.Volunteer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextVolunteerID++
	volunteer.ID = s.nextVolunteerID
	copied := *volunteer
	s.volunteers[volunteer.ID] = &copied
	return nil
}

func (s *Store) ListVolunteers(_ context.Context) ([]*model.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	volunteers := make([]*model.Volunteer, 0, len(s.volunteers))
	for _, volunteer := range s.volunteers {
		copied := *volunteer
		volunteers = append(volunteers, &copied)
	}
	sort.Slice(volunteers, func(i, j int) bool { return volunteers[i].ID > volunteers[j].ID })
	return volunteers, nil
}

func (s *Store) DeleteVolunteer(_ context.Context, id model.VolunteerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.volunteers, id)
	return nil
}

// Admin account operations

func (s *Store) CreateAdmin(_ context.Context, admin *model.AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usernames[admin.Username]; taken {
		return model.ErrUsernameTaken
	}
	s.nextAdminID++
	admin.ID = s.nextAdminID
	copied := *admin
	s.admins[admin.ID] = &copied
	s.usernames[admin.Username] = admin.ID
	return nil
}

func (s *Store) GetAdminByUsername(_ context.Context, username string) (*model.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernames[username]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	admin, ok := s.admins[id]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (s *Store) CountAdmins(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins), nil
}

// Login audit log operations

func (s *Store) AppendLoginRecord(_ context.Context, record *model.LoginRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLoginID++
	record.ID = s.nextLoginID
	copied := *record
	s.loginLog = append(s.loginLog, &copied)
	return nil
}

func (s *Store) ListLoginRecords(_ context.Context) ([]*model.LoginRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.LoginRecord, 0, len(s.loginLog))
	// Newest first, like the SQL ORDER BY login_time DESC
	for i := len(s.loginLog) - 1; i >= 0; i-- {
		copied := *s.loginLog[i]
		records = append(records, &copied)
	}
	return records, nil
}
