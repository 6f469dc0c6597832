package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/storage"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// Store is a Postgres-backed implementation of the storage interface
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Postgres store and verifies connectivity
func New(ctx context.Context, cfg Config) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewWithPool creates a store with an existing pool (for testing)
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the connection pool
func (s *Store) Close() {
	s.pool.Close()
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// Animal operations

func (s *Store) CreateAnimal(ctx context.Context, animal *model.Animal) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO animals (name, breed, health, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, animal.Name, animal.Breed, animal.Health, animal.Image).Scan(&animal.ID)
	if err != nil {
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

func (s *Store) GetAnimal(ctx context.Context, id model.AnimalID) (*model.Animal, error) {
	var animal model.Animal
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, breed, health, image
		FROM animals
		WHERE id = $1
	`, id).Scan(&animal.ID, &animal.Name, &animal.Breed, &animal.Health, &animal.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("select animal: %w", err)
	}
	return &animal, nil
}

func (s *Store) ListAnimals(ctx context.Context) ([]*model.Animal, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, breed, health, image
		FROM animals
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select animals: %w", err)
	}
	defer rows.Close()

	var animals []*model.Animal
	for rows.Next() {
		var animal model.Animal
		if err := rows.Scan(&animal.ID, &animal.Name, &animal.Breed, &animal.Health, &animal.Image); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		animals = append(animals, &animal)
	}
	return animals, rows.Err()
}

func (s *Store) UpdateAnimal(ctx context.Context, animal *model.Animal) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE animals
		SET name = $1, breed = $2, health = $3, image = $4
		WHERE id = $5
	`, animal.Name, animal.Breed, animal.Health, animal.Image, animal.ID)
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	return nil
}

func (s *Store) DeleteAnimal(ctx context.Context, id model.AnimalID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	return nil
}

// Adoption operations

func (s *Store) CreateAdoption(ctx context.Context, adoption *model.Adoption) error {
	if adoption.Status == "" {
		adoption.Status = model.AdoptionPending
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO adoptions (user_name, email, phone, animal_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, adoption.UserName, adoption.Email, adoption.Phone, adoption.AnimalID,
		adoption.Status, adoption.CreatedAt).Scan(&adoption.ID)
	if err != nil {
		return fmt.Errorf("insert adoption: %w", err)
	}
	return nil
}

func (s *Store) ListAdoptions(ctx context.Context) ([]*model.Adoption, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_name, email, phone, animal_id, status, created_at
		FROM adoptions
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select adoptions: %w", err)
	}
	defer rows.Close()

	var adoptions []*model.Adoption
	for rows.Next() {
		var adoption model.Adoption
		if err := rows.Scan(&adoption.ID, &adoption.UserName, &adoption.Email, &adoption.Phone,
			&adoption.AnimalID, &adoption.Status, &adoption.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adoption: %w", err)
		}
		adoptions = append(adoptions, &adoption)
	}
	return adoptions, rows.Err()
}

func (s *Store) UpdateAdoptionStatus(ctx context.Context, id model.AdoptionID, status string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE adoptions SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update adoption status: %w", err)
	}
	return nil
}

func (s *Store) DeleteAdoption(ctx context.Context, id model.AdoptionID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM adoptions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete adoption: %w", err)
	}
	return nil
}

// Volunteer operations

func (s *Store) CreateVolunteer(ctx context.Context, volunteer *model.Volunteer) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO volunteers (full_name, email, phone, availability, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, volunteer.FullName, volunteer.Email, volunteer.Phone,
		volunteer.Availability, volunteer.CreatedAt).Scan(&volunteer.ID)
	if err != nil {
		return fmt.Errorf("insert volunteer: %w", err)
	}
	return nil
}

func (s *Store) ListVolunteers(ctx context.Context) ([]*model.Volunteer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, full_name, email, phone, availability, created_at
		FROM volunteers
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []*model.Volunteer
	for rows.Next() {
		var volunteer model.Volunteer
		if err := rows.Scan(&volunteer.ID, &volunteer.FullName, &volunteer.Email,
			&volunteer.Phone, &volunteer.Availability, &volunteer.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan volunteer: %w", err)
		}
		volunteers = append(volunteers, &volunteer)
	}
	return volunteers, rows.Err()
}

func (s *Store) DeleteVolunteer(ctx context.Context, id model.VolunteerID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}
	return nil
}

// Admin account operations

func (s *Store) CreateAdmin(ctx context.Context, admin *model.AdminAccount) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO admin_users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, admin.Username, admin.PasswordHash, admin.CreatedAt).Scan(&admin.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.AdminAccount, error) {
	var admin model.AdminAccount
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAdminNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}
	return &admin, nil
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

// Login audit log operations

func (s *Store) AppendLoginRecord(ctx context.Context, record *model.LoginRecord) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO login_logs (email, role, login_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, record.Email, record.Role, record.LoginTime).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert login record: %w", err)
	}
	return nil
}

func (s *Store) ListLoginRecords(ctx context.Context) ([]*model.LoginRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, email, role, login_time
		FROM login_logs
		ORDER BY login_time DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select login records: %w", err)
	}
	defer rows.Close()

	var records []*model.LoginRecord
	for rows.Next() {
		var record model.LoginRecord
		if err := rows.Scan(&record.ID, &record.Email, &record.Role, &record.LoginTime); err != nil {
			return nil, fmt.Errorf("scan login record: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}
