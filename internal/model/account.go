package model

import "time"

// AdminID uniquely identifies an administrator account
type AdminID int64

// AdminAccount holds administrator credentials
// Passwords are stored as bcrypt hashes, never plaintext
type AdminAccount struct {
	ID           AdminID
	Username     string // login username (unique, immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// Role names recorded on sessions and login records
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// LoginRecord is an append-only audit row, one per successful login.
// Admin logins record the username in the Email column, matching the
// shape of the login_logs table.
type LoginRecord struct {
	ID        int64
	Email     string
	Role      string // RoleUser or RoleAdmin
	LoginTime time.Time
}
