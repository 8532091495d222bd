package entity

import "time"

// User of the system. BaseID is nil for admins with global scope.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past persistence
	Role         string // see internal/domain/scope
	BaseID       *int64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
