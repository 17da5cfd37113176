package entity

import "time"

// Roles recognized by the API. Only admin unlocks the administrative pages
// (retention cleanup, bulk reset, raw quantity overrides).
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account that can log in. PasswordHash holds a bcrypt hash.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
