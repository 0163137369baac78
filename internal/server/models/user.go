// Package models contains the server-side domain models persisted in PostgreSQL.
package models

// User is a registered account. PasswordHash is a bcrypt digest; the plaintext
// password never leaves the registration/login request scope.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
}
