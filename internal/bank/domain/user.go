package domain

import "time"

// User is a bank account holder. Email is stored lowercased and is unique
// across all records. PasswordHash is an Argon2id PHC string and must never
// reach a response body.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	LastLogin    *time.Time // nil until the first successful signin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
