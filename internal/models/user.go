package models

import "time"

// UserDB represents a user record in the database. Email is stored
// normalized (trimmed, lowercase); the password digest is the hex SHA-256
// of the plaintext password.
type UserDB struct {
	UserID         int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	PasswordDigest string    `json:"-" db:"password_digest"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
