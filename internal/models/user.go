package models

import "time"

// User represents an authenticated user of the application.
type User struct {
	UserID       string    `json:"userID" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
