package domain

import "time"

// User represents an operator allowed to sign in to the application.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
