package models

import "time"

// Shareholder represents one equity holder as stored.
// OwnershipUnits is an integer count out of 100; one unit equals one
// percent of the capital.
type Shareholder struct {
	ShareholderID  string    `json:"shareholderID" db:"shareholder_id"`
	LastName       string    `json:"lastName" db:"last_name"`
	FirstName      string    `json:"firstName" db:"first_name"`
	OwnershipUnits int       `json:"ownershipUnits" db:"ownership_units"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
