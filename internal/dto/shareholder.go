package dto

import (
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateShareholderRequest defines the payload for registering a shareholder.
type CreateShareholderRequest struct {
	LastName       string `json:"lastName" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	OwnershipUnits int    `json:"ownershipUnits" binding:"required,min=1,max=100"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
}

// UpdateShareholderRequest replaces a shareholder record in full, including
// the active flag.
type UpdateShareholderRequest struct {
	LastName       string `json:"lastName" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	OwnershipUnits int    `json:"ownershipUnits" binding:"required,min=1,max=100"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Active         *bool  `json:"active" binding:"required"`
}

// ShareholderResponse defines the data returned for a shareholder, including
// the values derived from the fixed capital base.
type ShareholderResponse struct {
	ShareholderID         string          `json:"shareholderID"`
	LastName              string          `json:"lastName"`
	FirstName             string          `json:"firstName"`
	FullName              string          `json:"fullName"`
	OwnershipUnits        int             `json:"ownershipUnits"`
	OwnershipPercent      int             `json:"ownershipPercent"`
	NominalValue          decimal.Decimal `json:"nominalValue"`
	FormattedNominalValue string          `json:"formattedNominalValue"`
	Email                 string          `json:"email,omitempty"`
	Phone                 string          `json:"phone,omitempty"`
	Active                bool            `json:"active"`
}

// ListShareholdersResponse wraps the roster plus the allocated unit total so
// clients can show remaining headroom without recomputing it.
type ListShareholdersResponse struct {
	Shareholders   []ShareholderResponse `json:"shareholders"`
	AllocatedUnits int                   `json:"allocatedUnits"`
	AvailableUnits int                   `json:"availableUnits"`
}

// ToShareholderResponse converts a domain.Shareholder to its response DTO.
func ToShareholderResponse(sh *domain.Shareholder) ShareholderResponse {
	return ShareholderResponse{
		ShareholderID:         sh.ShareholderID,
		LastName:              sh.LastName,
		FirstName:             sh.FirstName,
		FullName:              sh.FullName(),
		OwnershipUnits:        sh.OwnershipUnits,
		OwnershipPercent:      sh.OwnershipPercent(),
		NominalValue:          sh.NominalValue(),
		FormattedNominalValue: utils.FormatEUR(sh.NominalValue()),
		Email:                 sh.Email,
		Phone:                 sh.Phone,
		Active:                sh.Active,
	}
}

// ToListShareholdersResponse converts the roster to the list response DTO.
func ToListShareholdersResponse(shs []domain.Shareholder, allocatedUnits int) ListShareholdersResponse {
	responses := make([]ShareholderResponse, len(shs))
	for i := range shs {
		responses[i] = ToShareholderResponse(&shs[i])
	}
	available := domain.TotalOwnershipUnits - allocatedUnits
	if available < 0 {
		available = 0
	}
	return ListShareholdersResponse{
		Shareholders:   responses,
		AllocatedUnits: allocatedUnits,
		AvailableUnits: available,
	}
}
