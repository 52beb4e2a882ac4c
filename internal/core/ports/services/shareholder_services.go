package services

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// ShareholderReaderSvc defines read operations for the shareholder roster.
type ShareholderReaderSvc interface {
	// GetShareholderByID retrieves a shareholder by ID.
	GetShareholderByID(ctx context.Context, shareholderID string) (*domain.Shareholder, error)

	// ListShareholders retrieves the roster together with the active unit
	// total, so capacity headroom is computed in one place.
	ListShareholders(ctx context.Context, activeOnly bool) ([]domain.Shareholder, int, error)
}

// ShareholderWriterSvc defines write operations for the roster. Every
// mutation that adds units or changes them runs through the central
// 100-unit capacity check.
type ShareholderWriterSvc interface {
	// CreateShareholder validates the entity and the unit capacity, then
	// persists a new shareholder.
	CreateShareholder(ctx context.Context, req dto.CreateShareholderRequest) (*domain.Shareholder, error)

	// UpdateShareholder validates the entity and the unit capacity, then
	// replaces the shareholder with the given ID.
	UpdateShareholder(ctx context.Context, shareholderID string, req dto.UpdateShareholderRequest) (*domain.Shareholder, error)

	// RemoveShareholder removes a shareholder. The backend decides between
	// hard delete and deactivation.
	RemoveShareholder(ctx context.Context, shareholderID string) error
}

// ShareholderSvcFacade combines all shareholder service interfaces.
type ShareholderSvcFacade interface {
	ShareholderReaderSvc
	ShareholderWriterSvc
}
