package repositories

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
)

// ShareholderReader defines read operations for shareholder data.
type ShareholderReader interface {
	// FindShareholderByID retrieves a specific shareholder by their ID,
	// whether active or not.
	FindShareholderByID(ctx context.Context, shareholderID string) (*domain.Shareholder, error)

	// FindShareholders retrieves the full roster, active and inactive. The
	// unit-capacity check needs the complete active set, so there is no
	// filtered variant.
	FindShareholders(ctx context.Context) ([]domain.Shareholder, error)
}

// ShareholderWriter defines write operations for shareholder data.
type ShareholderWriter interface {
	// SaveShareholder persists a new shareholder.
	SaveShareholder(ctx context.Context, sh domain.Shareholder) error

	// UpdateShareholder replaces the full record keyed by its ID.
	UpdateShareholder(ctx context.Context, sh domain.Shareholder) error
}

// ShareholderLifecycleManager defines removal of a shareholder. Hard versus
// soft removal is a backend policy.
type ShareholderLifecycleManager interface {
	RemoveShareholder(ctx context.Context, shareholderID string) error
}

// ShareholderRepositoryFacade combines all shareholder repository interfaces.
type ShareholderRepositoryFacade interface {
	ShareholderReader
	ShareholderWriter
	ShareholderLifecycleManager
}
