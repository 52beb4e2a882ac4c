package mapping

import (
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/models"
)

// ToModelShareholder converts a domain Shareholder to a model Shareholder
func ToModelShareholder(d domain.Shareholder) models.Shareholder {
	return models.Shareholder{
		ShareholderID:  d.ShareholderID,
		LastName:       d.LastName,
		FirstName:      d.FirstName,
		OwnershipUnits: d.OwnershipUnits,
		Email:          d.Email,
		Phone:          d.Phone,
		Active:         d.Active,
	}
}

// ToDomainShareholder converts a model Shareholder to a domain Shareholder
func ToDomainShareholder(m models.Shareholder) domain.Shareholder {
	return domain.Shareholder{
		ShareholderID:  m.ShareholderID,
		LastName:       m.LastName,
		FirstName:      m.FirstName,
		OwnershipUnits: m.OwnershipUnits,
		Email:          m.Email,
		Phone:          m.Phone,
		Active:         m.Active,
	}
}

// ToDomainShareholderSlice converts a slice of model Shareholders to domain Shareholders
func ToDomainShareholderSlice(ms []models.Shareholder) []domain.Shareholder {
	ds := make([]domain.Shareholder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShareholder(m)
	}
	return ds
}
