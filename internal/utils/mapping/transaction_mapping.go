package mapping

import (
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		Kind:          models.FlowType(d.Kind),
		Amount:        d.Amount,
		Description:   d.Description,
		Category:      d.Category,
		EmployeeID:    d.EmployeeID,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Kind:          domain.FlowType(m.Kind),
		Amount:        m.Amount,
		Description:   m.Description,
		Category:      m.Category,
		EmployeeID:    m.EmployeeID,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
