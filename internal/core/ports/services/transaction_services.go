package services

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// TransactionReaderSvc defines read operations over the ledger.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction by ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the ledger, optionally filtered by period,
	// kind and category.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations over the ledger.
type TransactionWriterSvc interface {
	// CreateTransaction validates and records a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction validates and replaces the transaction with the
	// given ID.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
