package filestore

import (
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every CSV store under one data directory.
func NewRepositoryProvider(dataDir string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Transaction: newCSVTransactionRepository(dataDir),
		Employee:    newCSVEmployeeRepository(dataDir),
		Shareholder: newCSVShareholderRepository(dataDir),
		User:        newCSVUserRepository(dataDir),
	}
}
