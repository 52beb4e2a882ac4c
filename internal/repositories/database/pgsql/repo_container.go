package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Transaction: newPgxTransactionRepository(dbPool),
		Employee:    newPgxEmployeeRepository(dbPool),
		Shareholder: newPgxShareholderRepository(dbPool),
		User:        newPgxUserRepository(dbPool),
	}
}
