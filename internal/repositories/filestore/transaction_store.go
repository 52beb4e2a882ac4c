package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
)

const dateLayout = "2006-01-02"

var transactionHeader = []string{"transaction_id", "date", "kind", "amount", "description", "category", "employee_id"}

type CSVTransactionRepository struct {
	mu   sync.RWMutex
	path string
}

func newCSVTransactionRepository(dir string) portsrepo.TransactionRepositoryFacade {
	return &CSVTransactionRepository{path: filepath.Join(dir, "transactions.csv")}
}

var _ portsrepo.TransactionRepositoryFacade = (*CSVTransactionRepository)(nil)

func (r *CSVTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns, err := r.load()
	if err != nil {
		return err
	}
	txns = append(txns, txn)
	return r.store(txns)
}

func (r *CSVTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txns, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].TransactionID == transactionID {
			return &txns[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CSVTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}

func (r *CSVTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns, err := r.load()
	if err != nil {
		return err
	}
	for i := range txns {
		if txns[i].TransactionID == txn.TransactionID {
			txns[i] = txn
			return r.store(txns)
		}
	}
	return apperrors.ErrNotFound
}

func (r *CSVTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns, err := r.load()
	if err != nil {
		return err
	}
	for i := range txns {
		if txns[i].TransactionID == transactionID {
			txns = append(txns[:i], txns[i+1:]...)
			return r.store(txns)
		}
	}
	return apperrors.ErrNotFound
}

func (r *CSVTransactionRepository) load() ([]domain.Transaction, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			return nil, fmt.Errorf("malformed transaction row with %d fields", len(row))
		}
		date, err := time.ParseInLocation(dateLayout, row[1], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("malformed transaction date %q: %w", row[1], err)
		}
		// Files written by the original tool label kinds in French;
		// ParseFlowType accepts both spellings.
		kind, ok := domain.ParseFlowType(row[2])
		if !ok {
			return nil, fmt.Errorf("malformed transaction kind %q", row[2])
		}
		amount, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("malformed transaction amount %q: %w", row[3], err)
		}
		txn := domain.Transaction{
			TransactionID: row[0],
			Date:          date,
			Kind:          kind,
			Amount:        amount,
			Description:   row[4],
			Category:      row[5],
		}
		// Legacy files predate the employee_id column.
		if len(row) > 6 {
			txn.EmployeeID = row[6]
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r *CSVTransactionRepository) store(txns []domain.Transaction) error {
	rows := make([][]string, len(txns))
	for i, txn := range txns {
		rows[i] = []string{
			txn.TransactionID,
			txn.Date.Format(dateLayout),
			string(txn.Kind),
			txn.Amount.String(),
			txn.Description,
			txn.Category,
			txn.EmployeeID,
		}
	}
	return writeRecords(r.path, transactionHeader, rows)
}
