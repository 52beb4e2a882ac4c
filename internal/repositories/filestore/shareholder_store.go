package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
)

// The column is named ownership_units but files from the original tool call
// it ownership_percent; the values are identical because one unit is one
// percent, so no migration is needed beyond the header.
var shareholderHeader = []string{"shareholder_id", "last_name", "first_name", "ownership_units", "email", "phone", "active"}

type CSVShareholderRepository struct {
	mu   sync.RWMutex
	path string
}

func newCSVShareholderRepository(dir string) portsrepo.ShareholderRepositoryFacade {
	return &CSVShareholderRepository{path: filepath.Join(dir, "shareholders.csv")}
}

var _ portsrepo.ShareholderRepositoryFacade = (*CSVShareholderRepository)(nil)

func (r *CSVShareholderRepository) SaveShareholder(ctx context.Context, sh domain.Shareholder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shs, err := r.load()
	if err != nil {
		return err
	}
	shs = append(shs, sh)
	return r.store(shs)
}

func (r *CSVShareholderRepository) FindShareholderByID(ctx context.Context, shareholderID string) (*domain.Shareholder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range shs {
		if shs[i].ShareholderID == shareholderID {
			return &shs[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CSVShareholderRepository) FindShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}

func (r *CSVShareholderRepository) UpdateShareholder(ctx context.Context, sh domain.Shareholder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shs, err := r.load()
	if err != nil {
		return err
	}
	for i := range shs {
		if shs[i].ShareholderID == sh.ShareholderID {
			shs[i] = sh
			return r.store(shs)
		}
	}
	return apperrors.ErrNotFound
}

// RemoveShareholder deletes the row outright, matching the behavior of the
// original file-backed tool.
func (r *CSVShareholderRepository) RemoveShareholder(ctx context.Context, shareholderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shs, err := r.load()
	if err != nil {
		return err
	}
	for i := range shs {
		if shs[i].ShareholderID == shareholderID {
			shs = append(shs[:i], shs[i+1:]...)
			return r.store(shs)
		}
	}
	return apperrors.ErrNotFound
}

func (r *CSVShareholderRepository) load() ([]domain.Shareholder, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	shs := make([]domain.Shareholder, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			return nil, fmt.Errorf("malformed shareholder row with %d fields", len(row))
		}
		units, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("malformed shareholder units %q: %w", row[3], err)
		}
		active, err := strconv.ParseBool(row[6])
		if err != nil {
			return nil, fmt.Errorf("malformed shareholder active flag %q: %w", row[6], err)
		}
		shs = append(shs, domain.Shareholder{
			ShareholderID:  row[0],
			LastName:       row[1],
			FirstName:      row[2],
			OwnershipUnits: units,
			Email:          row[4],
			Phone:          row[5],
			Active:         active,
		})
	}
	return shs, nil
}

func (r *CSVShareholderRepository) store(shs []domain.Shareholder) error {
	rows := make([][]string, len(shs))
	for i, sh := range shs {
		rows[i] = []string{
			sh.ShareholderID,
			sh.LastName,
			sh.FirstName,
			strconv.Itoa(sh.OwnershipUnits),
			sh.Email,
			sh.Phone,
			strconv.FormatBool(sh.Active),
		}
	}
	return writeRecords(r.path, shareholderHeader, rows)
}
