package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	"github.com/habilafinance/finledger_backend/internal/models"
	"github.com/habilafinance/finledger_backend/internal/utils/mapping"
)

type PgxShareholderRepository struct {
	db Querier
}

func newPgxShareholderRepository(db Querier) portsrepo.ShareholderRepositoryFacade {
	return &PgxShareholderRepository{db: db}
}

var _ portsrepo.ShareholderRepositoryFacade = (*PgxShareholderRepository)(nil)

func (r *PgxShareholderRepository) SaveShareholder(ctx context.Context, sh domain.Shareholder) error {
	modelSh := mapping.ToModelShareholder(sh)
	query := `
        INSERT INTO shareholders (shareholder_id, last_name, first_name, ownership_units, email, phone, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelSh.ShareholderID,
		modelSh.LastName,
		modelSh.FirstName,
		modelSh.OwnershipUnits,
		modelSh.Email,
		modelSh.Phone,
		modelSh.Active,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save shareholder: %w", err)
	}
	return nil
}

func (r *PgxShareholderRepository) FindShareholderByID(ctx context.Context, shareholderID string) (*domain.Shareholder, error) {
	query := `
		SELECT shareholder_id, last_name, first_name, ownership_units, email, phone, active, created_at
		FROM shareholders
		WHERE shareholder_id = $1;
	`
	var modelSh models.Shareholder
	err := r.db.QueryRow(ctx, query, shareholderID).Scan(
		&modelSh.ShareholderID,
		&modelSh.LastName,
		&modelSh.FirstName,
		&modelSh.OwnershipUnits,
		&modelSh.Email,
		&modelSh.Phone,
		&modelSh.Active,
		&modelSh.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shareholder by ID %s: %w", shareholderID, err)
	}

	domainSh := mapping.ToDomainShareholder(modelSh)
	return &domainSh, nil
}

func (r *PgxShareholderRepository) FindShareholders(ctx context.Context) ([]domain.Shareholder, error) {
	query := `
		SELECT shareholder_id, last_name, first_name, ownership_units, email, phone, active, created_at
		FROM shareholders
		ORDER BY ownership_units DESC, last_name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shareholders: %w", err)
	}
	defer rows.Close()

	var modelShs []models.Shareholder
	for rows.Next() {
		var modelSh models.Shareholder
		err := rows.Scan(
			&modelSh.ShareholderID,
			&modelSh.LastName,
			&modelSh.FirstName,
			&modelSh.OwnershipUnits,
			&modelSh.Email,
			&modelSh.Phone,
			&modelSh.Active,
			&modelSh.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shareholder row: %w", err)
		}
		modelShs = append(modelShs, modelSh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shareholder rows: %w", err)
	}

	return mapping.ToDomainShareholderSlice(modelShs), nil
}

func (r *PgxShareholderRepository) UpdateShareholder(ctx context.Context, sh domain.Shareholder) error {
	modelSh := mapping.ToModelShareholder(sh)
	query := `
		UPDATE shareholders
		SET last_name = $2, first_name = $3, ownership_units = $4, email = $5, phone = $6, active = $7
		WHERE shareholder_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		modelSh.ShareholderID,
		modelSh.LastName,
		modelSh.FirstName,
		modelSh.OwnershipUnits,
		modelSh.Email,
		modelSh.Phone,
		modelSh.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update shareholder %s: %w", sh.ShareholderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RemoveShareholder deactivates instead of deleting so distribution history
// stays attributable.
func (r *PgxShareholderRepository) RemoveShareholder(ctx context.Context, shareholderID string) error {
	query := `UPDATE shareholders SET active = FALSE WHERE shareholder_id = $1;`
	tag, err := r.db.Exec(ctx, query, shareholderID)
	if err != nil {
		return fmt.Errorf("failed to remove shareholder %s: %w", shareholderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
