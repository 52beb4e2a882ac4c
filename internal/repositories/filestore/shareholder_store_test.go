package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
)

func newShStore(t *testing.T) *CSVShareholderRepository {
	t.Helper()
	return &CSVShareholderRepository{path: filepath.Join(t.TempDir(), "shareholders.csv")}
}

func TestCSVShareholderRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newShStore(t)
	sh := domain.Shareholder{
		ShareholderID:  uuid.NewString(),
		LastName:       "Dubois",
		FirstName:      "Pierre",
		OwnershipUnits: 60,
		Email:          "pierre@example.com",
		Phone:          "0601020304",
		Active:         true,
	}

	require.NoError(t, repo.SaveShareholder(ctx, sh))

	found, err := repo.FindShareholderByID(ctx, sh.ShareholderID)
	require.NoError(t, err)
	assert.Equal(t, 60, found.OwnershipUnits)
	assert.Equal(t, "pierre@example.com", found.Email)
	assert.True(t, found.Active)
}

func TestCSVShareholderRepository_LegacyPercentHeader(t *testing.T) {
	ctx := context.Background()
	repo := newShStore(t)

	// Files from the original tool name the units column ownership_percent;
	// the values are the same since one unit is one percent.
	raw := "shareholder_id,last_name,first_name,ownership_percent,email,phone,active\n" +
		"s-1,Dubois,Pierre,60,,,true\n"
	require.NoError(t, os.WriteFile(repo.path, []byte(raw), 0o644))

	shs, err := repo.FindShareholders(ctx)
	require.NoError(t, err)
	require.Len(t, shs, 1)
	assert.Equal(t, 60, shs[0].OwnershipUnits)
}

func TestCSVShareholderRepository_RemoveDeletesRow(t *testing.T) {
	ctx := context.Background()
	repo := newShStore(t)
	sh := domain.Shareholder{
		ShareholderID:  uuid.NewString(),
		LastName:       "Dubois",
		FirstName:      "Pierre",
		OwnershipUnits: 60,
		Active:         true,
	}

	require.NoError(t, repo.SaveShareholder(ctx, sh))
	require.NoError(t, repo.RemoveShareholder(ctx, sh.ShareholderID))

	_, err := repo.FindShareholderByID(ctx, sh.ShareholderID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
