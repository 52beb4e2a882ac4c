package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
)

var userHeader = []string{"user_id", "username", "password_hash", "name", "created_at"}

type CSVUserRepository struct {
	mu   sync.RWMutex
	path string
}

func newCSVUserRepository(dir string) portsrepo.UserRepositoryFacade {
	return &CSVUserRepository{path: filepath.Join(dir, "users.csv")}
}

var _ portsrepo.UserRepositoryFacade = (*CSVUserRepository)(nil)

func (r *CSVUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.store(users)
}

func (r *CSVUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CSVUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CSVUserRepository) load() ([]domain.User, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("malformed user row with %d fields", len(row))
		}
		createdAt, err := time.Parse(time.RFC3339, row[4])
		if err != nil {
			return nil, fmt.Errorf("malformed user created_at %q: %w", row[4], err)
		}
		users = append(users, domain.User{
			UserID:       row[0],
			Username:     row[1],
			PasswordHash: row[2],
			Name:         row[3],
			CreatedAt:    createdAt,
		})
	}
	return users, nil
}

func (r *CSVUserRepository) store(users []domain.User) error {
	rows := make([][]string, len(users))
	for i, user := range users {
		rows[i] = []string{
			user.UserID,
			user.Username,
			user.PasswordHash,
			user.Name,
			user.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return writeRecords(r.path, userHeader, rows)
}
