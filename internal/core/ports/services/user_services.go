package services

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for users.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines operations that create or verify users.
type UserWriterSvc interface {
	// Authenticate checks the username/password pair and returns the user
	// on success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// EnsureAdminUser creates the seeded admin account when no user with
	// the given username exists yet.
	EnsureAdminUser(ctx context.Context, username, password, name string) error
}

// UserSvcFacade combines all user service operations.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
