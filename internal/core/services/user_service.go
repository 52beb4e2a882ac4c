package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials. Unknown usernames and wrong
// passwords both come back as ErrUnauthorized so login responses do not
// leak which part was wrong.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user by username")
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login",
			slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	s.LogInfo(ctx, "User authenticated",
		slog.String("user_id", user.UserID))
	return user, nil
}

// EnsureAdminUser seeds the admin account on startup when it does not exist
// yet, so a fresh deployment is immediately usable.
func (s *userService) EnsureAdminUser(ctx context.Context, username, password, name string) error {
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	s.LogInfo(ctx, "Admin user seeded",
		slog.String("user_id", user.UserID),
		slog.String("username", username))
	return nil
}
