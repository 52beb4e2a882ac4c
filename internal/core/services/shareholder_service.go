package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/accounting"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// shareholderService implements the ShareholderSvcFacade interface. It is
// the single owner of the unit capacity invariant: the active roster can
// never hold more than domain.TotalOwnershipUnits units in total.
type shareholderService struct {
	BaseService
	shareholderRepo portsrepo.ShareholderRepositoryFacade
}

// NewShareholderService creates a new shareholder service
func NewShareholderService(shareholderRepo portsrepo.ShareholderRepositoryFacade) portssvc.ShareholderSvcFacade {
	return &shareholderService{shareholderRepo: shareholderRepo}
}

var _ portssvc.ShareholderSvcFacade = (*shareholderService)(nil)

func (s *shareholderService) GetShareholderByID(ctx context.Context, shareholderID string) (*domain.Shareholder, error) {
	sh, err := s.shareholderRepo.FindShareholderByID(ctx, shareholderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shareholder by ID",
				slog.String("shareholder_id", shareholderID))
		}
		return nil, err
	}
	return sh, nil
}

func (s *shareholderService) ListShareholders(ctx context.Context, activeOnly bool) ([]domain.Shareholder, int, error) {
	roster, err := s.shareholderRepo.FindShareholders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shareholders")
		return nil, 0, fmt.Errorf("failed to list shareholders: %w", err)
	}

	allocated := accounting.AllocatedUnits(roster, "")

	if activeOnly {
		active := make([]domain.Shareholder, 0, len(roster))
		for _, sh := range roster {
			if sh.Active {
				active = append(active, sh)
			}
		}
		roster = active
	}

	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].OwnershipUnits > roster[j].OwnershipUnits
	})

	return roster, allocated, nil
}

func (s *shareholderService) CreateShareholder(ctx context.Context, req dto.CreateShareholderRequest) (*domain.Shareholder, error) {
	sh := domain.Shareholder{
		ShareholderID:  uuid.NewString(),
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		OwnershipUnits: req.OwnershipUnits,
		Email:          req.Email,
		Phone:          req.Phone,
		Active:         true,
	}
	if err := sh.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCapacity(ctx, "", req.OwnershipUnits); err != nil {
		return nil, err
	}

	if err := s.shareholderRepo.SaveShareholder(ctx, sh); err != nil {
		s.LogError(ctx, err, "Failed to save shareholder",
			slog.String("shareholder_id", sh.ShareholderID))
		return nil, err
	}

	s.LogInfo(ctx, "Shareholder created successfully",
		slog.String("shareholder_id", sh.ShareholderID),
		slog.Int("ownership_units", sh.OwnershipUnits))
	return &sh, nil
}

func (s *shareholderService) UpdateShareholder(ctx context.Context, shareholderID string, req dto.UpdateShareholderRequest) (*domain.Shareholder, error) {
	existing, err := s.GetShareholderByID(ctx, shareholderID)
	if err != nil {
		return nil, err
	}

	sh := domain.Shareholder{
		ShareholderID:  existing.ShareholderID,
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		OwnershipUnits: req.OwnershipUnits,
		Email:          req.Email,
		Phone:          req.Phone,
		Active:         *req.Active,
	}
	if err := sh.Validate(); err != nil {
		return nil, err
	}

	// Only an active record consumes capacity. The holder's own current
	// units are excluded so shrinking or keeping an allocation always passes.
	if sh.Active {
		if err := s.checkCapacity(ctx, shareholderID, req.OwnershipUnits); err != nil {
			return nil, err
		}
	}

	if err := s.shareholderRepo.UpdateShareholder(ctx, sh); err != nil {
		s.LogError(ctx, err, "Failed to update shareholder",
			slog.String("shareholder_id", shareholderID))
		return nil, err
	}

	s.LogInfo(ctx, "Shareholder updated successfully",
		slog.String("shareholder_id", shareholderID))
	return &sh, nil
}

func (s *shareholderService) RemoveShareholder(ctx context.Context, shareholderID string) error {
	if _, err := s.GetShareholderByID(ctx, shareholderID); err != nil {
		return err
	}

	if err := s.shareholderRepo.RemoveShareholder(ctx, shareholderID); err != nil {
		s.LogError(ctx, err, "Failed to remove shareholder",
			slog.String("shareholder_id", shareholderID))
		return err
	}

	s.LogInfo(ctx, "Shareholder removed successfully",
		slog.String("shareholder_id", shareholderID))
	return nil
}

// checkCapacity loads the roster and rejects the mutation when the requested
// units would push the active total past the capacity.
func (s *shareholderService) checkCapacity(ctx context.Context, excludeID string, requestedUnits int) error {
	roster, err := s.shareholderRepo.FindShareholders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load roster for capacity check")
		return fmt.Errorf("failed to load roster for capacity check: %w", err)
	}

	allocated := accounting.AllocatedUnits(roster, excludeID)
	if allocated+requestedUnits > domain.TotalOwnershipUnits {
		err := apperrors.NewCapacityError(allocated, requestedUnits)
		s.LogDebug(ctx, "Ownership unit capacity exceeded",
			slog.Int("allocated_units", allocated),
			slog.Int("requested_units", requestedUnits))
		return err
	}
	return nil
}
