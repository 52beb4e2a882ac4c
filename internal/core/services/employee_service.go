package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	emp, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by ID",
				slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, activeOnly bool) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	if activeOnly {
		active := make([]domain.Employee, 0, len(employees))
		for _, emp := range employees {
			if emp.Active {
				active = append(active, emp)
			}
		}
		employees = active
	}

	sort.SliceStable(employees, func(i, j int) bool {
		if employees[i].LastName != employees[j].LastName {
			return employees[i].LastName < employees[j].LastName
		}
		return employees[i].FirstName < employees[j].FirstName
	})

	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hireDate, err := dto.ParseDate(req.HireDate)
	if err != nil {
		return nil, apperrors.NewValidationError("employee", []apperrors.FieldViolation{
			{Field: "hireDate", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}

	emp := domain.Employee{
		EmployeeID:    uuid.NewString(),
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		Position:      req.Position,
		MonthlySalary: req.MonthlySalary,
		HireDate:      hireDate,
		Active:        true,
	}
	if err := emp.Validate(); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.SaveEmployee(ctx, emp); err != nil {
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("employee_id", emp.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created successfully",
		slog.String("employee_id", emp.EmployeeID),
		slog.String("name", emp.FullName()))
	return &emp, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	existing, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	hireDate, err := dto.ParseDate(req.HireDate)
	if err != nil {
		return nil, apperrors.NewValidationError("employee", []apperrors.FieldViolation{
			{Field: "hireDate", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}

	emp := domain.Employee{
		EmployeeID:    existing.EmployeeID,
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		Position:      req.Position,
		MonthlySalary: req.MonthlySalary,
		HireDate:      hireDate,
		Active:        *req.Active,
	}
	if err := emp.Validate(); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, emp); err != nil {
		s.LogError(ctx, err, "Failed to update employee",
			slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated successfully",
		slog.String("employee_id", employeeID))
	return &emp, nil
}

func (s *employeeService) RemoveEmployee(ctx context.Context, employeeID string) error {
	if _, err := s.GetEmployeeByID(ctx, employeeID); err != nil {
		return err
	}

	if err := s.employeeRepo.RemoveEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to remove employee",
			slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "Employee removed successfully",
		slog.String("employee_id", employeeID))
	return nil
}
