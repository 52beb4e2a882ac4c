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

type PgxEmployeeRepository struct {
	db Querier
}

func newPgxEmployeeRepository(db Querier) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, emp domain.Employee) error {
	modelEmp := mapping.ToModelEmployee(emp)
	query := `
        INSERT INTO employees (employee_id, last_name, first_name, position, monthly_salary, hire_date, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelEmp.EmployeeID,
		modelEmp.LastName,
		modelEmp.FirstName,
		modelEmp.Position,
		modelEmp.MonthlySalary,
		modelEmp.HireDate,
		modelEmp.Active,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, last_name, first_name, position, monthly_salary, hire_date, active, created_at
		FROM employees
		WHERE employee_id = $1;
	`
	var modelEmp models.Employee
	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&modelEmp.EmployeeID,
		&modelEmp.LastName,
		&modelEmp.FirstName,
		&modelEmp.Position,
		&modelEmp.MonthlySalary,
		&modelEmp.HireDate,
		&modelEmp.Active,
		&modelEmp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	domainEmp := mapping.ToDomainEmployee(modelEmp)
	return &domainEmp, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT employee_id, last_name, first_name, position, monthly_salary, hire_date, active, created_at
		FROM employees
		ORDER BY last_name, first_name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var modelEmps []models.Employee
	for rows.Next() {
		var modelEmp models.Employee
		err := rows.Scan(
			&modelEmp.EmployeeID,
			&modelEmp.LastName,
			&modelEmp.FirstName,
			&modelEmp.Position,
			&modelEmp.MonthlySalary,
			&modelEmp.HireDate,
			&modelEmp.Active,
			&modelEmp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		modelEmps = append(modelEmps, modelEmp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return mapping.ToDomainEmployeeSlice(modelEmps), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, emp domain.Employee) error {
	modelEmp := mapping.ToModelEmployee(emp)
	query := `
		UPDATE employees
		SET last_name = $2, first_name = $3, position = $4, monthly_salary = $5, hire_date = $6, active = $7
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		modelEmp.EmployeeID,
		modelEmp.LastName,
		modelEmp.FirstName,
		modelEmp.Position,
		modelEmp.MonthlySalary,
		modelEmp.HireDate,
		modelEmp.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", emp.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RemoveEmployee deactivates instead of deleting so past salary payments
// keep a valid reference.
func (r *PgxEmployeeRepository) RemoveEmployee(ctx context.Context, employeeID string) error {
	query := `UPDATE employees SET active = FALSE WHERE employee_id = $1;`
	tag, err := r.db.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to remove employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
