package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
)

var employeeHeader = []string{"employee_id", "last_name", "first_name", "position", "monthly_salary", "hire_date", "active"}

type CSVEmployeeRepository struct {
	mu   sync.RWMutex
	path string
}

func newCSVEmployeeRepository(dir string) portsrepo.EmployeeRepositoryFacade {
	return &CSVEmployeeRepository{path: filepath.Join(dir, "employees.csv")}
}

var _ portsrepo.EmployeeRepositoryFacade = (*CSVEmployeeRepository)(nil)

func (r *CSVEmployeeRepository) SaveEmployee(ctx context.Context, emp domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emps, err := r.load()
	if err != nil {
		return err
	}
	emps = append(emps, emp)
	return r.store(emps)
}

func (r *CSVEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emps, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range emps {
		if emps[i].EmployeeID == employeeID {
			return &emps[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CSVEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}

func (r *CSVEmployeeRepository) UpdateEmployee(ctx context.Context, emp domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emps, err := r.load()
	if err != nil {
		return err
	}
	for i := range emps {
		if emps[i].EmployeeID == emp.EmployeeID {
			emps[i] = emp
			return r.store(emps)
		}
	}
	return apperrors.ErrNotFound
}

// RemoveEmployee deletes the row outright, matching the behavior of the
// original file-backed tool.
func (r *CSVEmployeeRepository) RemoveEmployee(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emps, err := r.load()
	if err != nil {
		return err
	}
	for i := range emps {
		if emps[i].EmployeeID == employeeID {
			emps = append(emps[:i], emps[i+1:]...)
			return r.store(emps)
		}
	}
	return apperrors.ErrNotFound
}

func (r *CSVEmployeeRepository) load() ([]domain.Employee, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	emps := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			return nil, fmt.Errorf("malformed employee row with %d fields", len(row))
		}
		salary, err := decimal.NewFromString(row[4])
		if err != nil {
			return nil, fmt.Errorf("malformed employee salary %q: %w", row[4], err)
		}
		hireDate, err := time.ParseInLocation(dateLayout, row[5], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("malformed employee hire date %q: %w", row[5], err)
		}
		active, err := strconv.ParseBool(row[6])
		if err != nil {
			return nil, fmt.Errorf("malformed employee active flag %q: %w", row[6], err)
		}
		emps = append(emps, domain.Employee{
			EmployeeID:    row[0],
			LastName:      row[1],
			FirstName:     row[2],
			Position:      row[3],
			MonthlySalary: salary,
			HireDate:      hireDate,
			Active:        active,
		})
	}
	return emps, nil
}

func (r *CSVEmployeeRepository) store(emps []domain.Employee) error {
	rows := make([][]string, len(emps))
	for i, emp := range emps {
		rows[i] = []string{
			emp.EmployeeID,
			emp.LastName,
			emp.FirstName,
			emp.Position,
			emp.MonthlySalary.String(),
			emp.HireDate.Format(dateLayout),
			strconv.FormatBool(emp.Active),
		}
	}
	return writeRecords(r.path, employeeHeader, rows)
}
