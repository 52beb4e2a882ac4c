package mapping

import (
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		LastName:      d.LastName,
		FirstName:     d.FirstName,
		Position:      d.Position,
		MonthlySalary: d.MonthlySalary,
		HireDate:      d.HireDate,
		Active:        d.Active,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:    m.EmployeeID,
		LastName:      m.LastName,
		FirstName:     m.FirstName,
		Position:      m.Position,
		MonthlySalary: m.MonthlySalary,
		HireDate:      m.HireDate,
		Active:        m.Active,
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
