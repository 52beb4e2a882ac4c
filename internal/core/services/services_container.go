package services

import (
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.Transaction)
	container.Employee = NewEmployeeService(repos.Employee)
	container.Shareholder = NewShareholderService(repos.Shareholder)
	container.Payroll = NewPayrollService(repos.Transaction, repos.Employee)
	container.Equity = NewEquityService(repos.Transaction, repos.Employee, repos.Shareholder)
	container.Reporting = NewReportingService(repos.Transaction, repos.Employee, repos.Shareholder)
	container.User = NewUserService(repos.User)

	return container
}
