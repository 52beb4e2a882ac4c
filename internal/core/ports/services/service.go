package services

// ServiceContainer bundles every service facade the handlers depend on.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Employee    EmployeeSvcFacade
	Shareholder ShareholderSvcFacade
	Payroll     PayrollSvcFacade
	Equity      EquitySvcFacade
	Reporting   ReportingSvcFacade
	User        UserSvcFacade
}
