package repositories

// RepositoryProvider bundles one repository per entity so a whole storage
// backend (pgsql or csv filestore) can be swapped in a single value.
type RepositoryProvider struct {
	Transaction TransactionRepositoryFacade
	Employee    EmployeeRepositoryFacade
	Shareholder ShareholderRepositoryFacade
	User        UserRepositoryFacade
}
