package services

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// NewServiceContainer wires all services over the repository provider.
// Sequence and fiscal services are built first since the journal engine
// depends on both.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Sequence = NewSequenceService(repos.SequenceRepo)
	container.FiscalPeriod = NewFiscalPeriodService(repos.FiscalPeriodRepo)
	container.Tenant = NewTenantService(repos.TenantRepo, container.Sequence)
	container.Account = NewAccountService(repos.AccountRepo)

	container.Journal = NewJournalService(
		repos.JournalRepo,
		container.Account,
		container.FiscalPeriod,
		container.Sequence,
	)

	container.Ledger = NewLedgerService(repos.JournalRepo, repos.AccountRepo)

	return container
}
