package services

// ServiceContainer bundles all service facades for handler injection.
type ServiceContainer struct {
	Tenant       TenantSvcFacade
	Account      AccountSvcFacade
	FiscalPeriod FiscalPeriodSvcFacade
	Sequence     SequenceSvcFacade
	Journal      JournalSvcFacade
	Ledger       LedgerSvcFacade
}
