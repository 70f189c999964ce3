package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines the ability to manage database transactions.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles all repository facades for injection.
type RepositoryProvider struct {
	TenantRepo       TenantRepositoryFacade
	AccountRepo      AccountRepositoryFacade
	JournalRepo      JournalRepositoryFacade
	FiscalPeriodRepo FiscalPeriodRepositoryFacade
	SequenceRepo     SequenceRepository
}
