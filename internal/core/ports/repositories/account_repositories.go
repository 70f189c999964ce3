package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
// Every query is tenant-scoped; an account belonging to another tenant is
// reported as not found.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its tenant-unique code.
	FindAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs in one batch.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the tenant's flat account list ordered by code.
	ListAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.Account, error)

	// ListAccountsByType retrieves active, posting-allowed accounts of the
	// given type, ordered by code.
	ListAccountsByType(ctx context.Context, tenantID string, accountType domain.AccountType) ([]domain.Account, error)

	// FindChildren retrieves the direct children of an account, ordered by code.
	FindChildren(ctx context.Context, tenantID string, accountID string) ([]domain.Account, error)

	// HasChildren reports whether any account references accountID as parent.
	HasChildren(ctx context.Context, tenantID string, accountID string) (bool, error)

	// HasJournalLines reports whether any journal line references the account.
	HasJournalLines(ctx context.Context, tenantID string, accountID string) (bool, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's mutable details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account row. Callers must check the deletion
	// guards (children, referencing lines) first.
	DeleteAccount(ctx context.Context, tenantID string, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
