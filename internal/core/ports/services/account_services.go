package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// AccountReaderSvc defines read operations over the chart of accounts.
type AccountReaderSvc interface {
	// ListAccounts returns the tenant's accounts re-nested into a tree,
	// roots first, each root's children populated recursively.
	ListAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Account, error)

	// GetAccountByID returns an account with parent summary and direct
	// children populated.
	GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error)

	// GetAccountByCode returns an account by its tenant-unique code.
	GetAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error)

	// GetAccountsByIDs batch-loads accounts by ID.
	GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// GetAccountsByType returns active, posting-allowed accounts of the
	// given type, ordered by code.
	GetAccountsByType(ctx context.Context, tenantID string, accountType domain.AccountType) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations over the chart of accounts.
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount applies a partial update to mutable account fields.
	UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)

	// DeleteAccount removes an account that has no children and no journal
	// lines referencing it.
	DeleteAccount(ctx context.Context, tenantID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
