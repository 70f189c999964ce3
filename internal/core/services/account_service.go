package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// accountService owns the chart-of-accounts hierarchy: it validates the
// parent-child tree, computes levels, and guards deletions.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// ListAccounts returns the tenant's accounts re-nested into a tree. The flat
// list arrives ordered by code; the tree is built in two passes: first an
// id -> node map with empty children, then each node is appended into its
// parent's children (or into the root list when the parent is absent from
// the returned set).
func (s *accountService) ListAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return buildAccountTree(accounts), nil
}

// buildAccountTree nests a flat, code-ordered account list. O(n).
func buildAccountTree(accounts []domain.Account) []*domain.Account {
	nodes := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		acc := accounts[i]
		acc.Children = nil
		nodes[acc.AccountID] = &acc
	}

	roots := make([]*domain.Account, 0)
	for i := range accounts {
		node := nodes[accounts[i].AccountID]
		if node.ParentAccountID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[node.ParentAccountID]
		if !ok {
			// Parent filtered out of this result set (e.g. inactive); keep
			// the subtree reachable by promoting the node to a root.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// GetAccountByID returns the account with its parent summary and direct
// children populated.
func (s *accountService) GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	if account.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, tenantID, account.ParentAccountID)
		if err == nil {
			summary := parent.Summary()
			account.Parent = &summary
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load parent account: %w", err)
		}
	}

	children, err := s.accountRepo.FindChildren(ctx, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load child accounts: %w", err)
	}
	for i := range children {
		child := children[i]
		account.Children = append(account.Children, &child)
	}

	return account, nil
}

// GetAccountByCode returns an account by its tenant-unique code.
func (s *accountService) GetAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs batch-loads accounts for line validation.
func (s *accountService) GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, tenantID, accountIDs)
}

// GetAccountsByType returns active, posting-allowed accounts of one type.
func (s *accountService) GetAccountsByType(ctx context.Context, tenantID string, accountType domain.AccountType) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByType(ctx, tenantID, accountType)
}

// CreateAccount validates and persists a new account. Validation order:
// code uniqueness, then parent existence (which forces the level), then
// balance-type defaulting.
func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if _, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.Code); err == nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
	}

	level := 1
	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parentID = *req.ParentAccountID
		parent, err := s.accountRepo.FindAccountByID(ctx, tenantID, parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, parentID)
			}
			return nil, fmt.Errorf("failed to load parent account: %w", err)
		}
		// Level is derived from the parent regardless of caller input.
		level = parent.Level + 1
	}

	balanceType := domain.DefaultBalanceType(req.AccountType)
	if req.BalanceType != nil {
		balanceType = *req.BalanceType
	}

	postingAllowed := true
	if req.IsPostingAllowed != nil {
		postingAllowed = *req.IsPostingAllowed
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:          uuid.NewString(),
		TenantID:           tenantID,
		Code:               req.Code,
		Name:               req.Name,
		NameAr:             req.NameAr,
		AccountType:        req.AccountType,
		AccountSubtype:     req.AccountSubtype,
		ParentAccountID:    parentID,
		Level:              level,
		BalanceType:        balanceType,
		CurrencyCode:       req.CurrencyCode,
		IsControlAccount:   req.IsControlAccount,
		IsPostingAllowed:   postingAllowed,
		IsActive:           true,
		CostCenterRequired: req.CostCenterRequired,
		Description:        req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("tenant_id", tenantID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// UpdateAccount applies a partial update. Code, type, parent and level are
// immutable; only explicitly-provided fields change.
func (s *accountService) UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.NameAr != nil {
		account.NameAr = *req.NameAr
		updated = true
	}
	if req.AccountSubtype != nil {
		account.AccountSubtype = *req.AccountSubtype
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.IsControlAccount != nil {
		account.IsControlAccount = *req.IsControlAccount
		updated = true
	}
	if req.IsPostingAllowed != nil {
		account.IsPostingAllowed = *req.IsPostingAllowed
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if req.CostCenterRequired != nil {
		account.CostCenterRequired = *req.CostCenterRequired
		updated = true
	}

	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// DeleteAccount removes an account unless the hierarchy or the ledger still
// references it.
func (s *accountService) DeleteAccount(ctx context.Context, tenantID string, accountID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID); err != nil {
		return err
	}

	hasChildren, err := s.accountRepo.HasChildren(ctx, tenantID, accountID)
	if err != nil {
		return fmt.Errorf("failed to check child accounts: %w", err)
	}
	if hasChildren {
		return fmt.Errorf("%w: account has child accounts", apperrors.ErrValidation)
	}

	hasLines, err := s.accountRepo.HasJournalLines(ctx, tenantID, accountID)
	if err != nil {
		return fmt.Errorf("failed to check journal lines: %w", err)
	}
	if hasLines {
		return fmt.Errorf("%w: account has posted transactions", apperrors.ErrValidation)
	}

	if err := s.accountRepo.DeleteAccount(ctx, tenantID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("tenant_id", tenantID))
	return nil
}
