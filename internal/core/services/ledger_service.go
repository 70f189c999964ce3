package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

// ledgerService answers balance and transaction queries over posted
// journal lines. It never writes.
type ledgerService struct {
	BaseService
	journalRepo portsrepo.JournalReader
	accountRepo portsrepo.AccountReader
}

// NewLedgerService creates a new ledger read service.
func NewLedgerService(journalRepo portsrepo.JournalReader, accountRepo portsrepo.AccountReader) portssvc.LedgerSvcFacade {
	return &ledgerService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetBalance sums debit and credit across an account's posted lines and
// nets them onto the account's natural balance side. An account with no
// posted activity reports zero on its natural side.
func (s *ledgerService) GetBalance(ctx context.Context, tenantID string, accountID string, asOfDate *time.Time) (*dto.AccountBalanceResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for balance query", slog.String("account_id", accountID))
		}
		return nil, err
	}

	debit, credit, err := s.journalRepo.SumAccountLines(ctx, tenantID, accountID, asOfDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account lines", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}

	balance, netDebit, netCredit := accounting.NaturalBalance(debit, credit, account.BalanceType)

	return &dto.AccountBalanceResponse{
		AccountID:   accountID,
		Debit:       debit,
		Credit:      credit,
		Balance:     balance,
		NetDebit:    netDebit,
		NetCredit:   netCredit,
		BalanceType: account.BalanceType,
		AsOfDate:    asOfDate,
	}, nil
}

// ListAccountLines returns a page of an account's posted lines, newest first.
func (s *ledgerService) ListAccountLines(ctx context.Context, tenantID string, accountID string, params dto.ListAccountLinesParams) (*dto.ListAccountLinesResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID); err != nil {
		return nil, err
	}

	lines, nextToken, err := s.journalRepo.ListAccountLines(ctx, tenantID, accountID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account lines", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve lines for account %s: %w", accountID, err)
	}

	resp := &dto.ListAccountLinesResponse{NextToken: nextToken, Lines: make([]dto.JournalLineResponse, len(lines))}
	for i, line := range lines {
		resp.Lines[i] = dto.ToJournalLineResponse(line)
	}
	return resp, nil
}
