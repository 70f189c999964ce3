package services

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/dto"
)

// LedgerSvcFacade reads posted journal lines; it never mutates engine state.
type LedgerSvcFacade interface {
	// GetBalance sums debit and credit across an account's posted lines
	// (optionally as of a date) and classifies the result by the account's
	// natural balance side.
	GetBalance(ctx context.Context, tenantID string, accountID string, asOfDate *time.Time) (*dto.AccountBalanceResponse, error)

	// ListAccountLines returns a page of an account's posted lines, newest first.
	ListAccountLines(ctx context.Context, tenantID string, accountID string, params dto.ListAccountLinesParams) (*dto.ListAccountLinesResponse, error)
}
