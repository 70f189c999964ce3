package services

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// FiscalPeriodSvcFacade is the fiscal calendar gate.
type FiscalPeriodSvcFacade interface {
	// ResolvePeriod returns the unique period containing date, or a
	// not-found error when the tenant has no period covering it.
	ResolvePeriod(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalPeriod, error)

	// GetPeriodByID returns a period by ID.
	GetPeriodByID(ctx context.Context, tenantID string, periodID string) (*domain.FiscalPeriod, error)

	// ListPeriods returns a fiscal year's periods ordered by number.
	ListPeriods(ctx context.Context, tenantID string, fiscalYearID string) ([]domain.FiscalPeriod, error)

	// LockPeriod blocks new journals dated inside the period. Journals
	// already posted into it are untouched.
	LockPeriod(ctx context.Context, tenantID string, periodID string, actorUserID string) (*domain.FiscalPeriod, error)

	// UnlockPeriod re-opens a locked period.
	UnlockPeriod(ctx context.Context, tenantID string, periodID string, actorUserID string) (*domain.FiscalPeriod, error)
}
