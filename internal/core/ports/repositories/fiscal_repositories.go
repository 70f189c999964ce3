package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// FiscalPeriodReader defines read operations for the fiscal calendar.
type FiscalPeriodReader interface {
	// FindPeriodByID retrieves a fiscal period, tenant-scoped.
	FindPeriodByID(ctx context.Context, tenantID string, periodID string) (*domain.FiscalPeriod, error)

	// FindPeriodContaining retrieves the unique period whose inclusive
	// [start_date, end_date] range contains date.
	FindPeriodContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves the periods of a fiscal year ordered by number.
	ListPeriods(ctx context.Context, tenantID string, fiscalYearID string) ([]domain.FiscalPeriod, error)

	// FindYearByID retrieves a fiscal year, tenant-scoped.
	FindYearByID(ctx context.Context, tenantID string, fiscalYearID string) (*domain.FiscalYear, error)
}

// FiscalPeriodWriter defines write operations for the fiscal calendar.
type FiscalPeriodWriter interface {
	// SetPeriodLock flips the lock flag and timestamp on a period. It has no
	// cascading effect on journals already posted into the period.
	SetPeriodLock(ctx context.Context, tenantID string, periodID string, locked bool, actorID string, at time.Time) (*domain.FiscalPeriod, error)
}

// FiscalPeriodRepositoryFacade combines the fiscal calendar interfaces.
type FiscalPeriodRepositoryFacade interface {
	FiscalPeriodReader
	FiscalPeriodWriter
}
