package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/finbooks/finbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

// newPgxFiscalPeriodRepository creates a new repository for the fiscal calendar.
func newPgxFiscalPeriodRepository(pool *pgxpool.Pool) portsrepo.FiscalPeriodRepositoryFacade {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*PgxFiscalPeriodRepository)(nil)

const fiscalPeriodColumns = `fiscal_period_id, tenant_id, fiscal_year_id, name, name_ar, period_number, start_date, end_date, is_locked, locked_at, created_at, created_by, last_updated_at, last_updated_by`

func scanFiscalPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.FiscalPeriodID,
		&m.TenantID,
		&m.FiscalYearID,
		&m.Name,
		&m.NameAr,
		&m.PeriodNumber,
		&m.StartDate,
		&m.EndDate,
		&m.IsLocked,
		&m.LockedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPeriodByID retrieves a fiscal period, tenant-scoped.
func (r *PgxFiscalPeriodRepository) FindPeriodByID(ctx context.Context, tenantID string, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE tenant_id = $1 AND fiscal_period_id = $2;`

	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, tenantID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal period by ID %s: %w", periodID, err)
	}
	p := mapping.ToDomainFiscalPeriod(m)
	return &p, nil
}

// FindPeriodContaining retrieves the unique period whose inclusive date
// range contains date. Ranges don't overlap within a tenant, so at most one
// row matches.
func (r *PgxFiscalPeriodRepository) FindPeriodContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods
		WHERE tenant_id = $1 AND start_date <= $2 AND end_date >= $2;
	`
	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, tenantID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal period for date %s: %w", date.Format("2006-01-02"), err)
	}
	p := mapping.ToDomainFiscalPeriod(m)
	return &p, nil
}

// ListPeriods retrieves the periods of a fiscal year ordered by number.
func (r *PgxFiscalPeriodRepository) ListPeriods(ctx context.Context, tenantID string, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	query := `
		SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods
		WHERE tenant_id = $1 AND fiscal_year_id = $2
		ORDER BY period_number;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods of fiscal year %s: %w", fiscalYearID, err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		m, err := scanFiscalPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period row: %w", err)
		}
		periods = append(periods, mapping.ToDomainFiscalPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal period rows: %w", err)
	}
	return periods, nil
}

// FindYearByID retrieves a fiscal year, tenant-scoped.
func (r *PgxFiscalPeriodRepository) FindYearByID(ctx context.Context, tenantID string, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `
		SELECT fiscal_year_id, tenant_id, name, name_ar, start_date, end_date, is_closed, created_at, created_by, last_updated_at, last_updated_by
		FROM fiscal_years
		WHERE tenant_id = $1 AND fiscal_year_id = $2;
	`
	var m models.FiscalYear
	err := r.Pool.QueryRow(ctx, query, tenantID, fiscalYearID).Scan(
		&m.FiscalYearID,
		&m.TenantID,
		&m.Name,
		&m.NameAr,
		&m.StartDate,
		&m.EndDate,
		&m.IsClosed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal year by ID %s: %w", fiscalYearID, err)
	}
	y := mapping.ToDomainFiscalYear(m)
	return &y, nil
}

// SetPeriodLock flips the lock flag and timestamp on a period and returns
// the updated row. Unlocking clears locked_at.
func (r *PgxFiscalPeriodRepository) SetPeriodLock(ctx context.Context, tenantID string, periodID string, locked bool, actorID string, at time.Time) (*domain.FiscalPeriod, error) {
	query := `
		UPDATE fiscal_periods
		SET is_locked = $3,
		    locked_at = CASE WHEN $3 THEN $4 ELSE NULL END,
		    last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND fiscal_period_id = $2
		RETURNING ` + fiscalPeriodColumns + `;
	`
	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, tenantID, periodID, locked, at, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set lock on fiscal period %s: %w", periodID, err)
	}
	p := mapping.ToDomainFiscalPeriod(m)
	return &p, nil
}
