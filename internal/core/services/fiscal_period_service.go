package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// fiscalPeriodService resolves transaction dates onto the fiscal calendar
// and flips period locks. Period creation happens at provisioning time and
// is not exposed here.
type fiscalPeriodService struct {
	BaseService
	fiscalRepo portsrepo.FiscalPeriodRepositoryFacade
}

// NewFiscalPeriodService creates a new fiscal period service.
func NewFiscalPeriodService(fiscalRepo portsrepo.FiscalPeriodRepositoryFacade) portssvc.FiscalPeriodSvcFacade {
	return &fiscalPeriodService{fiscalRepo: fiscalRepo}
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

// ResolvePeriod finds the unique period containing date. Periods within a
// fiscal year are contiguous and non-overlapping, so at most one matches.
func (s *fiscalPeriodService) ResolvePeriod(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalPeriod, error) {
	period, err := s.fiscalRepo.FindPeriodContaining(ctx, tenantID, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve fiscal period", slog.Time("date", date))
		}
		return nil, err
	}
	return period, nil
}

// GetPeriodByID returns a period by ID.
func (s *fiscalPeriodService) GetPeriodByID(ctx context.Context, tenantID string, periodID string) (*domain.FiscalPeriod, error) {
	return s.fiscalRepo.FindPeriodByID(ctx, tenantID, periodID)
}

// ListPeriods returns a fiscal year's periods ordered by number.
func (s *fiscalPeriodService) ListPeriods(ctx context.Context, tenantID string, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	if _, err := s.fiscalRepo.FindYearByID(ctx, tenantID, fiscalYearID); err != nil {
		return nil, err
	}
	return s.fiscalRepo.ListPeriods(ctx, tenantID, fiscalYearID)
}

// LockPeriod blocks new journals dated inside the period. Already-posted
// journals are unaffected.
func (s *fiscalPeriodService) LockPeriod(ctx context.Context, tenantID string, periodID string, actorUserID string) (*domain.FiscalPeriod, error) {
	return s.setLock(ctx, tenantID, periodID, actorUserID, true)
}

// UnlockPeriod re-opens a locked period.
func (s *fiscalPeriodService) UnlockPeriod(ctx context.Context, tenantID string, periodID string, actorUserID string) (*domain.FiscalPeriod, error) {
	return s.setLock(ctx, tenantID, periodID, actorUserID, false)
}

func (s *fiscalPeriodService) setLock(ctx context.Context, tenantID, periodID, actorUserID string, locked bool) (*domain.FiscalPeriod, error) {
	period, err := s.fiscalRepo.FindPeriodByID(ctx, tenantID, periodID)
	if err != nil {
		return nil, err
	}
	if period.IsLocked == locked {
		// Status flip is idempotent; return the current state.
		return period, nil
	}

	updated, err := s.fiscalRepo.SetPeriodLock(ctx, tenantID, periodID, locked, actorUserID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to update period lock", slog.String("period_id", periodID), slog.Bool("locked", locked))
		return nil, fmt.Errorf("failed to update period lock: %w", err)
	}

	s.LogInfo(ctx, "Fiscal period lock updated", slog.String("period_id", periodID), slog.Bool("locked", locked))
	return updated, nil
}
