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

type tenantService struct {
	BaseService
	tenantRepo  portsrepo.TenantRepositoryFacade
	sequenceSvc portssvc.SequenceSvcFacade
}

// NewTenantService creates a new tenant service.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, sequenceSvc portssvc.SequenceSvcFacade) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo, sequenceSvc: sequenceSvc}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// CreateTenant allocates a tenant code from the global sequence and
// persists the tenant.
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	code, err := s.sequenceSvc.NextTenantCode(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate tenant code")
		return nil, err
	}

	now := time.Now().UTC()
	tenant := domain.Tenant{
		TenantID:            uuid.NewString(),
		Code:                code,
		Name:                req.Name,
		NameAr:              req.NameAr,
		DefaultCurrencyCode: req.DefaultCurrencyCode,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("tenant_code", code))
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenant.TenantID), slog.String("tenant_code", code))
	return &tenant, nil
}

// GetTenantByID returns a tenant by ID.
func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tenant", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return tenant, nil
}
