package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// TenantSvcFacade manages tenant records. Seeding the template chart of
// accounts and the initial fiscal calendar is a provisioning concern outside
// this service.
type TenantSvcFacade interface {
	// CreateTenant allocates a tenant code and persists the tenant.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)

	// GetTenantByID returns a tenant by ID.
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}
