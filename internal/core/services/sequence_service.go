package services

import (
	"context"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// tenantCodeNamespace is the sequence row used for tenant codes; tenant
// codes are global, not tenant-scoped.
const tenantCodeNamespace = "GLOBAL"

// sequenceNumberWidth is the zero-padded width of generated reference codes.
const sequenceNumberWidth = 6

// sequenceService formats reference codes on top of the atomic counter
// repository. All uniqueness guarantees live in the repository; this layer
// only knows prefixes and padding.
type sequenceService struct {
	BaseService
	sequenceRepo portsrepo.SequenceRepository
}

// NewSequenceService creates a new sequence service.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepository) portssvc.SequenceSvcFacade {
	return &sequenceService{sequenceRepo: sequenceRepo}
}

var _ portssvc.SequenceSvcFacade = (*sequenceService)(nil)

// NextTenantCode allocates the next tenant code, e.g. TEN000001.
func (s *sequenceService) NextTenantCode(ctx context.Context) (string, error) {
	n, err := s.sequenceRepo.NextNumber(ctx, tenantCodeNamespace, domain.TenantCodePrefix)
	if err != nil {
		return "", fmt.Errorf("failed to allocate tenant code: %w", err)
	}
	return fmt.Sprintf("%s%0*d", domain.TenantCodePrefix, sequenceNumberWidth, n), nil
}

// NextJournalNumber allocates the next journal number for a tenant and
// journal type, e.g. GN000042.
func (s *sequenceService) NextJournalNumber(ctx context.Context, tenantID string, journalType domain.JournalType) (string, error) {
	prefix := journalType.NumberPrefix()
	n, err := s.sequenceRepo.NextNumber(ctx, tenantID, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to allocate journal number: %w", err)
	}
	return fmt.Sprintf("%s%0*d", prefix, sequenceNumberWidth, n), nil
}
