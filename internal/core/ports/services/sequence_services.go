package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// SequenceSvcFacade produces tenant- and document-type-scoped reference codes.
type SequenceSvcFacade interface {
	// NextTenantCode allocates the next tenant code, e.g. TEN000001.
	NextTenantCode(ctx context.Context) (string, error)

	// NextJournalNumber allocates the next number for a tenant and journal
	// type, e.g. GN000042. Allocation is atomic; concurrent callers always
	// receive distinct numbers.
	NextJournalNumber(ctx context.Context, tenantID string, journalType domain.JournalType) (string, error)
}
