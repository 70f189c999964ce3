package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document sequences.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextNumber allocates the next number for a (tenant, docType) counter in a
// single upsert. The row lock taken by the UPDATE serializes concurrent
// callers, so no two of them can observe the same value.
func (r *PgxSequenceRepository) NextNumber(ctx context.Context, tenantID string, docType string) (int64, error) {
	query := `
		INSERT INTO document_sequences (tenant_id, doc_type, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, doc_type)
		DO UPDATE SET last_number = document_sequences.last_number + 1
		RETURNING last_number;
	`
	var n int64
	if err := r.Pool.QueryRow(ctx, query, tenantID, docType).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to allocate sequence number for %s/%s: %w", tenantID, docType, err)
	}
	return n, nil
}
