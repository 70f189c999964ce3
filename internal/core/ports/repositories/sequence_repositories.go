package repositories

import "context"

// SequenceRepository allocates monotonically increasing document numbers.
//
// NextNumber must be atomic per (tenantID, docType): two concurrent callers
// must never receive the same value. The pgsql implementation uses a single
// upsert with RETURNING, so allocation never does a read-then-write.
type SequenceRepository interface {
	NextNumber(ctx context.Context, tenantID string, docType string) (int64, error)
}
