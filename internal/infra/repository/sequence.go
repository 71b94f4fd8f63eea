package repository

import (
	"context"

	"campushub/internal/infra"
	"campushub/internal/infra/db"
)

type SequenceRepository struct {
	db db.DBTX
}

func NewSequenceRepository(pool db.DBTX) *SequenceRepository {
	return &SequenceRepository{db: pool}
}

const nextValueSQL = `
INSERT INTO sequence_counters (name, seq)
VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET seq = sequence_counters.seq + 1
RETURNING seq`

// NextValue atomically increments the named counter and returns the
// post-increment value. Safe under concurrent callers; a caller whose
// enclosing transaction aborts leaves a gap, which is acceptable.
func (r *SequenceRepository) NextValue(ctx context.Context, tx db.DBTX, name string) (int64, error) {
	if tx == nil {
		tx = r.db
	}

	var seq int64
	if err := tx.QueryRow(ctx, nextValueSQL, name).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr("failed to increment sequence counter", err)
	}
	return seq, nil
}
