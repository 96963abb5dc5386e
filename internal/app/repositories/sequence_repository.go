package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SequenceRepository hands out monotonically increasing sequence values per
// identifier scope. Each scope row lives in identifier_sequences and is
// advanced with a single upsert, so concurrent callers can never observe
// the same value twice.
type SequenceRepository struct {
	db *pgxpool.Pool
}

// NewSequenceRepository creates a new SequenceRepository
func NewSequenceRepository(db *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{
		db: db,
	}
}

// Reserve advances the scope's counter by n and returns the last value of
// the reserved block. The caller owns values last-n+1 .. last. On first use
// the scope row is created at initial+n, so counters can be seeded from
// pre-existing identifiers.
func (r *SequenceRepository) Reserve(ctx context.Context, scope string, n int64, initial int64) (int64, error) {
	query := `
		INSERT INTO identifier_sequences (scope, value)
		VALUES ($1, $2 + $3)
		ON CONFLICT (scope) DO UPDATE
		SET value = identifier_sequences.value + $3
		RETURNING value
	`

	var last int64
	err := r.db.QueryRow(ctx, query, scope, initial, n).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("error reserving sequence block for scope %s: %w", scope, err)
	}

	return last, nil
}
