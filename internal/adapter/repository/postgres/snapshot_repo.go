package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/metrics"
)

// SnapshotRepository implements usecase.SnapshotRepository over the stored
// opening balances.
type SnapshotRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool, mets *metrics.Metrics) *SnapshotRepository {
	return &SnapshotRepository{
		pool:    pool,
		metrics: mets,
	}
}

// GetBase returns the prior-period carry-forward snapshot for an item. An
// item without a stored opening balance gets a zero snapshot, not an error.
func (r *SnapshotRepository) GetBase(ctx context.Context, code string, category domain.ItemCategory) (domain.Snapshot, error) {
	const query = `
		SELECT quantity, value
		FROM opening_balances
		WHERE item_code = $1 AND category = $2`

	var quantity, value pgtype.Numeric
	err := r.pool.QueryRow(ctx, query, code, int(category)).Scan(&quantity, &value)

	if errors.Is(err, pgx.ErrNoRows) {
		r.observe("get_base_snapshot", nil)
		return domain.ZeroSnapshot(), nil
	}

	r.observe("get_base_snapshot", err)
	if err != nil {
		return domain.ZeroSnapshot(), err
	}

	return domain.Snapshot{
		Quantity: numericToDecimal(quantity),
		Value:    numericToDecimal(value),
	}, nil
}

func (r *SnapshotRepository) observe(operation string, err error) {
	r.metrics.StoreQueries.WithLabelValues(operation).Inc()
	if err != nil {
		r.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}
