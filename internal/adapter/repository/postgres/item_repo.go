package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/metrics"
)

// ItemRepository implements usecase.ItemRepository over the ledger store.
type ItemRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(pool *pgxpool.Pool, mets *metrics.Metrics) *ItemRepository {
	return &ItemRepository{
		pool:    pool,
		retrier: NewRetrier(),
		metrics: mets,
	}
}

// ListByCategory returns all items of a category sorted by name.
func (r *ItemRepository) ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error) {
	const query = `
		SELECT code, name, category
		FROM items
		WHERE category = $1
		ORDER BY name`

	var items []*domain.Item
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, int(category))
		if err != nil {
			return err
		}
		defer rows.Close()

		items = items[:0]
		for rows.Next() {
			var item domain.Item
			var cat int
			if err := rows.Scan(&item.Code, &item.Name, &cat); err != nil {
				return err
			}
			item.Category = domain.ItemCategory(cat)
			items = append(items, &item)
		}

		return rows.Err()
	})

	r.observe("list_items", err)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetByCode retrieves a single item by code and category.
func (r *ItemRepository) GetByCode(ctx context.Context, code string, category domain.ItemCategory) (*domain.Item, error) {
	const query = `
		SELECT code, name, category
		FROM items
		WHERE code = $1 AND category = $2`

	var item domain.Item
	var cat int
	err := r.pool.QueryRow(ctx, query, code, int(category)).Scan(&item.Code, &item.Name, &cat)

	if errors.Is(err, pgx.ErrNoRows) {
		r.observe("get_item", nil)
		return nil, domain.ErrItemNotFound
	}

	r.observe("get_item", err)
	if err != nil {
		return nil, err
	}

	item.Category = domain.ItemCategory(cat)

	return &item, nil
}

func (r *ItemRepository) observe(operation string, err error) {
	r.metrics.StoreQueries.WithLabelValues(operation).Inc()
	if err != nil {
		r.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}
