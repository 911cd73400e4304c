package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/stockval/internal/domain"
)

// ItemRepository defines read access to the ledger store's item catalog.
type ItemRepository interface {
	// ListByCategory returns all items of a category, sorted by name.
	ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error)
	// GetByCode returns a single item, or domain.ErrItemNotFound.
	GetByCode(ctx context.Context, code string, category domain.ItemCategory) (*domain.Item, error)
}

// SnapshotRepository defines read access to stored opening balances.
type SnapshotRepository interface {
	// GetBase returns the prior-period carry-forward snapshot for an item.
	// A missing snapshot is a zero snapshot, never an error.
	GetBase(ctx context.Context, code string, category domain.ItemCategory) (domain.Snapshot, error)
}

// TransactionRepository defines read access to the transaction log.
type TransactionRepository interface {
	// ListByItem returns an item's transactions sorted ascending by
	// (date, record type). A non-nil endDate lets the store pre-filter to
	// date <= endDate as an optimization; callers must not depend on the
	// filter being applied.
	ListByItem(ctx context.Context, code string, endDate *time.Time) ([]domain.Transaction, error)
	// SumAmounts returns the sum of signed amounts for an item between the
	// optional inclusive bounds.
	SumAmounts(ctx context.Context, code string, from, to *time.Time) (decimal.Decimal, error)
}

// ItemParameterRepository defines read access to per-voucher item
// parameter rows.
type ItemParameterRepository interface {
	Search(ctx context.Context, filter domain.ItemParameterFilter) ([]*domain.ItemParameter, error)
}

// Cache defines caching operations for computed reports.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IDGenerator generates unique IDs for report runs.
type IDGenerator interface {
	Generate() string
}
