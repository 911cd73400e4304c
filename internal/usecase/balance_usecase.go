package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/logging"
	"github.com/iho/stockval/internal/infrastructure/metrics"
)

// BalanceReportUseCase assembles the closing-balance report for account
// items. Account balances have no quantity dimension: the balance is a pure
// running sum of signed amounts, computed through source-side aggregates.
// The windowing rules are identical to the stock replay: opening is strictly
// before the start bound, period and closing are inclusive of both bounds.
type BalanceReportUseCase struct {
	items     ItemRepository
	snapshots SnapshotRepository
	txns      TransactionRepository
	cache     Cache // optional
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    *logging.Logger
	cacheTTL  time.Duration
}

// NewBalanceReportUseCase creates a new BalanceReportUseCase.
func NewBalanceReportUseCase(
	items ItemRepository,
	snapshots SnapshotRepository,
	txns TransactionRepository,
	cache Cache,
	idGen IDGenerator,
	mets *metrics.Metrics,
	logger *logging.Logger,
	cacheTTL time.Duration,
) *BalanceReportUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &BalanceReportUseCase{
		items:     items,
		snapshots: snapshots,
		txns:      txns,
		cache:     cache,
		idGen:     idGen,
		metrics:   mets,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// ComputeBalanceReport computes opening balance, period amount and closing
// balance for every account item. Accounts whose opening, period and closing
// figures are all zero are suppressed; a net-zero combination of non-zero
// figures is retained.
func (uc *BalanceReportUseCase) ComputeBalanceReport(ctx context.Context, window domain.Window) ([]domain.BalanceReportRow, error) {
	if !window.Valid() {
		return nil, domain.ErrInvalidWindow
	}

	ctx = context.WithValue(ctx, logging.RunIDKey, uc.idGen.Generate())
	start := time.Now()

	key := balanceCacheKey(window)
	if cached, ok := uc.fromCache(ctx, key); ok {
		return cached, nil
	}

	items, err := uc.items.ListByCategory(ctx, domain.CategoryAccount)
	if err != nil {
		return nil, fmt.Errorf("list account items: %w", err)
	}

	rows := make([]domain.BalanceReportRow, 0, len(items))
	for _, item := range items {
		row, err := uc.accountRow(ctx, item, window)
		if err != nil {
			return nil, err
		}

		total := row.OpeningBalance.Abs().
			Add(row.PeriodAmount.Abs()).
			Add(row.ClosingBalance.Abs())
		if total.IsZero() {
			continue
		}

		rows = append(rows, row)
	}

	uc.storeCache(ctx, key, rows)

	uc.metrics.ReportsComputed.WithLabelValues(reportBalance).Inc()
	uc.metrics.ReportDuration.WithLabelValues(reportBalance).Observe(time.Since(start).Seconds())
	uc.metrics.ReportRows.WithLabelValues(reportBalance).Observe(float64(len(rows)))

	uc.logger.InfoCtx(ctx, "balance report computed",
		"accounts", len(items),
		"rows", len(rows),
		"duration", time.Since(start),
	)

	return rows, nil
}

// accountRow computes one account's balances. The stored base snapshot
// carries the account's opening balance in its value; the quantity dimension
// is unused for accounts.
func (uc *BalanceReportUseCase) accountRow(ctx context.Context, item *domain.Item, window domain.Window) (domain.BalanceReportRow, error) {
	base, err := uc.snapshots.GetBase(ctx, item.Code, domain.CategoryAccount)
	if err != nil {
		return domain.BalanceReportRow{}, fmt.Errorf("base balance for account %s: %w", item.Code, err)
	}

	opening := base.Value
	if window.From != nil {
		// Opening covers everything strictly before the window start; at
		// day granularity that is the day before.
		beforeStart := window.From.AddDate(0, 0, -1)
		sum, err := uc.txns.SumAmounts(ctx, item.Code, nil, &beforeStart)
		if err != nil {
			return domain.BalanceReportRow{}, fmt.Errorf("opening sum for account %s: %w", item.Code, err)
		}
		opening = opening.Add(sum)
	}

	closingSum, err := uc.txns.SumAmounts(ctx, item.Code, nil, window.To)
	if err != nil {
		return domain.BalanceReportRow{}, fmt.Errorf("closing sum for account %s: %w", item.Code, err)
	}
	closing := base.Value.Add(closingSum)

	period, err := uc.txns.SumAmounts(ctx, item.Code, window.From, window.To)
	if err != nil {
		return domain.BalanceReportRow{}, fmt.Errorf("period sum for account %s: %w", item.Code, err)
	}

	return domain.BalanceReportRow{
		Code:           item.Code,
		Name:           item.Name,
		OpeningBalance: opening.Round(2),
		PeriodAmount:   period.Round(2),
		ClosingBalance: closing.Round(2),
	}, nil
}

func (uc *BalanceReportUseCase) fromCache(ctx context.Context, key string) ([]domain.BalanceReportRow, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		uc.metrics.CacheMisses.WithLabelValues(reportBalance).Inc()
		return nil, false
	}

	var rows []domain.BalanceReportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		uc.metrics.CacheMisses.WithLabelValues(reportBalance).Inc()
		return nil, false
	}

	uc.metrics.CacheHits.WithLabelValues(reportBalance).Inc()
	uc.logger.DebugCtx(ctx, "balance report served from cache", "key", key)

	return rows, true
}

func (uc *BalanceReportUseCase) storeCache(ctx context.Context, key string, rows []domain.BalanceReportRow) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.WarnCtx(ctx, "failed to cache balance report", "key", key, "error", err)
	}
}

func balanceCacheKey(window domain.Window) string {
	return fmt.Sprintf("report:%s:%s:%s",
		reportBalance,
		boundKey(window.From),
		boundKey(window.To),
	)
}
