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

// StockReportUseCase assembles the closing-stock report: one weighted-average
// replay per stock item in the catalog.
type StockReportUseCase struct {
	items     ItemRepository
	snapshots SnapshotRepository
	txns      TransactionRepository
	cache     Cache // optional; nil disables report caching
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    *logging.Logger
	cacheTTL  time.Duration
}

// NewStockReportUseCase creates a new StockReportUseCase.
func NewStockReportUseCase(
	items ItemRepository,
	snapshots SnapshotRepository,
	txns TransactionRepository,
	cache Cache,
	idGen IDGenerator,
	mets *metrics.Metrics,
	logger *logging.Logger,
	cacheTTL time.Duration,
) *StockReportUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &StockReportUseCase{
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

// StockReportInput represents input for computing the closing-stock report.
type StockReportInput struct {
	Window domain.Window
	// HideZeroClosing suppresses items whose closing quantity rounds to
	// exactly 0.00, even when they had period activity.
	HideZeroClosing bool
}

// ComputeStockReport computes opening, period and closing quantity/value for
// every stock item in the catalog. Rows preserve catalog order (sorted by
// item name); all figures are rounded to two decimal places here, at the
// output boundary only.
func (uc *StockReportUseCase) ComputeStockReport(ctx context.Context, input StockReportInput) ([]domain.StockReportRow, error) {
	if !input.Window.Valid() {
		return nil, domain.ErrInvalidWindow
	}

	ctx = context.WithValue(ctx, logging.RunIDKey, uc.idGen.Generate())
	start := time.Now()

	key := stockCacheKey(input)
	if cached, ok := uc.fromCache(ctx, key); ok {
		return cached, nil
	}

	items, err := uc.items.ListByCategory(ctx, domain.CategoryStock)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}

	replayed := 0
	rows := make([]domain.StockReportRow, 0, len(items))
	for _, item := range items {
		base, err := uc.snapshots.GetBase(ctx, item.Code, domain.CategoryStock)
		if err != nil {
			return nil, fmt.Errorf("base snapshot for item %s: %w", item.Code, err)
		}

		txns, err := uc.txns.ListByItem(ctx, item.Code, input.Window.To)
		if err != nil {
			return nil, fmt.Errorf("transactions for item %s: %w", item.Code, err)
		}

		res := domain.Replay(base, txns, input.Window, domain.ReplayOptions{})
		replayed += len(txns)

		closingQty := res.Closing.Quantity.Round(2)
		if input.HideZeroClosing && closingQty.IsZero() {
			continue
		}

		rows = append(rows, domain.StockReportRow{
			Code:         item.Code,
			Name:         item.Name,
			OpeningQty:   res.Opening.Quantity.Round(2),
			OpeningValue: res.Opening.Value.Round(2),
			PeriodQty:    res.PeriodQty.Round(2),
			PeriodValue:  res.PeriodValue.Round(2),
			ClosingQty:   closingQty,
			ClosingValue: res.Closing.Value.Round(2),
		})
	}

	uc.storeCache(ctx, key, rows)

	uc.metrics.ReportsComputed.WithLabelValues(reportStock).Inc()
	uc.metrics.ReportDuration.WithLabelValues(reportStock).Observe(time.Since(start).Seconds())
	uc.metrics.ReportRows.WithLabelValues(reportStock).Observe(float64(len(rows)))
	uc.metrics.ItemsReplayed.Add(float64(len(items)))
	uc.metrics.TransactionsReplayed.Add(float64(replayed))

	uc.logger.InfoCtx(ctx, "stock report computed",
		"items", len(items),
		"rows", len(rows),
		"transactions", replayed,
		"duration", time.Since(start),
	)

	return rows, nil
}

func (uc *StockReportUseCase) fromCache(ctx context.Context, key string) ([]domain.StockReportRow, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		uc.metrics.CacheMisses.WithLabelValues(reportStock).Inc()
		return nil, false
	}

	var rows []domain.StockReportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		uc.metrics.CacheMisses.WithLabelValues(reportStock).Inc()
		return nil, false
	}

	uc.metrics.CacheHits.WithLabelValues(reportStock).Inc()
	uc.logger.DebugCtx(ctx, "stock report served from cache", "key", key)

	return rows, true
}

// storeCache caches the computed report. Cache failures degrade to
// recomputation on the next request, never to a failed report.
func (uc *StockReportUseCase) storeCache(ctx context.Context, key string, rows []domain.StockReportRow) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.WarnCtx(ctx, "failed to cache stock report", "key", key, "error", err)
	}
}

func stockCacheKey(input StockReportInput) string {
	return fmt.Sprintf("report:%s:%s:%s:%t",
		reportStock,
		boundKey(input.Window.From),
		boundKey(input.Window.To),
		input.HideZeroClosing,
	)
}

func boundKey(t *time.Time) string {
	if t == nil {
		return "open"
	}
	return t.Format(boundKeyFormat)
}
