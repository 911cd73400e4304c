package integration

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/iho/stockval/internal/adapter/http"
	"github.com/iho/stockval/internal/adapter/http/dto"
	"github.com/iho/stockval/internal/adapter/http/handler"
	postgresrepo "github.com/iho/stockval/internal/adapter/repository/postgres"
	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/idgen"
	"github.com/iho/stockval/internal/infrastructure/logging"
	"github.com/iho/stockval/internal/infrastructure/metrics"
	"github.com/iho/stockval/internal/usecase"
	"github.com/iho/stockval/tests/testutil"
	"github.com/rs/zerolog"
)

func newRouter(t *testing.T, db *testutil.TestDB) http.Handler {
	t.Helper()

	mets := metrics.NewWith(prometheus.NewRegistry())
	appLogger := logging.New(slog.LevelError, "text")
	idGen := idgen.NewULIDGenerator()

	itemRepo := postgresrepo.NewItemRepository(db.Pool, mets)
	snapshotRepo := postgresrepo.NewSnapshotRepository(db.Pool, mets)
	txnRepo := postgresrepo.NewTransactionRepository(db.Pool, mets)
	paramRepo := postgresrepo.NewItemParameterRepository(db.Pool, mets)

	stockUC := usecase.NewStockReportUseCase(itemRepo, snapshotRepo, txnRepo, nil, idGen, mets, appLogger, 0)
	balanceUC := usecase.NewBalanceReportUseCase(itemRepo, snapshotRepo, txnRepo, nil, idGen, mets, appLogger, 0)
	ledgerUC := usecase.NewItemLedgerUseCase(itemRepo, snapshotRepo, txnRepo, idGen, mets, appLogger)
	catalogUC := usecase.NewCatalogUseCase(itemRepo, paramRepo)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		ReportHandler: handler.NewReportHandler(stockUC, balanceUC),
		LedgerHandler: handler.NewLedgerHandler(ledgerUC),
		ItemHandler:   handler.NewItemHandler(catalogUC),
		HealthHandler: handler.NewHealthHandler(db.Pool, nil),
		Logger:        zerolog.Nop(),
	})
}

func TestStockReportEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	defer db.Cleanup()
	db.TruncateAll(ctx)

	db.SeedItem(ctx, "W01", "Wheat", domain.CategoryStock)
	db.SeedOpeningBalance(ctx, "W01", domain.CategoryStock, decimal.NewFromInt(10), decimal.NewFromInt(100))
	db.SeedTransaction(ctx, "W01", testutil.Date(t, "2024-04-02"), decimal.NewFromInt(5), decimal.NewFromInt(60), "Purchase", 1, "PUR-1")
	db.SeedTransaction(ctx, "W01", testutil.Date(t, "2024-04-03"), decimal.NewFromInt(-4), decimal.Zero, "Sale", 2, "SAL-1")

	router := newRouter(t, db)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/stock?from=2024-04-01&to=2024-04-30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.StockReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Rows))
	}

	row := resp.Rows[0]
	if !row.OpeningQty.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected opening qty 10, got %s", row.OpeningQty)
	}
	if !row.ClosingQty.Equal(decimal.NewFromInt(11)) {
		t.Fatalf("expected closing qty 11, got %s", row.ClosingQty)
	}
	if !row.ClosingValue.Equal(decimal.RequireFromString("117.33")) {
		t.Fatalf("expected closing value 117.33, got %s", row.ClosingValue)
	}
}

func TestBalanceReportEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	defer db.Cleanup()
	db.TruncateAll(ctx)

	db.SeedItem(ctx, "CASH", "Cash", domain.CategoryAccount)
	db.SeedOpeningBalance(ctx, "CASH", domain.CategoryAccount, decimal.Zero, decimal.NewFromInt(500))
	db.SeedTransaction(ctx, "CASH", testutil.Date(t, "2024-03-15"), decimal.Zero, decimal.NewFromInt(100), "Receipt", 1, "RCP-1")
	db.SeedTransaction(ctx, "CASH", testutil.Date(t, "2024-04-10"), decimal.Zero, decimal.NewFromInt(-50), "Payment", 2, "PAY-1")

	router := newRouter(t, db)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/balance?from=2024-04-01&to=2024-04-30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.BalanceReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Rows))
	}

	row := resp.Rows[0]
	if !row.OpeningBalance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected opening 600, got %s", row.OpeningBalance)
	}
	if !row.PeriodAmount.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("expected period -50, got %s", row.PeriodAmount)
	}
	if !row.ClosingBalance.Equal(decimal.NewFromInt(550)) {
		t.Fatalf("expected closing 550, got %s", row.ClosingBalance)
	}
}
