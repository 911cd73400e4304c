package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/stockval/internal/adapter/http/dto"
	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/tests/testutil"
)

func TestItemLedgerEndToEnd(t *testing.T) {
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
	db.SeedTransaction(ctx, "W01", testutil.Date(t, "2024-04-03"), decimal.NewFromInt(-4), decimal.Zero, "Sale", 2, "")

	router := newRouter(t, db)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/items/W01/ledger?from=2024-04-01&to=2024-04-30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.LedgerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Rows) != 3 {
		t.Fatalf("expected opening row plus 2 transactions, got %d rows", len(resp.Rows))
	}

	opening := resp.Rows[0]
	if opening.Voucher != "Opening Balance" {
		t.Fatalf("expected opening row first, got voucher %q", opening.Voucher)
	}
	if opening.Date != "2024-04-01" {
		t.Fatalf("expected opening row dated at window start, got %s", opening.Date)
	}

	sale := resp.Rows[2]
	if sale.Voucher != "TXN-2" {
		t.Fatalf("expected voucher fallback TXN-2, got %q", sale.Voucher)
	}
	if !sale.ClosingQty.Equal(decimal.NewFromInt(11)) {
		t.Fatalf("expected closing qty 11, got %s", sale.ClosingQty)
	}

	t.Run("unknown item yields empty ledger", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/items/NOPE/ledger", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp dto.LedgerResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(resp.Rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(resp.Rows))
		}
	})
}
