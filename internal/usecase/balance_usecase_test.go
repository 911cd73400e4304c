package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/usecase"
	"github.com/iho/stockval/internal/usecase/mocks"
)

func newBalanceUC(items *mocks.MockItemRepository, snaps *mocks.MockSnapshotRepository, txns *mocks.MockTransactionRepository, cache usecase.Cache) *usecase.BalanceReportUseCase {
	return usecase.NewBalanceReportUseCase(
		items, snaps, txns, cache,
		mocks.NewMockIDGenerator(), testMetrics(), testLogger(), time.Minute,
	)
}

func TestBalanceReportUseCase_ComputeBalanceReport(t *testing.T) {
	items := mocks.NewMockItemRepository()
	items.Add(&domain.Item{Code: "CASH", Name: "Cash", Category: domain.CategoryAccount})

	snaps := mocks.NewMockSnapshotRepository()
	snaps.Set("CASH", domain.Snapshot{Value: dec(t, "100")})

	txns := mocks.NewMockTransactionRepository()
	txns.Add("CASH",
		domain.Transaction{Date: day(t, "2024-01-10"), Amount: dec(t, "40")},
		domain.Transaction{Date: day(t, "2024-02-05"), Amount: dec(t, "-25")},
		domain.Transaction{Date: day(t, "2024-03-01"), Amount: dec(t, "10")},
	)

	uc := newBalanceUC(items, snaps, txns, nil)

	from := day(t, "2024-02-01")
	to := day(t, "2024-02-28")
	rows, err := uc.ComputeBalanceReport(context.Background(), domain.NewWindow(&from, &to))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	// Opening: base 100 + January 40. Period: February only. Closing: base
	// plus everything through the end bound.
	assert.True(t, row.OpeningBalance.Equal(dec(t, "140")), "opening %s", row.OpeningBalance)
	assert.True(t, row.PeriodAmount.Equal(dec(t, "-25")), "period %s", row.PeriodAmount)
	assert.True(t, row.ClosingBalance.Equal(dec(t, "115")), "closing %s", row.ClosingBalance)
}

func TestBalanceReportUseCase_OpenWindow(t *testing.T) {
	items := mocks.NewMockItemRepository()
	items.Add(&domain.Item{Code: "CASH", Name: "Cash", Category: domain.CategoryAccount})

	snaps := mocks.NewMockSnapshotRepository()
	snaps.Set("CASH", domain.Snapshot{Value: dec(t, "100")})

	txns := mocks.NewMockTransactionRepository()
	txns.Add("CASH",
		domain.Transaction{Date: day(t, "2024-01-10"), Amount: dec(t, "40")},
		domain.Transaction{Date: day(t, "2024-02-05"), Amount: dec(t, "-25")},
	)

	uc := newBalanceUC(items, snaps, txns, nil)

	rows, err := uc.ComputeBalanceReport(context.Background(), domain.Window{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	// No start bound: opening is the stored base alone.
	assert.True(t, row.OpeningBalance.Equal(dec(t, "100")), "opening %s", row.OpeningBalance)
	assert.True(t, row.PeriodAmount.Equal(dec(t, "15")), "period %s", row.PeriodAmount)
	assert.True(t, row.ClosingBalance.Equal(dec(t, "115")), "closing %s", row.ClosingBalance)
}

func TestBalanceReportUseCase_NetZeroAccountRetained(t *testing.T) {
	items := mocks.NewMockItemRepository()
	items.Add(&domain.Item{Code: "NET0", Name: "NetZero", Category: domain.CategoryAccount})

	snaps := mocks.NewMockSnapshotRepository()
	snaps.Set("NET0", domain.Snapshot{Value: dec(t, "50")})

	txns := mocks.NewMockTransactionRepository()
	txns.Add("NET0",
		domain.Transaction{Date: day(t, "2024-01-15"), Amount: dec(t, "-50")},
	)

	uc := newBalanceUC(items, snaps, txns, nil)

	rows, err := uc.ComputeBalanceReport(context.Background(), domain.Window{})
	require.NoError(t, err)

	// Opening +50, period -50, closing 0: sum of absolute values is 100,
	// so the account stays in the report.
	require.Len(t, rows, 1)
	assert.True(t, rows[0].ClosingBalance.IsZero())
}

func TestBalanceReportUseCase_AllZeroAccountSuppressed(t *testing.T) {
	items := mocks.NewMockItemRepository()
	items.Add(&domain.Item{Code: "IDLE", Name: "Idle", Category: domain.CategoryAccount})
	items.Add(&domain.Item{Code: "LIVE", Name: "Live", Category: domain.CategoryAccount})

	snaps := mocks.NewMockSnapshotRepository()
	txns := mocks.NewMockTransactionRepository()
	txns.Add("LIVE",
		domain.Transaction{Date: day(t, "2024-01-15"), Amount: dec(t, "5")},
	)

	uc := newBalanceUC(items, snaps, txns, nil)

	rows, err := uc.ComputeBalanceReport(context.Background(), domain.Window{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LIVE", rows[0].Code)
}

func TestBalanceReportUseCase_InvalidWindow(t *testing.T) {
	uc := newBalanceUC(mocks.NewMockItemRepository(), mocks.NewMockSnapshotRepository(), mocks.NewMockTransactionRepository(), nil)

	from := day(t, "2024-02-01")
	to := day(t, "2024-01-01")
	_, err := uc.ComputeBalanceReport(context.Background(), domain.NewWindow(&from, &to))
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}
