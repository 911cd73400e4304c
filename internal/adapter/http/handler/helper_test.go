package handler

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/logging"
	"github.com/iho/stockval/internal/infrastructure/metrics"
	"github.com/iho/stockval/internal/usecase"
	"github.com/iho/stockval/internal/usecase/mocks"
)

type fixture struct {
	items     *mocks.MockItemRepository
	snapshots *mocks.MockSnapshotRepository
	txns      *mocks.MockTransactionRepository
	params    *mocks.MockItemParameterRepository

	report  *ReportHandler
	ledger  *LedgerHandler
	item    *ItemHandler
}

func newFixture() *fixture {
	items := mocks.NewMockItemRepository()
	snapshots := mocks.NewMockSnapshotRepository()
	txns := mocks.NewMockTransactionRepository()
	params := mocks.NewMockItemParameterRepository()

	mets := metrics.NewWith(prometheus.NewRegistry())
	logger := logging.New(slog.LevelError, "text")
	idGen := mocks.NewMockIDGenerator()

	stock := usecase.NewStockReportUseCase(items, snapshots, txns, nil, idGen, mets, logger, 0)
	balance := usecase.NewBalanceReportUseCase(items, snapshots, txns, nil, idGen, mets, logger, 0)
	ledgerUC := usecase.NewItemLedgerUseCase(items, snapshots, txns, idGen, mets, logger)
	catalog := usecase.NewCatalogUseCase(items, params)

	return &fixture{
		items:     items,
		snapshots: snapshots,
		txns:      txns,
		params:    params,
		report:    NewReportHandler(stock, balance),
		ledger:    NewLedgerHandler(ledgerUC),
		item:      NewItemHandler(catalog),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func txn(date, qty, amount string) domain.Transaction {
	return domain.Transaction{
		Date:       day(date),
		Quantity:   dec(qty),
		Amount:     dec(amount),
		RecordType: 1,
	}
}
