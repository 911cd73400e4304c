package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one entry of a reconstructed item ledger: the balance state
// immediately before and after a single transaction. Row zero is synthesized
// to represent the opening balance itself and carries no source voucher.
type LedgerRow struct {
	Sequence     int
	Date         time.Time
	Voucher      string
	OpeningQty   decimal.Decimal
	OpeningValue decimal.Decimal
	QuantityIn   decimal.Decimal
	QuantityOut  decimal.Decimal
	ClosingQty   decimal.Decimal
	ClosingValue decimal.Decimal
	Description  string
}

// ReplayResult carries the aggregates produced by a replay and, when
// requested, the fully itemized ledger.
type ReplayResult struct {
	// Opening is the effective opening snapshot for the requested window:
	// the base snapshot advanced across every transaction strictly before
	// the window start.
	Opening Snapshot
	// PeriodQty and PeriodValue accumulate the in-window movements.
	PeriodQty   decimal.Decimal
	PeriodValue decimal.Decimal
	// Closing is the snapshot after the last in-window transaction.
	Closing Snapshot
	// Rows is nil unless WithRows was requested.
	Rows []LedgerRow
}

// ReplayOptions control ledger-row emission during a replay.
type ReplayOptions struct {
	// WithRows requests one LedgerRow per in-window transaction plus the
	// synthetic opening row.
	WithRows bool
	// ReferenceDate dates the opening row when the window has no start and
	// the item has no in-window transactions. It is injected by the caller
	// so the engine never reads the wall clock.
	ReferenceDate time.Time
}

// Replay reconstructs an item's balance history from its base snapshot and
// ordered transaction stream under weighted-average costing.
//
// Pass one advances the base snapshot across every transaction strictly
// before the window start, yielding the effective opening snapshot. Pass two
// replays the in-window transactions, accumulating period totals and
// optionally emitting one ledger row per transaction. Both passes share
// Snapshot.Apply as the single costing step.
//
// Transactions must arrive sorted ascending by (date, record type); the
// store guarantees this ordering and pass one relies on it to stop at the
// first transaction dated at or after the window start. Window bounds are
// enforced here regardless of any filtering the source applied.
func Replay(base Snapshot, txns []Transaction, window Window, opts ReplayOptions) ReplayResult {
	opening := base
	rest := txns
	if window.From != nil {
		i := 0
		for i < len(txns) && txns[i].Day().Before(*window.From) {
			opening, _ = opening.Apply(txns[i])
			i++
		}
		rest = txns[i:]
	}

	var inWindow []Transaction
	for _, txn := range rest {
		if !window.Contains(txn.Day()) {
			continue
		}
		inWindow = append(inWindow, txn)
	}

	res := ReplayResult{
		Opening:     opening,
		PeriodQty:   decimal.Zero,
		PeriodValue: decimal.Zero,
		Closing:     opening,
	}

	if opts.WithRows {
		if row, ok := openingRow(opening, window, inWindow, opts.ReferenceDate); ok {
			res.Rows = append(res.Rows, row)
		}
	}

	running := opening
	for i, txn := range inWindow {
		before := running

		next, move := running.Apply(txn)
		running = next
		res.PeriodQty = res.PeriodQty.Add(move.Quantity)
		res.PeriodValue = res.PeriodValue.Add(move.Value)

		if !opts.WithRows {
			continue
		}

		seq := i + 1
		qtyIn, qtyOut := decimal.Zero, decimal.Zero
		if txn.Quantity.IsNegative() {
			qtyOut = txn.Quantity.Abs()
		} else {
			qtyIn = txn.Quantity
		}

		res.Rows = append(res.Rows, LedgerRow{
			Sequence:     seq,
			Date:         txn.Day(),
			Voucher:      voucherLabel(txn, seq),
			OpeningQty:   before.Quantity,
			OpeningValue: before.Value,
			QuantityIn:   qtyIn,
			QuantityOut:  qtyOut,
			ClosingQty:   running.Quantity,
			ClosingValue: running.Value,
			Description:  fmt.Sprintf("Voucher Type: %s, Record Type: %d", txn.VoucherType, txn.RecordType),
		})
	}

	res.Closing = running

	return res
}

// openingRow synthesizes ledger row zero. It is emitted only when the
// opening snapshot carries a positive quantity or value.
func openingRow(opening Snapshot, window Window, inWindow []Transaction, reference time.Time) (LedgerRow, bool) {
	if !opening.Quantity.IsPositive() && !opening.Value.IsPositive() {
		return LedgerRow{}, false
	}

	date := Day(reference)
	description := "Opening Balance"
	switch {
	case window.From != nil:
		date = *window.From
		description = fmt.Sprintf("Opening Balance as of %s", window.From.Format("2006-01-02"))
	case len(inWindow) > 0:
		date = inWindow[0].Day()
	}

	return LedgerRow{
		Sequence:     0,
		Date:         date,
		Voucher:      "Opening Balance",
		OpeningQty:   decimal.Zero,
		OpeningValue: decimal.Zero,
		QuantityIn:   opening.Quantity,
		QuantityOut:  decimal.Zero,
		ClosingQty:   opening.Quantity,
		ClosingValue: opening.Value,
		Description:  description,
	}, true
}

// voucherLabel falls back to a synthetic label when the source voucher
// number is absent or zero.
func voucherLabel(txn Transaction, seq int) string {
	if txn.VoucherNumber == "" || txn.VoucherNumber == "0" {
		return fmt.Sprintf("TXN-%d", seq)
	}
	return txn.VoucherNumber
}
