package domain

import "github.com/shopspring/decimal"

// Snapshot is a point-in-time balance of an item: a quantity and the
// monetary value it is carried at.
type Snapshot struct {
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// ZeroSnapshot is the snapshot of an item with no stored opening balance.
func ZeroSnapshot() Snapshot {
	return Snapshot{Quantity: decimal.Zero, Value: decimal.Zero}
}

// AverageRate returns Value/Quantity, or zero when the quantity is zero.
// The zero guard is an explicit branch: a drained item must never produce
// NaN or Inf downstream.
func (s Snapshot) AverageRate() decimal.Decimal {
	if s.Quantity.IsZero() {
		return decimal.Zero
	}
	return s.Value.Div(s.Quantity)
}

// Movement is the period-relevant delta produced by applying one
// transaction: the signed quantity and the signed value it contributed.
// For inflows Value is the posted amount; for outflows it is the negated
// value consumed at the pre-outflow average rate.
type Movement struct {
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// Apply replays one transaction against the snapshot under weighted-average
// costing and returns the advanced snapshot together with the movement it
// contributed to the period totals. Apply is the single costing step shared
// by every replay path.
//
// Inflows advance quantity and value together. Outflows consume value at the
// average rate established before the outflow; the rate is recomputed only
// after the movement is applied, never speculatively. A zero-quantity
// transaction is a no-op.
func (s Snapshot) Apply(txn Transaction) (Snapshot, Movement) {
	switch {
	case txn.Quantity.IsPositive():
		next := Snapshot{
			Quantity: s.Quantity.Add(txn.Quantity),
			Value:    s.Value.Add(txn.Amount),
		}
		return next, Movement{Quantity: txn.Quantity, Value: txn.Amount}

	case txn.Quantity.IsNegative():
		out := txn.Quantity.Abs()
		consumed := out.Mul(s.AverageRate())
		next := Snapshot{
			Quantity: s.Quantity.Sub(out),
			Value:    s.Value.Sub(consumed),
		}
		return next, Movement{Quantity: txn.Quantity, Value: consumed.Neg()}

	default:
		return s, Movement{Quantity: decimal.Zero, Value: decimal.Zero}
	}
}
