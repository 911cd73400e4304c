package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one posted movement of an item or account. Quantity is
// signed: positive for inflows, negative for outflows. Amount carries the
// monetary value of the movement; for account items it alone carries the
// balance. Transactions are owned by the store and read-only to the engine.
type Transaction struct {
	Date          time.Time
	Quantity      decimal.Decimal
	Amount        decimal.Decimal
	VoucherType   string
	RecordType    int
	VoucherNumber string
}

// Day returns the transaction date truncated to day granularity.
func (t Transaction) Day() time.Time { return Day(t.Date) }

// Day truncates t to midnight UTC. All date comparisons in the engine work
// at day granularity even when the store carries full timestamps.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
