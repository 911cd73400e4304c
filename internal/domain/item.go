package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCategory identifies the master-record category in the upstream
// ledger store. The numeric codes follow the store's schema.
type ItemCategory int

const (
	// CategoryAccount marks account/ledger-type items whose balance is a
	// pure running sum of amounts.
	CategoryAccount ItemCategory = 2
	// CategoryStock marks quantity-bearing stock items valued under
	// weighted-average costing.
	CategoryStock ItemCategory = 6
)

// Item is one master record of the ledger store: a stock item or an account.
type Item struct {
	Code     string
	Name     string
	Category ItemCategory
}

// ItemParameter is one per-voucher attribute row for a stock item: batch,
// barcode and pricing details carried alongside the quantity the voucher
// posted.
type ItemParameter struct {
	ItemCode      string
	ItemName      string
	VoucherType   string
	VoucherNumber string
	Date          time.Time
	Attributes    [5]string
	MRP           decimal.Decimal
	SalePrice     decimal.Decimal
	Barcode       string
	Quantity      decimal.Decimal
}

// ItemParameterFilter narrows an item-parameter search. Zero-value fields
// are ignored; Search matches against the item name, barcode and all
// attribute columns.
type ItemParameterFilter struct {
	ItemCode string
	Barcode  string
	Search   string
}
