package domain

import "github.com/shopspring/decimal"

// StockReportRow is one line of the closing-stock report. All figures are
// rounded to two decimal places by the assembler; replay arithmetic itself
// stays unrounded.
type StockReportRow struct {
	Code         string
	Name         string
	OpeningQty   decimal.Decimal
	OpeningValue decimal.Decimal
	PeriodQty    decimal.Decimal
	PeriodValue  decimal.Decimal
	ClosingQty   decimal.Decimal
	ClosingValue decimal.Decimal
}

// BalanceReportRow is one line of the closing-balance report.
type BalanceReportRow struct {
	Code           string
	Name           string
	OpeningBalance decimal.Decimal
	PeriodAmount   decimal.Decimal
	ClosingBalance decimal.Decimal
}
