package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/stockval/internal/domain"
)

// StockReportRowResponse represents one closing-stock report line.
type StockReportRowResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	OpeningQty   decimal.Decimal `json:"opening_qty"`
	OpeningValue decimal.Decimal `json:"opening_value"`
	PeriodQty    decimal.Decimal `json:"period_qty"`
	PeriodValue  decimal.Decimal `json:"period_value"`
	ClosingQty   decimal.Decimal `json:"closing_qty"`
	ClosingValue decimal.Decimal `json:"closing_value"`
}

// StockReportResponse wraps the closing-stock report.
type StockReportResponse struct {
	Rows []StockReportRowResponse `json:"rows"`
}

// StockReportFromDomain converts stock report rows to a response.
func StockReportFromDomain(rows []domain.StockReportRow) StockReportResponse {
	out := make([]StockReportRowResponse, len(rows))
	for i, r := range rows {
		out[i] = StockReportRowResponse{
			Code:         r.Code,
			Name:         r.Name,
			OpeningQty:   r.OpeningQty,
			OpeningValue: r.OpeningValue,
			PeriodQty:    r.PeriodQty,
			PeriodValue:  r.PeriodValue,
			ClosingQty:   r.ClosingQty,
			ClosingValue: r.ClosingValue,
		}
	}
	return StockReportResponse{Rows: out}
}

// BalanceReportRowResponse represents one closing-balance report line.
type BalanceReportRowResponse struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	PeriodAmount   decimal.Decimal `json:"period_amount"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// BalanceReportResponse wraps the closing-balance report.
type BalanceReportResponse struct {
	Rows []BalanceReportRowResponse `json:"rows"`
}

// BalanceReportFromDomain converts balance report rows to a response.
func BalanceReportFromDomain(rows []domain.BalanceReportRow) BalanceReportResponse {
	out := make([]BalanceReportRowResponse, len(rows))
	for i, r := range rows {
		out[i] = BalanceReportRowResponse{
			Code:           r.Code,
			Name:           r.Name,
			OpeningBalance: r.OpeningBalance,
			PeriodAmount:   r.PeriodAmount,
			ClosingBalance: r.ClosingBalance,
		}
	}
	return BalanceReportResponse{Rows: out}
}

// LedgerRowResponse represents one running-ledger line.
type LedgerRowResponse struct {
	Sequence     int             `json:"sequence"`
	Date         string          `json:"date"`
	Voucher      string          `json:"voucher"`
	OpeningQty   decimal.Decimal `json:"opening_qty"`
	OpeningValue decimal.Decimal `json:"opening_value"`
	QuantityIn   decimal.Decimal `json:"quantity_in"`
	QuantityOut  decimal.Decimal `json:"quantity_out"`
	ClosingQty   decimal.Decimal `json:"closing_qty"`
	ClosingValue decimal.Decimal `json:"closing_value"`
	Description  string          `json:"description"`
}

// LedgerResponse wraps a single item's running ledger.
type LedgerResponse struct {
	Code string              `json:"code"`
	Rows []LedgerRowResponse `json:"rows"`
}

// LedgerFromDomain converts ledger rows to a response.
func LedgerFromDomain(code string, rows []domain.LedgerRow) LedgerResponse {
	out := make([]LedgerRowResponse, len(rows))
	for i, r := range rows {
		out[i] = LedgerRowResponse{
			Sequence:     r.Sequence,
			Date:         r.Date.Format("2006-01-02"),
			Voucher:      r.Voucher,
			OpeningQty:   r.OpeningQty,
			OpeningValue: r.OpeningValue,
			QuantityIn:   r.QuantityIn,
			QuantityOut:  r.QuantityOut,
			ClosingQty:   r.ClosingQty,
			ClosingValue: r.ClosingValue,
			Description:  r.Description,
		}
	}
	return LedgerResponse{Code: code, Rows: out}
}

// ItemResponse represents a catalog item in API responses.
type ItemResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category int    `json:"category"`
}

// ItemFromDomain converts a domain item to a response.
func ItemFromDomain(i *domain.Item) *ItemResponse {
	return &ItemResponse{
		Code:     i.Code,
		Name:     i.Name,
		Category: int(i.Category),
	}
}

// ItemsFromDomain converts domain items to responses.
func ItemsFromDomain(items []*domain.Item) []*ItemResponse {
	result := make([]*ItemResponse, len(items))
	for i, item := range items {
		result[i] = ItemFromDomain(item)
	}
	return result
}

// ItemParameterResponse represents one per-voucher parameter row.
type ItemParameterResponse struct {
	ItemCode      string          `json:"item_code"`
	ItemName      string          `json:"item_name"`
	VoucherType   string          `json:"voucher_type"`
	VoucherNumber string          `json:"voucher_number"`
	Date          string          `json:"date"`
	Attributes    []string        `json:"attributes"`
	MRP           decimal.Decimal `json:"mrp"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Barcode       string          `json:"barcode"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// ItemParameterFromDomain converts a parameter row to a response.
func ItemParameterFromDomain(p *domain.ItemParameter) *ItemParameterResponse {
	date := ""
	if !p.Date.IsZero() {
		date = p.Date.Format("2006-01-02")
	}
	return &ItemParameterResponse{
		ItemCode:      p.ItemCode,
		ItemName:      p.ItemName,
		VoucherType:   p.VoucherType,
		VoucherNumber: p.VoucherNumber,
		Date:          date,
		Attributes:    p.Attributes[:],
		MRP:           p.MRP,
		SalePrice:     p.SalePrice,
		Barcode:       p.Barcode,
		Quantity:      p.Quantity,
	}
}

// ItemParametersFromDomain converts parameter rows to responses.
func ItemParametersFromDomain(params []*domain.ItemParameter) []*ItemParameterResponse {
	result := make([]*ItemParameterResponse, len(params))
	for i, p := range params {
		result[i] = ItemParameterFromDomain(p)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
