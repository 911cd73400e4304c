package handler

import (
	"net/http"

	"github.com/iho/stockval/internal/adapter/http/dto"
	"github.com/iho/stockval/internal/usecase"
)

// ReportHandler serves the closing-stock and closing-balance reports.
type ReportHandler struct {
	stock   *usecase.StockReportUseCase
	balance *usecase.BalanceReportUseCase
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(stock *usecase.StockReportUseCase, balance *usecase.BalanceReportUseCase) *ReportHandler {
	return &ReportHandler{
		stock:   stock,
		balance: balance,
	}
}

// Stock handles GET /api/v1/reports/stock?from=&to=&hide_zero=.
func (h *ReportHandler) Stock(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid window", err.Error())
		return
	}

	rows, err := h.stock.ComputeStockReport(r.Context(), usecase.StockReportInput{
		Window:          window,
		HideZeroClosing: parseBoolQuery(r, "hide_zero", false),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute stock report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockReportFromDomain(rows))
}

// Balance handles GET /api/v1/reports/balance?from=&to=.
func (h *ReportHandler) Balance(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid window", err.Error())
		return
	}

	rows, err := h.balance.ComputeBalanceReport(r.Context(), window)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceReportFromDomain(rows))
}
