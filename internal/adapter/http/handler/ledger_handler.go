package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/stockval/internal/adapter/http/dto"
	"github.com/iho/stockval/internal/usecase"
)

// LedgerHandler serves the itemized running ledger for a single stock item.
type LedgerHandler struct {
	ledger *usecase.ItemLedgerUseCase
	now    func() time.Time
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger *usecase.ItemLedgerUseCase) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		now:    time.Now,
	}
}

// ItemLedger handles GET /api/v1/items/{code}/ledger?from=&to=.
func (h *LedgerHandler) ItemLedger(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing item code", "")
		return
	}

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid window", err.Error())
		return
	}

	rows, err := h.ledger.ComputeItemLedger(r.Context(), code, window, h.now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(code, rows))
}
