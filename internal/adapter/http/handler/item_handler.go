package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/stockval/internal/adapter/http/dto"
	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/usecase"
)

// ItemHandler serves the item catalog and per-voucher parameter search.
type ItemHandler struct {
	catalog *usecase.CatalogUseCase
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(catalog *usecase.CatalogUseCase) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// List handles GET /api/v1/items?category=. The category defaults to stock.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	category := domain.CategoryStock
	if val := r.URL.Query().Get("category"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category", val)
			return
		}
		category = domain.ItemCategory(n)
	}

	items, err := h.catalog.ListItems(r.Context(), category)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list items", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ItemsFromDomain(items))
}

// Get handles GET /api/v1/items/{code}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing item code", "")
		return
	}

	item, err := h.catalog.GetStockItem(r.Context(), code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get item", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ItemFromDomain(item))
}

// SearchParameters handles GET /api/v1/item-parameters?item=&bcn=&search=.
func (h *ItemHandler) SearchParameters(w http.ResponseWriter, r *http.Request) {
	filter := domain.ItemParameterFilter{
		ItemCode: r.URL.Query().Get("item"),
		Barcode:  r.URL.Query().Get("bcn"),
		Search:   r.URL.Query().Get("search"),
	}

	params, err := h.catalog.SearchItemParameters(r.Context(), filter)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to search item parameters", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ItemParametersFromDomain(params))
}
