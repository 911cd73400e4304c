package usecase

import (
	"context"

	"github.com/iho/stockval/internal/domain"
)

// CatalogUseCase serves the item catalog and per-voucher item parameters.
type CatalogUseCase struct {
	items  ItemRepository
	params ItemParameterRepository
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(items ItemRepository, params ItemParameterRepository) *CatalogUseCase {
	return &CatalogUseCase{
		items:  items,
		params: params,
	}
}

// ListItems lists all items of a category, sorted by name.
func (uc *CatalogUseCase) ListItems(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error) {
	switch category {
	case domain.CategoryStock, domain.CategoryAccount:
		return uc.items.ListByCategory(ctx, category)
	default:
		return nil, domain.ErrInvalidCategory
	}
}

// GetStockItem retrieves a single stock item by code.
func (uc *CatalogUseCase) GetStockItem(ctx context.Context, code string) (*domain.Item, error) {
	return uc.items.GetByCode(ctx, code, domain.CategoryStock)
}

// SearchItemParameters searches per-voucher item parameter rows by item
// code, barcode, or free text across name, barcode and attribute columns.
func (uc *CatalogUseCase) SearchItemParameters(ctx context.Context, filter domain.ItemParameterFilter) ([]*domain.ItemParameter, error) {
	return uc.params.Search(ctx, filter)
}
