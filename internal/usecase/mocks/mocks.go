package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/stockval/internal/domain"
)

// MockItemRepository is a mock implementation of usecase.ItemRepository.
type MockItemRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Item

	ListByCategoryFunc func(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error)
	GetByCodeFunc      func(ctx context.Context, code string, category domain.ItemCategory) (*domain.Item, error)
}

func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items: make(map[string]*domain.Item),
	}
}

// Add seeds an item into the mock catalog.
func (m *MockItemRepository) Add(item *domain.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.Code] = item
}

func (m *MockItemRepository) ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Item
	for _, item := range m.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *MockItemRepository) GetByCode(ctx context.Context, code string, category domain.ItemCategory) (*domain.Item, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code, category)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[code]; ok && item.Category == category {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

// MockSnapshotRepository is a mock implementation of usecase.SnapshotRepository.
type MockSnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot

	GetBaseFunc func(ctx context.Context, code string, category domain.ItemCategory) (domain.Snapshot, error)
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[string]domain.Snapshot),
	}
}

// Set seeds a base snapshot for an item.
func (m *MockSnapshotRepository) Set(code string, snapshot domain.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[code] = snapshot
}

func (m *MockSnapshotRepository) GetBase(ctx context.Context, code string, category domain.ItemCategory) (domain.Snapshot, error) {
	if m.GetBaseFunc != nil {
		return m.GetBaseFunc(ctx, code, category)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if snap, ok := m.snapshots[code]; ok {
		return snap, nil
	}
	return domain.ZeroSnapshot(), nil
}

// MockTransactionRepository is a mock implementation of usecase.TransactionRepository.
type MockTransactionRepository struct {
	mu   sync.RWMutex
	txns map[string][]domain.Transaction

	ListByItemFunc func(ctx context.Context, code string, endDate *time.Time) ([]domain.Transaction, error)
	SumAmountsFunc func(ctx context.Context, code string, from, to *time.Time) (decimal.Decimal, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		txns: make(map[string][]domain.Transaction),
	}
}

// Add seeds transactions for an item; callers supply them pre-sorted.
func (m *MockTransactionRepository) Add(code string, txns ...domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txns[code] = append(m.txns[code], txns...)
}

func (m *MockTransactionRepository) ListByItem(ctx context.Context, code string, endDate *time.Time) ([]domain.Transaction, error) {
	if m.ListByItemFunc != nil {
		return m.ListByItemFunc(ctx, code, endDate)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Transaction
	for _, txn := range m.txns[code] {
		if endDate != nil && txn.Day().After(domain.Day(*endDate)) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

func (m *MockTransactionRepository) SumAmounts(ctx context.Context, code string, from, to *time.Time) (decimal.Decimal, error) {
	if m.SumAmountsFunc != nil {
		return m.SumAmountsFunc(ctx, code, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, txn := range m.txns[code] {
		day := txn.Day()
		if from != nil && day.Before(domain.Day(*from)) {
			continue
		}
		if to != nil && day.After(domain.Day(*to)) {
			continue
		}
		sum = sum.Add(txn.Amount)
	}
	return sum, nil
}

// MockItemParameterRepository is a mock implementation of usecase.ItemParameterRepository.
type MockItemParameterRepository struct {
	mu     sync.RWMutex
	params []*domain.ItemParameter

	SearchFunc func(ctx context.Context, filter domain.ItemParameterFilter) ([]*domain.ItemParameter, error)
}

func NewMockItemParameterRepository() *MockItemParameterRepository {
	return &MockItemParameterRepository{}
}

// Add seeds an item parameter row.
func (m *MockItemParameterRepository) Add(param *domain.ItemParameter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params = append(m.params, param)
}

func (m *MockItemParameterRepository) Search(ctx context.Context, filter domain.ItemParameterFilter) ([]*domain.ItemParameter, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.ItemParameter
	for _, p := range m.params {
		if filter.ItemCode != "" && p.ItemCode != filter.ItemCode {
			continue
		}
		if filter.Barcode != "" && p.Barcode != filter.Barcode {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// MockCache is a mock implementation of usecase.Cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-run-id"
}
