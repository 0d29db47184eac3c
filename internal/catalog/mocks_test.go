package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/repository"
)

// MockItemRepository implements repository.Item for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

var _ repository.Item = (*MockItemRepository)(nil)

// MockShopRepository implements repository.Shop for testing
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

var _ repository.Shop = (*MockShopRepository)(nil)

// MockInventoryRepository implements repository.Inventory for testing
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CreateInventory(ctx context.Context, ownerID uuid.UUID, kind domain.OwnerKind, capacity int) (*domain.Inventory, error) {
	args := m.Called(ctx, ownerID, kind, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.Inventory, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetSlot(ctx context.Context, inventoryID, itemID uuid.UUID) (*domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockInventoryRepository) GetSlotByRarity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (*domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID, itemID, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockInventoryRepository) ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventorySlot), args.Error(1)
}

func (m *MockInventoryRepository) CreateSlot(ctx context.Context, slot domain.InventorySlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockInventoryRepository) AdjustQuantity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID, itemID, rarity, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockInventoryRepository) RemoveSlot(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error) {
	args := m.Called(ctx, inventoryID, itemID, rarity)
	return args.Bool(0), args.Error(1)
}

var _ repository.Inventory = (*MockInventoryRepository)(nil)
