package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/event"
	"github.com/calenfir/bazaar/internal/repository"
)

// MockRepository implements repository.Trade for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockRepository) GetChampion(ctx context.Context, championID uuid.UUID) (*domain.Champion, error) {
	args := m.Called(ctx, championID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Champion), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.Inventory, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockRepository) ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventorySlot), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TradeTx), args.Error(1)
}

// Ensure MockRepository implements repository.Trade
var _ repository.Trade = (*MockRepository)(nil)

// MockTx implements repository.TradeTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetSlotForUpdate(ctx context.Context, inventoryID, itemID uuid.UUID) (*domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockTx) GetSlotByRarityForUpdate(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (*domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID, itemID, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockTx) GetChampionForUpdate(ctx context.Context, championID uuid.UUID) (*domain.Champion, error) {
	args := m.Called(ctx, championID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Champion), args.Error(1)
}

func (m *MockTx) AdjustQuantity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID, itemID, rarity, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockTx) CreateSlot(ctx context.Context, slot domain.InventorySlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockTx) RemoveSlot(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error) {
	args := m.Called(ctx, inventoryID, itemID, rarity)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) AdjustBalance(ctx context.Context, championID uuid.UUID, delta domain.Money) (domain.Money, error) {
	args := m.Called(ctx, championID, delta)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockTx) ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventorySlot), args.Error(1)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockTx implements repository.TradeTx
var _ repository.TradeTx = (*MockTx)(nil)

// MockPublisher records published events for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

var _ Publisher = (*MockPublisher)(nil)
