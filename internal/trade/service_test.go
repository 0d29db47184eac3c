package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calenfir/bazaar/internal/domain"
)

// Test fixtures

type tradeFixture struct {
	userID     uuid.UUID
	shopID     uuid.UUID
	championID uuid.UUID
	itemID     uuid.UUID

	shop        *domain.Shop
	champion    *domain.Champion
	shopInv     *domain.Inventory
	championInv *domain.Inventory
}

func newTradeFixture(t *testing.T, balance string) *tradeFixture {
	t.Helper()

	fx := &tradeFixture{
		userID:     uuid.New(),
		shopID:     uuid.New(),
		championID: uuid.New(),
		itemID:     uuid.New(),
	}
	fx.shop = &domain.Shop{ID: fx.shopID, Name: "Verdant Bazaar", Type: domain.ItemTypeWeapons}
	fx.champion = &domain.Champion{
		ID:     fx.championID,
		UserID: fx.userID,
		Name:   "Tester",
		Money:  money(t, balance),
	}
	fx.shopInv = &domain.Inventory{
		ID:        uuid.New(),
		OwnerID:   fx.shopID,
		OwnerKind: domain.OwnerKindShop,
		Capacity:  domain.DefaultInventoryCapacity,
	}
	fx.championInv = &domain.Inventory{
		ID:        uuid.New(),
		OwnerID:   fx.championID,
		OwnerKind: domain.OwnerKindChampion,
		Capacity:  domain.DefaultInventoryCapacity,
	}
	return fx
}

func money(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

// moneyEq matches a Money argument by value, independent of internal
// decimal representation.
func moneyEq(t *testing.T, s string) interface{} {
	want := money(t, s)
	return mock.MatchedBy(func(m domain.Money) bool { return m.Equal(want) })
}

func (fx *tradeFixture) slot(inv *domain.Inventory, t *testing.T, rarity domain.Rarity, quantity int, unitPrice string) *domain.InventorySlot {
	t.Helper()
	return &domain.InventorySlot{
		InventoryID: inv.ID,
		ItemID:      fx.itemID,
		Rarity:      rarity,
		Quantity:    quantity,
		UnitPrice:   money(t, unitPrice),
	}
}

// item returns a catalog item whose type matches the fixture shop.
func (fx *tradeFixture) item() *domain.Item {
	return &domain.Item{
		ID:   fx.itemID,
		Name: "Sunforged Blade",
		Type: domain.ItemTypeWeapons,
	}
}

// expectEntities registers the read-only lookups every trade performs.
func (fx *tradeFixture) expectEntities(mockRepo *MockRepository, ctx context.Context) {
	mockRepo.On("GetShop", ctx, fx.shopID).Return(fx.shop, nil)
	mockRepo.On("GetChampion", ctx, fx.championID).Return(fx.champion, nil)
	mockRepo.On("GetInventory", ctx, fx.shopID).Return(fx.shopInv, nil)
	mockRepo.On("GetInventory", ctx, fx.championID).Return(fx.championInv, nil)
}

func newTestService(mockRepo *MockRepository, publisher Publisher) Service {
	return NewService(mockRepo, publisher, DefaultPrunePolicy())
}

// GetInventory tests

func TestGetInventory_Success(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "0.00")

	slots := []domain.InventorySlot{*fx.slot(fx.championInv, t, domain.RarityCommon, 2, "10.00")}
	mockRepo.On("GetInventory", ctx, fx.championID).Return(fx.championInv, nil)
	mockRepo.On("ListSlots", ctx, fx.championInv.ID).Return(slots, nil)

	// ACT
	view, err := service.GetInventory(ctx, fx.championID)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, fx.championInv.ID, view.Inventory.ID)
	assert.Len(t, view.Slots, 1)
	assert.Equal(t, 2, view.Slots[0].Quantity)
	mockRepo.AssertExpectations(t)
}

func TestGetInventory_NotFound(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	ownerID := uuid.New()

	mockRepo.On("GetInventory", ctx, ownerID).Return(nil, domain.ErrInventoryNotFound)

	// ACT
	view, err := service.GetInventory(ctx, ownerID)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
	mockRepo.AssertExpectations(t)
}

// Retry behavior

func TestPurchase_RetryOnConflictThenSuccess(t *testing.T) {
	// ARRANGE - first attempt hits a lock conflict, second commits
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	conflictErr := errors.New("could not serialize access: " + domain.ErrMsgConflict)
	wrappedConflict := errors.Join(conflictErr, domain.ErrConflict)

	failingTx := &MockTx{}
	failingTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(nil, wrappedConflict)
	failingTx.On("Rollback", ctx).Return(nil)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityRare, 5, "150.00")
	okTx := &MockTx{}
	okTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	okTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare).Return(nil, nil)
	okTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	okTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityRare, -3).
		Return(fx.slot(fx.shopInv, t, domain.RarityRare, 2, "150.00"), nil)
	okTx.On("AdjustBalance", ctx, fx.championID, moneyEq(t, "-450.00")).Return(money(t, "50.00"), nil)
	okTx.On("CreateSlot", ctx, mock.Anything).Return(nil)
	okTx.On("ListSlots", ctx, fx.championInv.ID).
		Return([]domain.InventorySlot{*fx.slot(fx.championInv, t, domain.RarityRare, 3, "150.00")}, nil)
	okTx.On("Commit", ctx).Return(nil)
	okTx.On("Rollback", ctx).Return(nil)

	mockRepo.On("BeginTx", ctx).Return(failingTx, nil).Once()
	mockRepo.On("BeginTx", ctx).Return(okTx, nil).Once()

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 3)

	// ASSERT
	require.NoError(t, err)
	require.NotNil(t, view)
	mockRepo.AssertExpectations(t)
	failingTx.AssertExpectations(t)
	okTx.AssertExpectations(t)
}

func TestPurchase_ConflictExhaustsRetries(t *testing.T) {
	// ARRANGE - every attempt conflicts; the engine gives up after the bound
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	wrappedConflict := errors.Join(errors.New("deadlock detected"), domain.ErrConflict)

	failingTx := &MockTx{}
	failingTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(nil, wrappedConflict)
	failingTx.On("Rollback", ctx).Return(nil)

	mockRepo.On("BeginTx", ctx).Return(failingTx, nil).Times(DefaultMaxAttempts)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 3)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrConflict)
	mockRepo.AssertExpectations(t)
	failingTx.AssertNumberOfCalls(t, "GetSlotForUpdate", DefaultMaxAttempts)
}

func TestPurchase_ValidationErrorDoesNotRetry(t *testing.T) {
	// ARRANGE - a business failure must return immediately, not re-run
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(nil, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	// ACT
	_, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 3)

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotInShop)
	mockRepo.AssertNumberOfCalls(t, "BeginTx", 1)
}
