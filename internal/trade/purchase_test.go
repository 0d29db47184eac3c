package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/event"
)

func TestPurchase_Success(t *testing.T) {
	// ARRANGE - balance 500.00, shop stocks 5 at 150.00, champion buys 3
	mockRepo := &MockRepository{}
	mockPublisher := &MockPublisher{}
	service := newTestService(mockRepo, mockPublisher)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityRare, 5, "150.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare).Return(nil, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityRare, -3).
		Return(fx.slot(fx.shopInv, t, domain.RarityRare, 2, "150.00"), nil)
	mockTx.On("AdjustBalance", ctx, fx.championID, moneyEq(t, "-450.00")).Return(money(t, "50.00"), nil)
	mockTx.On("CreateSlot", ctx, mock.MatchedBy(func(s domain.InventorySlot) bool {
		return s.InventoryID == fx.championInv.ID &&
			s.ItemID == fx.itemID &&
			s.Rarity == domain.RarityRare &&
			s.Quantity == 3 &&
			s.UnitPrice.Equal(money(t, "150.00"))
	})).Return(nil)
	mockTx.On("ListSlots", ctx, fx.championInv.ID).
		Return([]domain.InventorySlot{*fx.slot(fx.championInv, t, domain.RarityRare, 3, "150.00")}, nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockPublisher.On("Publish", ctx, mock.Anything).Return(nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 3)

	// ASSERT - the returned view is the champion's inventory after commit
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, fx.championInv.ID, view.Inventory.ID)
	require.Len(t, view.Slots, 1)
	assert.Equal(t, 3, view.Slots[0].Quantity)
	mockRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
	// Shop slot stays at its reduced quantity; purchase never prunes
	mockTx.AssertNotCalled(t, "RemoveSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	// ARRANGE - cost 600.00 exceeds balance 500.00; nothing may change
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityRare, 5, "150.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare).Return(nil, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 4)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	mockTx.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
	mockTx.AssertCalled(t, "Rollback", ctx)
}

func TestPurchase_ItemNotInShop(t *testing.T) {
	// ARRANGE
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
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 1)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrItemNotInShop)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPurchase_InsufficientStock(t *testing.T) {
	// ARRANGE - shop has 2, champion wants 3
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityCommon, 2, "10.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 3)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPurchase_InvalidQuantity(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")

	cases := []struct {
		name     string
		quantity int
	}{
		{"zero", 0},
		{"negative", -1},
		{"above maximum", domain.MaxTradeQuantity + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// ACT
			view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, tc.quantity)

			// ASSERT - rejected before any repository call
			require.Error(t, err)
			assert.Nil(t, view)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPurchase_NotOwner(t *testing.T) {
	// ARRANGE - caller does not own the champion
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")

	stranger := uuid.New()
	mockRepo.On("GetShop", ctx, fx.shopID).Return(fx.shop, nil)
	mockRepo.On("GetChampion", ctx, fx.championID).Return(fx.champion, nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, stranger, fx.championID, fx.itemID, 1)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPurchase_ExistingSlotKeepsPriceBasis(t *testing.T) {
	// ARRANGE - champion already owns the item at an older price; the
	// purchase increments quantity without touching the recorded price
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityRare, 5, "150.00")
	championSlot := fx.slot(fx.championInv, t, domain.RarityRare, 2, "120.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare).Return(championSlot, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityRare, -1).
		Return(fx.slot(fx.shopInv, t, domain.RarityRare, 4, "150.00"), nil)
	mockTx.On("AdjustBalance", ctx, fx.championID, moneyEq(t, "-150.00")).Return(money(t, "350.00"), nil)
	mockTx.On("AdjustQuantity", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare, 1).
		Return(fx.slot(fx.championInv, t, domain.RarityRare, 3, "120.00"), nil)
	mockTx.On("ListSlots", ctx, fx.championInv.ID).
		Return([]domain.InventorySlot{*fx.slot(fx.championInv, t, domain.RarityRare, 3, "120.00")}, nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 1)

	// ASSERT
	require.NoError(t, err)
	require.Len(t, view.Slots, 1)
	assert.True(t, view.Slots[0].UnitPrice.Equal(money(t, "120.00")), "price basis must survive the purchase")
	mockTx.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything)
	mockTx.AssertExpectations(t)
}

func TestPurchase_BalanceUpdateFailureRollsBack(t *testing.T) {
	// ARRANGE - the balance write fails mid-transaction; no commit happens
	mockRepo := &MockRepository{}
	mockPublisher := &MockPublisher{}
	service := newTestService(mockRepo, mockPublisher)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityRare, 5, "150.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare).Return(nil, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityRare, -3).
		Return(fx.slot(fx.shopInv, t, domain.RarityRare, 2, "150.00"), nil)
	mockTx.On("AdjustBalance", ctx, fx.championID, mock.Anything).
		Return(domain.ZeroMoney(), domain.ErrInsufficientFunds)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 3)

	// ASSERT
	require.Error(t, err)
	assert.Nil(t, view)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
	mockTx.AssertCalled(t, "Rollback", ctx)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPurchase_PublishesTradePurchasedEvent(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	mockPublisher := &MockPublisher{}
	service := newTestService(mockRepo, mockPublisher)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityEpic, 5, "150.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityEpic).Return(nil, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityEpic, -2).
		Return(fx.slot(fx.shopInv, t, domain.RarityEpic, 3, "150.00"), nil)
	mockTx.On("AdjustBalance", ctx, fx.championID, mock.Anything).Return(money(t, "200.00"), nil)
	mockTx.On("CreateSlot", ctx, mock.Anything).Return(nil)
	mockTx.On("ListSlots", ctx, fx.championInv.ID).
		Return([]domain.InventorySlot{*fx.slot(fx.championInv, t, domain.RarityEpic, 2, "150.00")}, nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	var published event.Event
	mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e event.Event) bool {
		published = e
		return e.Type == event.TradePurchased
	})).Return(nil)

	// ACT
	_, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 2)

	// ASSERT
	require.NoError(t, err)
	mockPublisher.AssertExpectations(t)
	assert.Equal(t, event.SchemaVersion, published.Version)

	payload, ok := published.Payload.(domain.TradePurchasedPayload)
	require.True(t, ok, "expected TradePurchasedPayload, got %T", published.Payload)
	assert.Equal(t, fx.shopID, payload.ShopID)
	assert.Equal(t, fx.championID, payload.ChampionID)
	assert.Equal(t, fx.itemID, payload.ItemID)
	assert.Equal(t, domain.RarityEpic, payload.Rarity)
	assert.Equal(t, 2, payload.Quantity)
	assert.Equal(t, "300.00", payload.Amount)
}

func TestPurchase_OtherRarityDoesNotShadowOwnedSlot(t *testing.T) {
	// ARRANGE - champion owns the item at COMMON and RARE; buying RARE must
	// increment the RARE slot, not trip over the COMMON one
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityRare, 5, "150.00")
	championCommon := fx.slot(fx.championInv, t, domain.RarityCommon, 4, "10.00")
	championRare := fx.slot(fx.championInv, t, domain.RarityRare, 2, "120.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare).
		Return(championRare, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityRare, -1).
		Return(fx.slot(fx.shopInv, t, domain.RarityRare, 4, "150.00"), nil)
	mockTx.On("AdjustBalance", ctx, fx.championID, moneyEq(t, "-150.00")).Return(money(t, "350.00"), nil)
	mockTx.On("AdjustQuantity", ctx, fx.championInv.ID, fx.itemID, domain.RarityRare, 1).
		Return(fx.slot(fx.championInv, t, domain.RarityRare, 3, "120.00"), nil)
	mockTx.On("ListSlots", ctx, fx.championInv.ID).
		Return([]domain.InventorySlot{*championCommon, *fx.slot(fx.championInv, t, domain.RarityRare, 3, "120.00")}, nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 1)

	// ASSERT - the RARE slot grew; no duplicate insert was attempted
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Len(t, view.Slots, 2)
	mockTx.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything)
	mockTx.AssertCalled(t, "Commit", ctx)
	mockTx.AssertExpectations(t)
}

func TestPurchase_PublishFailureDoesNotFailTrade(t *testing.T) {
	// ARRANGE - the trade committed; a publish error must stay internal
	mockRepo := &MockRepository{}
	mockPublisher := &MockPublisher{}
	service := newTestService(mockRepo, mockPublisher)
	ctx := context.Background()
	fx := newTradeFixture(t, "500.00")
	fx.expectEntities(mockRepo, ctx)

	shopSlot := fx.slot(fx.shopInv, t, domain.RarityCommon, 5, "10.00")

	mockTx := &MockTx{}
	mockTx.On("GetSlotForUpdate", ctx, fx.shopInv.ID, fx.itemID).Return(shopSlot, nil)
	mockTx.On("GetSlotByRarityForUpdate", ctx, fx.championInv.ID, fx.itemID, domain.RarityCommon).Return(nil, nil)
	mockTx.On("GetChampionForUpdate", ctx, fx.championID).Return(fx.champion, nil)
	mockTx.On("AdjustQuantity", ctx, fx.shopInv.ID, fx.itemID, domain.RarityCommon, -1).
		Return(fx.slot(fx.shopInv, t, domain.RarityCommon, 4, "10.00"), nil)
	mockTx.On("AdjustBalance", ctx, fx.championID, mock.Anything).Return(money(t, "490.00"), nil)
	mockTx.On("CreateSlot", ctx, mock.Anything).Return(nil)
	mockTx.On("ListSlots", ctx, fx.championInv.ID).
		Return([]domain.InventorySlot{*fx.slot(fx.championInv, t, domain.RarityCommon, 1, "10.00")}, nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockPublisher.On("Publish", ctx, mock.Anything).Return(assert.AnError)

	// ACT
	view, err := service.Purchase(ctx, fx.shopID, fx.userID, fx.championID, fx.itemID, 1)

	// ASSERT
	require.NoError(t, err)
	require.NotNil(t, view)
	mockPublisher.AssertExpectations(t)
}
