package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/event"
	"github.com/calenfir/bazaar/internal/logger"
	"github.com/calenfir/bazaar/internal/repository"
)

// Service defines the interface for trade operations. Purchase and Sell
// are the only operations that mutate more than one resource; each runs
// as a single atomic unit against the backing store.
type Service interface {
	Purchase(ctx context.Context, shopID, callerUserID, championID, itemID uuid.UUID, quantity int) (*domain.InventoryView, error)
	Sell(ctx context.Context, shopID, callerUserID, championID, itemID uuid.UUID, quantity int) (*domain.InventoryView, error)
	GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.InventoryView, error)
}

// PrunePolicy controls whether a slot hitting zero quantity is deleted.
// The observed shipping behavior is asymmetric: sell prunes the champion's
// empty slot, purchase leaves the shop's slot at quantity 0 as catalog
// reference data.
type PrunePolicy struct {
	OnSell     bool
	OnPurchase bool
}

// DefaultPrunePolicy preserves the purchase/sell asymmetry.
func DefaultPrunePolicy() PrunePolicy {
	return PrunePolicy{OnSell: true, OnPurchase: false}
}

// Publisher is the subset of the event bus the engine needs.
type Publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

type service struct {
	repo        repository.Trade
	publisher   Publisher
	policy      PrunePolicy
	maxAttempts int
	now         func() time.Time
}

// NewService creates a new trade service
func NewService(repo repository.Trade, publisher Publisher, policy PrunePolicy) Service {
	return &service{
		repo:        repo,
		publisher:   publisher,
		policy:      policy,
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
	}
}

// GetInventory returns a snapshot of an owner's inventory.
func (s *service) GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.InventoryView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetInventoryCalled, "ownerID", ownerID)

	inv, err := s.repo.GetInventory(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	slots, err := s.repo.ListSlots(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFailed, err)
	}
	return &domain.InventoryView{Inventory: *inv, Slots: slots}, nil
}

// runTrade executes one attempt function under the bounded-retry policy.
// Validation failures return immediately; only lock conflicts re-run the
// whole validate-then-apply sequence from fresh reads.
func (s *service) runTrade(ctx context.Context, attempt func(ctx context.Context) (*domain.InventoryView, error)) (*domain.InventoryView, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for i := 1; i <= s.maxAttempts; i++ {
		view, err := attempt(ctx)
		if err == nil {
			return view, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		lastErr = err
		if i < s.maxAttempts {
			log.Warn(LogMsgTradeRetry, "attempt", i, "error", err)
		}
	}
	return nil, lastErr
}

// inventoryView snapshots an inventory's slots inside the transaction so
// the returned view matches exactly what was committed.
func inventoryView(ctx context.Context, tx repository.TradeTx, inv *domain.Inventory) (*domain.InventoryView, error) {
	slots, err := tx.ListSlots(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFailed, err)
	}
	return &domain.InventoryView{Inventory: *inv, Slots: slots}, nil
}

func (s *service) publish(ctx context.Context, eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    event.Type(eventType),
		Payload: payload,
	})
}
