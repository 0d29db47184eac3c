package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Trade event types
const (
	TradePurchased Type = Type(domain.EventTypeTradePurchased)
	TradeSold      Type = Type(domain.EventTypeTradeSold)
)

// NewTradePurchasedEvent creates a purchase event with a type-safe payload
func NewTradePurchasedEvent(shopID, championID, itemID uuid.UUID, rarity domain.Rarity, quantity int, amount domain.Money) Event {
	return Event{
		Version: SchemaVersion,
		Type:    TradePurchased,
		Payload: domain.TradePurchasedPayload{
			ShopID:     shopID,
			ChampionID: championID,
			ItemID:     itemID,
			Rarity:     rarity,
			Quantity:   quantity,
			Amount:     amount.String(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewTradeSoldEvent creates a sale event with a type-safe payload
func NewTradeSoldEvent(shopID, championID, itemID uuid.UUID, rarity domain.Rarity, quantity int, amount domain.Money) Event {
	return Event{
		Version: SchemaVersion,
		Type:    TradeSold,
		Payload: domain.TradeSoldPayload{
			ShopID:     shopID,
			ChampionID: championID,
			ItemID:     itemID,
			Rarity:     rarity,
			Quantity:   quantity,
			Amount:     amount.String(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously in subscription order; every handler runs even when an
// earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
