package metrics

import (
	"context"
	"strconv"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/event"
	"github.com/calenfir/bazaar/internal/logger"
)

// EventMetricsCollector subscribes to trade events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all trade events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	bus.Subscribe(event.TradePurchased, e.HandleEvent)
	bus.Subscribe(event.TradeSold, e.HandleEvent)
	return nil
}

// HandleEvent processes trade events and updates the amount counters.
// Trade counts and latency are recorded at the call site; only the
// committed amounts come from the event stream.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TradePurchased:
		payload, err := event.DecodePayload[domain.TradePurchasedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		addTradeAmount(ctx, TradeKindPurchase, payload.Amount)

	case event.TradeSold:
		payload, err := event.DecodePayload[domain.TradeSoldPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		addTradeAmount(ctx, TradeKindSell, payload.Amount)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func addTradeAmount(ctx context.Context, kind, amount string) {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgAmountParseFailed, "amount", amount, "error", err)
		return
	}
	TradeAmountTotal.WithLabelValues(kind).Add(v)
}
