package event

import (
	"context"

	"github.com/calenfir/bazaar/internal/logger"
)

// RegisterLogging subscribes a structured-log handler for the trade event
// types, giving every committed trade an audit line independent of the
// metrics pipeline.
func RegisterLogging(bus Bus) {
	bus.Subscribe(TradePurchased, logEvent)
	bus.Subscribe(TradeSold, logEvent)
}

func logEvent(ctx context.Context, evt Event) error {
	logger.FromContext(ctx).Info(LogMsgTradeEvent,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
