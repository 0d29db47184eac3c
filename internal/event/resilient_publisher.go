package event

import (
	"context"
	"time"

	"github.com/calenfir/bazaar/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter
// queuing. Trade events fire after the database commit, so a publish
// failure must never surface to the caller as a failed trade.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(config.DeadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: dlw,
	}, nil
}

// Publish attempts to publish an event. If it fails, it initiates a
// background retry loop and returns nil: the event has been accepted for
// processing even though the first attempt failed.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	// Detached from the request context: the original request may be
	// cancelled long before the retries finish.
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	var lastErr error
	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, i))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", i)
			return
		}

		log.Warn(LogMsgEventRetryFailed,
			"event_type", event.Type,
			"attempt", i,
			"error", lastErr)
	}

	if err := p.deadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFail, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Close releases the dead-letter file handle
func (p *ResilientPublisher) Close() error {
	return p.deadLetter.Close()
}
