package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/calenfir/bazaar/internal/config"
	"github.com/calenfir/bazaar/internal/event"
	"github.com/calenfir/bazaar/internal/metrics"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher. It applies defaults for any retry setting the config leaves
// unset, creates the dead-letter directory, and registers the metrics
// collector on the bus so committed trades feed the trade counters.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		DeadLetterPath: deadLetterPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(eventBus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	event.RegisterLogging(eventBus)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
