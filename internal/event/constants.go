package event

import "time"

// Event schema versioning
const (
	// SchemaVersion is the current event schema version
	SchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryInitialDelaySeconds is the initial retry delay in seconds (2s)
	RetryInitialDelaySeconds = 2

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventPublishFailed  = "Failed to publish event, initiating async retry"
	LogMsgEventRetrySucceeded = "Successfully published event after retry"
	LogMsgEventRetryFailed    = "Event retry failed"
	LogMsgDeadLetterOpenFail  = "Failed to open dead letter file"
	LogMsgDeadLetterWriteFail = "Failed to write to dead letter file"
	LogMsgEventDeadLettered   = "Event written to dead letter queue"
	LogMsgTradeEvent          = "Trade event"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Implements exponential backoff: 2s, 4s, 8s, 16s, 32s
// Formula: initialDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
