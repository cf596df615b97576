package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrTimeout indicates a Generate call ran past the configured deadline,
// retries included. Unwraps to context.DeadlineExceeded.
type ErrTimeout struct {
	Limit time.Duration
	Err   error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("LLM call exceeded %s deadline", e.Limit)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider rejected the request with a 429.
// RetryAfter, when the provider supplied one, is honored by the retry
// decorator instead of its own backoff schedule.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the completion did not parse as JSON or
// did not conform to the requested schema. Content carries the raw
// output for event logging and debugging.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// returned an error the adapter could not classify more precisely.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the completion was cut off at the
// MaxTokens limit. Truncated structured output is never usable, so this
// is surfaced before schema validation and never retried.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
