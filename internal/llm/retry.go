package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryDecision classifies a Generate failure for the retry loop.
type retryDecision int

const (
	retryNo   retryDecision = iota // permanent: give up immediately
	retryYes                       // transient: retry until attempts run out
	retryOnce                      // schema miss: one more attempt, then give up
)

// classifyRetry decides how to treat a Generate error.
func classifyRetry(err error) retryDecision {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNo
	}

	// Truncation means the token budget is wrong, not that the call
	// was unlucky.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNo
	}

	// A schema miss occasionally fixes itself on regeneration.
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}

	// Rate limits, outages, and anything unclassified (network errors
	// and the like) are treated as transient.
	return retryYes
}

// RetryProvider retries transient Generate failures with exponential
// backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with the retry loop.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	onceUsed := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyRetry(err) {
		case retryNo:
			return nil, err
		case retryOnce:
			if onceUsed {
				return nil, err
			}
			onceUsed = true
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before the next attempt. A rate limit with
// a RetryAfter hint overrides the exponential schedule.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = min(wait, float64(r.config.MaxWait))

	// +/-20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(max(wait, 0))
}
