package llm

import (
	"context"
	"errors"
	"time"
)

// TimeoutProvider bounds every Generate call with a deadline. A hung
// upstream connection fails fast as a generation error instead of
// stalling the question or diagnosis request that triggered it.
type TimeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a Provider so each Generate call is cut off after
// limit. A non-positive limit leaves the provider unwrapped.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, limit: limit}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, &ErrTimeout{Limit: t.limit, Err: context.DeadlineExceeded}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
