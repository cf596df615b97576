package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// stalledProvider never answers; it waits for the context to end.
type stalledProvider struct{}

func (stalledProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledProvider) ModelID() string { return "stalled" }

func TestTimeout_CutsOffStalledCall(t *testing.T) {
	p := WithTimeout(stalledProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var te *ErrTimeout
	if !errors.As(err, &te) {
		t.Fatalf("expected ErrTimeout, got: %T (%v)", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("ErrTimeout should unwrap to context.DeadlineExceeded")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call not cut off promptly: %s", elapsed)
	}
}

func TestTimeout_FastCallPassesThrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"questions":[]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_CancellationIsNotTimeout(t *testing.T) {
	p := WithTimeout(stalledProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var te *ErrTimeout
	if errors.As(err, &te) {
		t.Fatal("caller cancellation should not be reported as a timeout")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestTimeout_DisabledForNonPositiveLimit(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero limit should leave the provider unwrapped")
	}
}
