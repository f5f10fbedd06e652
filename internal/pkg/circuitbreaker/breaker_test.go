package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(threshold uint32) (*CircuitBreaker, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := DefaultConfig("sms")
	cfg.FailureThreshold = threshold
	cb := New(cfg)
	cb.now = func() time.Time { return now }
	cb.expiry = now.Add(cfg.Interval)
	return cb, &now
}

func fail(context.Context) error    { return errors.New("provider down") }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.EqualError(t, cb.Execute(ctx, fail), "provider down")
	}

	assert.Equal(t, StateOpen, cb.State())
	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitBreakerOpen, err)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb, now := newTestBreaker(1)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	assert.Equal(t, StateOpen, cb.State())

	*now = now.Add(31 * time.Second)
	assert.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, now := newTestBreaker(1)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	*now = now.Add(31 * time.Second)
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateOpen, cb.State())
	assert.Equal(t, ErrCircuitBreakerOpen, cb.Execute(ctx, succeed))
}

func TestCircuitBreaker_IgnoredErrors(t *testing.T) {
	cfg := DefaultConfig("sms")
	cfg.FailureThreshold = 1
	sentinel := errors.New("invalid number")
	cfg.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, sentinel) }
	cb := New(cfg)

	for i := 0; i < 5; i++ {
		assert.Equal(t, sentinel, cb.Execute(context.Background(), func(context.Context) error { return sentinel }))
	}
	assert.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
