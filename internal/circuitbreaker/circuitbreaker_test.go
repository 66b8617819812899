//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

// newTestBreaker returns a breaker driven by a manual clock.
func newTestBreaker(failures, successes int) (*CircuitBreaker, *time.Time) {
	cb := New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          time.Minute,
		Name:             "test-orders",
	})
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return clock }
	return cb, &clock
}

func fail() error    { return errStore }
func succeed() error { return nil }

func TestCircuitBreaker_Transitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		run       func(t *testing.T, cb *CircuitBreaker, clock *time.Time)
		wantState State
	}{
		{
			name: "success keeps breaker closed",
			run: func(t *testing.T, cb *CircuitBreaker, _ *time.Time) {
				assert.NoError(t, cb.Execute(ctx, succeed))
			},
			wantState: StateClosed,
		},
		{
			name: "opens at failure threshold",
			run: func(t *testing.T, cb *CircuitBreaker, _ *time.Time) {
				assert.ErrorIs(t, cb.Execute(ctx, fail), errStore)
				assert.Equal(t, StateClosed, cb.State())
				assert.ErrorIs(t, cb.Execute(ctx, fail), errStore)
			},
			wantState: StateOpen,
		},
		{
			name: "open breaker short-circuits",
			run: func(t *testing.T, cb *CircuitBreaker, _ *time.Time) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)
				called := false
				err := cb.Execute(ctx, func() error { called = true; return nil })
				assert.ErrorIs(t, err, ErrCircuitOpen)
				assert.False(t, called)
			},
			wantState: StateOpen,
		},
		{
			name: "success resets failure count",
			run: func(t *testing.T, cb *CircuitBreaker, _ *time.Time) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, succeed)
				_ = cb.Execute(ctx, fail)
			},
			wantState: StateClosed,
		},
		{
			name: "recovers after timeout and enough trial requests",
			run: func(t *testing.T, cb *CircuitBreaker, clock *time.Time) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)
				*clock = clock.Add(time.Minute)

				assert.NoError(t, cb.Execute(ctx, succeed))
				assert.Equal(t, StateHalfOpen, cb.State())
				assert.NoError(t, cb.Execute(ctx, succeed))
			},
			wantState: StateClosed,
		},
		{
			name: "failed trial request reopens",
			run: func(t *testing.T, cb *CircuitBreaker, clock *time.Time) {
				_ = cb.Execute(ctx, fail)
				_ = cb.Execute(ctx, fail)
				*clock = clock.Add(2 * time.Minute)

				assert.ErrorIs(t, cb.Execute(ctx, fail), errStore)
				*clock = clock.Add(30 * time.Second)
				assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)
			},
			wantState: StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(2, 2)
			tt.run(t, cb, clock)
			assert.Equal(t, tt.wantState, cb.State())
		})
	}
}

func TestCircuitBreaker_CancelledContextIsNotAFailure(t *testing.T) {
	cb, _ := newTestBreaker(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	ctx2, cancel2 := context.WithCancel(context.Background())
	err = cb.Execute(ctx2, func() error {
		cancel2()
		return ctx2.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 0, cb.GetStats().FailureCount)
}

func TestCall(t *testing.T) {
	cb, _ := newTestBreaker(1, 1)

	got, err := Call(context.Background(), cb, func() (map[int64]string, error) {
		return map[int64]string{7: "order"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "order", got[7])

	got, err = Call(context.Background(), cb, func() (map[int64]string, error) {
		return nil, errStore
	})
	assert.ErrorIs(t, err, errStore)
	assert.Nil(t, got)
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb, clock := newTestBreaker(3, 1)

	stats := cb.GetStats()
	assert.Equal(t, "test-orders", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Zero(t, stats.FailureCount)

	_ = cb.Execute(context.Background(), fail)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, *clock, stats.LastFailure)
	assert.True(t, stats.IsHealthy)
}

func TestNew_FillsDefaults(t *testing.T) {
	cb := New(Config{})
	def := DefaultConfig()

	assert.Equal(t, def, cb.config)
	assert.Equal(t, "mongodb", cb.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}
