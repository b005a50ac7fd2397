package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTemporary = errors.New("connection reset")

func newTestRetrier(config Config) (*Retrier, *[]time.Duration) {
	r := New(config)
	var waits []time.Duration
	r.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return r, &waits
}

func TestRetrier_SucceedsAfterRetries(t *testing.T) {
	config := DefaultConfig()
	config.Jitter = false
	r, waits := newTestRetrier(config)

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errTemporary
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *waits)
}

func TestRetrier_GivesUp(t *testing.T) {
	r, _ := newTestRetrier(DefaultConfig())

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		return errTemporary
	})

	assert.ErrorIs(t, err, errTemporary)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, attempts)
}

func TestRetrier_NonRetryableStopsImmediately(t *testing.T) {
	config := DefaultConfig()
	config.Retryable = func(err error) bool { return !errors.Is(err, errTemporary) }
	r, waits := newTestRetrier(config)

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		return errTemporary
	})

	assert.Equal(t, errTemporary, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, *waits)
}

func TestRetrier_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(DefaultConfig())
	r.sleep = func(context.Context, time.Duration) error {
		cancel()
		return context.Canceled
	}

	attempts := 0
	err := r.Execute(ctx, func(context.Context) error {
		attempts++
		return errTemporary
	})

	assert.Equal(t, errTemporary, err)
	assert.Equal(t, 1, attempts)
}

func TestRetrier_DelayIsCapped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2})

	assert.Equal(t, time.Second, r.delay(0))
	assert.Equal(t, 2*time.Second, r.delay(1))
	assert.Equal(t, 3*time.Second, r.delay(2))
}
