package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDo(t *testing.T) {
	errTransient := errors.New("transient")
	policy := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	t.Run("should stop at the first success", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), policy, "test", func() error {
			calls++
			if calls < 2 {
				return errTransient
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("should give up after max attempts", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), policy, "test", func() error {
			calls++
			return errTransient
		})

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("should not retry permanent errors", func(t *testing.T) {
		calls := 0
		errFatal := errors.New("fatal")

		err := Do(context.Background(), policy, "test", func() error {
			calls++
			return Permanent(errFatal)
		})

		assert.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		err := Do(ctx, Policy{MaxAttempts: 100, Delay: time.Millisecond}, "test", func() error {
			calls++
			if calls == 2 {
				cancel()
			}
			return errTransient
		})

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("should grow the delay with a multiplier", func(t *testing.T) {
		b := Policy{MaxAttempts: 4, Delay: 10 * time.Millisecond, Multiplier: 2}.backOff(context.Background())

		assert.Equal(t, 10*time.Millisecond, b.NextBackOff())
		assert.Equal(t, 20*time.Millisecond, b.NextBackOff())
		assert.Equal(t, 40*time.Millisecond, b.NextBackOff())
		assert.Equal(t, time.Duration(-1), b.NextBackOff())
	})

	t.Run("should make a single attempt without retries", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), Policy{MaxAttempts: 1}, "test", func() error {
			calls++
			return errTransient
		})

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})
}
