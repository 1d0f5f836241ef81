// Package retry runs an operation until it succeeds or the policy gives up.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// Policy bounds a retry loop. Multiplier <= 1 keeps the delay constant.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Multiplier  float64
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff
	if p.Multiplier > 1 {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = p.Delay
		exp.Multiplier = p.Multiplier
		exp.RandomizationFactor = 0
		exp.MaxElapsedTime = 0
		exp.Reset()
		b = exp
	} else {
		b = backoff.NewConstantBackOff(p.Delay)
	}

	retries := 0
	if p.MaxAttempts > 1 {
		retries = p.MaxAttempts - 1
	}

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

// Do calls fn until it returns nil and returns the last error otherwise.
// A cancelled context stops the loop between attempts.
func Do(ctx context.Context, p Policy, operation string, fn func() error) error {
	notify := func(err error, wait time.Duration) {
		log.Debug().Err(err).Str("operation", operation).Dur("wait", wait).Msg("retrying")
	}

	return backoff.RetryNotify(fn, p.backOff(ctx), notify)
}
