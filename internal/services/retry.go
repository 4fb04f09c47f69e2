package services

import (
	"context"
	"time"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 2 * time.Second
)

// RetryPolicy bounds how long a rate-limited call keeps retrying.
// Delay doubles after each attempt with no jitter; the default budget
// waits 2s+4s+8s before surfacing the error.
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration

	// Sleep is swapped out in tests to observe wait durations. Nil
	// means context-aware time.After.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the policy used for provider calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
	}
}

func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// WithRetry invokes op, retrying with exponential backoff while the
// error matches IsRateLimited and budget remains. Waits suspend only
// the calling goroutine. Any non-rate-limit error, and the final error
// once retries are exhausted, is returned unchanged.
func WithRetry[T any](ctx context.Context, policy RetryPolicy, op func(ctx context.Context) (T, error)) (T, error) {
	delay := policy.InitialDelay

	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !IsRateLimited(err) || attempt >= policy.MaxRetries {
			return result, err
		}
		if sleepErr := policy.sleep(ctx, delay); sleepErr != nil {
			return result, err
		}
		delay *= 2
	}
}
