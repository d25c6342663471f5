package api

import (
	"context"
	"errors"
	"time"
)

// RetryPolicy configures retry behavior for failed provider calls.
//
// Every failure is retried until the attempt budget is exhausted; the
// delay between attempts is fixed at BaseDelay, except for rate-limit
// failures which back off exponentially (BaseDelay * 2^(attempt-1)).
// No jitter is applied.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the delay between attempts.
	BaseDelay time.Duration
}

// DefaultRetryPolicy is used for all provider calls unless overridden.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// AccountCreationRetryPolicy carries a larger budget because account
// creation is the most rate-limit-sensitive provider call.
func AccountCreationRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   3 * time.Second,
	}
}

// Backoff returns the delay to wait after the given failed attempt
// (1-based). Rate-limit failures double the delay per attempt.
func (p RetryPolicy) Backoff(attempt int, err error) time.Duration {
	if errors.Is(err, ErrRateLimited) {
		return p.BaseDelay << (attempt - 1)
	}
	return p.BaseDelay
}

// wait blocks for d or until the context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retry runs fn up to p.MaxAttempts times. When all attempts fail, the
// returned error is a *RetryError carrying the attempt count and the
// last underlying failure.
func retry(ctx context.Context, p RetryPolicy, op string, fn func() error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == p.MaxAttempts {
			break
		}
		if err := wait(ctx, p.Backoff(attempt, lastErr)); err != nil {
			return err
		}
	}

	return &RetryError{Operation: op, Attempts: p.MaxAttempts, Err: lastErr}
}
