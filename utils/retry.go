package utils

import (
	"context"
	"fmt"
	"time"
)

// Retry runs fn up to attempts times and stops at the first success.
// Between failures it waits base, 2*base, 4*base, ... so a slow page gets
// more time to settle on each try. The wait is cut short when ctx is done.
//
// Usage:
//
//	err := utils.Retry(ctx, 3, 2*time.Second, func(attempt int) error {
//	    return home.LogHighestAndLowestPrices(ctx)
//	})
func Retry(ctx context.Context, attempts int, base time.Duration, fn func(attempt int) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		wait := base << uint(attempt-1)
		Warn("Attempt %d/%d failed: %v, retrying in %v", attempt, attempts, lastErr, wait)

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(wait):
		}
	}

	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("all %d attempts failed, last error: %w", attempts, lastErr)
}
