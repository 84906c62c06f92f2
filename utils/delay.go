package utils

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// SlowMo pauses for d between browser actions so a headed run can be
// watched. A zero or negative d is a no-op.
func SlowMo(d time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if d <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
			return nil
		}
	})
}
