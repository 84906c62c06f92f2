package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"vectra-e2e/utils"
)

// ErrURLTimeout is returned when the tab never reaches the expected URL.
var ErrURLTimeout = errors.New("timed out waiting for url")

// Locator reports where the tab currently is.
type Locator interface {
	CurrentURL(ctx context.Context) (string, error)
}

// SameURL compares two absolute URLs ignoring a trailing slash, the
// fragment and the case of the host. "https://www.vectra.pl" and
// "https://www.vectra.pl/" are the same page.
func SameURL(a, b string) bool {
	ua, errA := url.Parse(a)
	ub, errB := url.Parse(b)
	if errA != nil || errB != nil {
		return strings.TrimRight(a, "/") == strings.TrimRight(b, "/")
	}

	return ua.Scheme == ub.Scheme &&
		strings.EqualFold(ua.Host, ub.Host) &&
		strings.TrimRight(ua.Path, "/") == strings.TrimRight(ub.Path, "/") &&
		ua.RawQuery == ub.RawQuery
}

// EnsureOnPage calls navigate when loc is not on expectedURL. It reports
// whether it navigated. Calling it again right after is a no-op.
func EnsureOnPage(ctx context.Context, loc Locator, log *utils.Logger, expectedURL string, navigate func(context.Context) error) (bool, error) {
	current, err := loc.CurrentURL(ctx)
	if err != nil {
		return false, err
	}
	if SameURL(current, expectedURL) {
		return false, nil
	}

	log.Warn("Tab is on %s, not %s. Navigating back.", current, expectedURL)
	if err := navigate(ctx); err != nil {
		return true, fmt.Errorf("re-navigate to %s: %w", expectedURL, err)
	}
	return true, nil
}

// WaitForURL polls loc every interval until it reports expectedURL.
func WaitForURL(ctx context.Context, loc Locator, expectedURL string, timeout, interval time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := ""
	for {
		current, err := loc.CurrentURL(ctx)
		if err == nil {
			if SameURL(current, expectedURL) {
				return nil
			}
			last = current
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w %s after %v (last seen %q)", ErrURLTimeout, expectedURL, timeout, last)
		case <-ticker.C:
		}
	}
}
