package browser

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vectra-e2e/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTab struct {
	mu  sync.Mutex
	url string
	// urls, when set, are returned one per call before falling back to url.
	urls []string
	err  error
}

func (f *fakeTab) CurrentURL(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if len(f.urls) > 0 {
		u := f.urls[0]
		f.urls = f.urls[1:]
		return u, nil
	}
	return f.url, nil
}

func (f *fakeTab) goTo(u string) func(context.Context) error {
	return func(context.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.url = u
		return nil
	}
}

func quietLogger() *utils.Logger {
	return utils.NewLogger("test").WithOutput(&bytes.Buffer{}).WithoutColor()
}

func TestSameURL(t *testing.T) {
	testCases := []struct {
		a, b string
		same bool
	}{
		{"https://www.vectra.pl", "https://www.vectra.pl/", true},
		{"https://WWW.vectra.pl/kontakt/", "https://www.vectra.pl/kontakt", true},
		{"https://www.vectra.pl/kontakt#form", "https://www.vectra.pl/kontakt", true},
		{"https://www.vectra.pl/kontakt", "https://www.vectra.pl/", false},
		{"http://www.vectra.pl", "https://www.vectra.pl", false},
		{"https://www.vectra.pl/?a=1", "https://www.vectra.pl/", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.same, SameURL(tc.a, tc.b), "%s vs %s", tc.a, tc.b)
	}
}

func TestEnsureOnPageIsIdempotent(t *testing.T) {
	tab := &fakeTab{url: "https://www.vectra.pl/kontakt"}
	navigations := 0
	navigate := func(ctx context.Context) error {
		navigations++
		return tab.goTo("https://www.vectra.pl/")(ctx)
	}

	moved, err := EnsureOnPage(context.Background(), tab, quietLogger(), "https://www.vectra.pl", navigate)
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = EnsureOnPage(context.Background(), tab, quietLogger(), "https://www.vectra.pl", navigate)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, 1, navigations)
}

func TestEnsureOnPageErrors(t *testing.T) {
	errNav := errors.New("net::ERR_NAME_NOT_RESOLVED")

	tab := &fakeTab{url: "about:blank"}
	_, err := EnsureOnPage(context.Background(), tab, quietLogger(), "https://www.vectra.pl", func(context.Context) error {
		return errNav
	})
	assert.ErrorIs(t, err, errNav)

	errLoc := errors.New("target closed")
	_, err = EnsureOnPage(context.Background(), &fakeTab{err: errLoc}, quietLogger(), "https://www.vectra.pl", nil)
	assert.ErrorIs(t, err, errLoc)
}

func TestWaitForURL(t *testing.T) {
	tab := &fakeTab{
		urls: []string{"https://www.vectra.pl/", "https://www.vectra.pl/"},
		url:  "https://www.vectra.pl/kontakt",
	}

	err := WaitForURL(context.Background(), tab, "https://www.vectra.pl/kontakt", time.Second, time.Millisecond)
	require.NoError(t, err)
}

func TestWaitForURLTimesOut(t *testing.T) {
	tab := &fakeTab{url: "https://www.vectra.pl/"}

	err := WaitForURL(context.Background(), tab, "https://www.vectra.pl/kontakt", 20*time.Millisecond, time.Millisecond)
	require.ErrorIs(t, err, ErrURLTimeout)
	assert.Contains(t, err.Error(), "https://www.vectra.pl/")
}
