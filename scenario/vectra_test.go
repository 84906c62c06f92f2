package scenario

import (
	"context"
	"os"
	"testing"
	"time"

	"vectra-e2e/browser"
	"vectra-e2e/config"
	"vectra-e2e/models"
	"vectra-e2e/pages/vectra/vectratest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireBrowser(t *testing.T, gate string) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	if os.Getenv(gate) == "" {
		t.Skipf("%s not set", gate)
	}
}

func TestVectraScenarioAgainstFixture(t *testing.T) {
	requireBrowser(t, "VECTRA_BROWSER_TESTS")

	srv := vectratest.NewServer()
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.CustomerServicePhone = vectratest.Phone
	cfg.SnapshotDir = t.TempDir()
	cfg.CookieTimeout = 3 * time.Second
	require.NoError(t, cfg.Validate())

	session, err := browser.NewSession(cfg)
	require.NoError(t, err)
	defer session.Close()

	run := NewVectra(session).Run(context.Background())

	for _, s := range run.Steps {
		assert.Equal(t, models.StepPassed, s.Status, "%s: %v", s.Name, s.Err)
	}
	require.NotNil(t, run.Prices)
	assert.Equal(t, 120.0, run.Prices.Highest)
	assert.Equal(t, 45.5, run.Prices.Lowest)
	assert.True(t, run.Phones.Contains(vectratest.Phone))

	entries, err := os.ReadDir(cfg.SnapshotDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "expected screenshots to be written")
}

// TestVectraLive runs the scenario against www.vectra.pl with the
// configuration from the environment (VECTRA_CUSTOMER_SERVICE_PHONE etc.).
func TestVectraLive(t *testing.T) {
	requireBrowser(t, "VECTRA_E2E")

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.SnapshotDir = t.TempDir()

	session, err := browser.NewSession(cfg)
	require.NoError(t, err)
	defer session.Close()

	run := NewVectra(session).Run(context.Background())
	for _, s := range run.Steps {
		assert.Equal(t, models.StepPassed, s.Status, "%s: %v", s.Name, s.Err)
	}
}
