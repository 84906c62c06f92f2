package services

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"vectra-e2e/extract"
	"vectra-e2e/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(t *testing.T) models.RunResult {
	t.Helper()

	prices, err := extract.AggregatePrices([]string{"120 zł", "45,50 zł", "200 zł"})
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return models.RunResult{
		BaseURL:       "https://www.vectra.pl",
		StartedAt:     start,
		FinishedAt:    start.Add(42 * time.Second),
		ExpectedPhone: "600500400",
		Prices:        &prices,
		Phones:        extract.ExtractPhoneNumbers("+48 222 333 444, 600 500 400"),
		Steps: []models.StepResult{
			{Name: "Step 1: home page loads", Status: models.StepPassed, Attempts: 1, Duration: 3 * time.Second},
			{Name: "Step 2: highest and lowest offer prices", Status: models.StepPassed, Attempts: 1, Duration: 9 * time.Second},
			{Name: "Step 3: 'Internet' is unique in the menu", Status: models.StepFailed, Attempts: 2, Duration: 5 * time.Second, Err: errors.New("found 2 entries")},
			{Name: "Step 4: last menu entry is 'Kontakt'", Status: models.StepSkipped},
		},
	}
}

func TestGenerateReport(t *testing.T) {
	report := GenerateReport(sampleRun(t))

	assert.Equal(t, 4, report.TotalSteps)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 42*time.Second, report.Duration)
	assert.Equal(t, "Step 2: highest and lowest offer prices", report.Slowest.Name)
	assert.Equal(t, []string{"222333444", "600500400"}, report.PhoneNumbers)
	assert.True(t, report.ExpectedFound)
	require.NotNil(t, report.Prices)
	assert.Equal(t, 200.0, report.Prices.Highest)
}

func TestGenerateReportWithoutPhones(t *testing.T) {
	run := sampleRun(t)
	run.Phones = nil

	report := GenerateReport(run)
	assert.Empty(t, report.PhoneNumbers)
	assert.False(t, report.ExpectedFound)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, GenerateReport(sampleRun(t)))

	out := buf.String()
	assert.Contains(t, out, "Vectra E2E Run Summary")
	assert.Contains(t, out, "200.00")
	assert.Contains(t, out, "45.50")
	assert.Contains(t, out, "600500400")
	assert.Contains(t, out, "FAILED Step 3: 'Internet' is unique in the menu: found 2 entries")
	assert.NotContains(t, out, "MISSING")
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abc", truncateText("abc", 5))
	assert.Equal(t, "Zadz...", truncateText("Zadzwoń teraz", 7))
	assert.Equal(t, "ab", truncateText("abcdef", 2))
}
