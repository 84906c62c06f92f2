package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
}

func TestLoggerFormatsNamedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("TestLogger").WithOutput(&buf).WithClock(fixedClock).WithoutColor()

	logger.Info("Logger initialized successfully in a test!")
	logger.Warn("drift: %s", "https://www.vectra.pl/")
	logger.Error("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[2025-06-01 12:30:45] [INFO]  [TestLogger] Logger initialized successfully in a test!", lines[0])
	assert.Equal(t, "[2025-06-01 12:30:45] [WARN]  [TestLogger] drift: https://www.vectra.pl/", lines[1])
	assert.Equal(t, "[2025-06-01 12:30:45] [ERROR] [TestLogger] boom", lines[2])
}

func TestLoggerColour(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("HomePage").WithOutput(&buf).WithClock(fixedClock)

	logger.Success("done")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, green), "expected green prefix, got %q", out)
	assert.Contains(t, out, "[OK]    [HomePage] done")
	assert.True(t, strings.HasSuffix(out, reset+"\n"))
}

func TestLoggerSection(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("x").WithOutput(&buf).WithClock(fixedClock).WithoutColor().Section("Step 1")

	assert.Equal(t, "\n[2025-06-01 12:30:45] ══════════ Step 1 ══════════\n\n", buf.String())
}
