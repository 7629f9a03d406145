package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withBuffer enables verbose output into a buffer for the duration of a test.
func withBuffer(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	withBuffer(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := withBuffer(t, true)

	Debug("opened %s", "grocery.db")
	Info("products: %d", 3)
	Warn("config %s", "missing")

	assert.Equal(t, "[DEBUG] opened grocery.db\n[INFO] products: 3\n[WARN] config missing\n", buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := withBuffer(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestSection(t *testing.T) {
	buf := withBuffer(t, true)

	Section("Bootstrap")

	assert.Equal(t, "\n=== Bootstrap ===\n", buf.String())
}
