package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Output: &buf})
	Error("dropped")
	assert.Empty(t, buf.String())
}

func TestInitLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf})
	defer Init(Options{})

	Debug("hidden")
	Info("saved", "path", "tree.bin")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=saved")
	assert.Contains(t, buf.String(), "path=tree.bin")

	buf.Reset()
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug})
	Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, JSON: true})
	defer Init(Options{})

	Warn("truncated", "count", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "truncated", record["msg"])
	assert.Equal(t, float64(3), record["count"])
}
