package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salidas.log")

	logger, err := New(path, "info", false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("outing appended", zap.Int("used_minutes", 90))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"outing appended"`)
	assert.Contains(t, out, `"used_minutes":90`)
	assert.Contains(t, out, `"logger":"salidas"`)
	assert.NotContains(t, out, "hidden")
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salidas.log")

	logger, err := New(path, "error", true)
	require.NoError(t, err)
	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "salidas.log"), "loud", false)
	assert.Error(t, err)
}
