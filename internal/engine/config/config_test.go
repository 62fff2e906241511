package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_ReturnsNonZeroDefaults(t *testing.T) {
	// Arrange & Act
	cfg := New()

	// Assert
	assert.Equal(t, 60, cfg.Schedule.TickRateHz)
	assert.Equal(t, 2, cfg.Schedule.MaxFramesInFlight)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func Test_LoadFile_MissingFileReturnsDefaults(t *testing.T) {
	// Arrange
	missing := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	// Act
	cfg, err := LoadFile(missing)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func Test_LoadFile_YAMLOverridesDefaults(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := "schedule:\n  tick_rate_hz: 30\nwindow:\n  title: test-window\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	// Act
	cfg, err := LoadFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Schedule.TickRateHz)
	assert.Equal(t, "test-window", cfg.Window.Title)
	assert.Equal(t, 720, cfg.Window.Height) // untouched fields keep their default
}

func Test_LoadFile_MalformedYAMLReturnsError(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schedule: [this is not a mapping"), 0o644))

	// Act
	_, err := LoadFile(path)

	// Assert
	assert.Error(t, err)
}
