package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "sweep", configBaseName)
	assert.Equal(t, "sweep.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "board.rows", boardRowsKey)
	assert.Equal(t, "simulate.max_moves", simulateMaxMovesKey)
	assert.Equal(t, 9, defaultRows)
	assert.Equal(t, 9, defaultCols)
	assert.Equal(t, 10, defaultMines)
	assert.Equal(t, 100, defaultSimulateGames)
	assert.Equal(t, "SWEEP", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "sweep.log"), true)

	assert.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	configureLogger(filepath.Join(t.TempDir(), "sweep.log"), false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
