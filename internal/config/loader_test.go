package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("prompt: \"> \"\npathSeparator: \"/\"\noutput: plain\nmaxDepth: 4\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), content, 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "/", cfg.PathSeparator)
	assert.Equal(t, OutputPlain, cfg.Output)
	assert.Equal(t, 4, cfg.MaxDepth)
	// Untouched fields keep their defaults.
	assert.Equal(t, GetDefaultConfig().HistoryFile, cfg.HistoryFile)
}

func TestLoadConfigMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("prompt: [unclosed"), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad output", "output: json\n"},
		{"bad depth", "maxDepth: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(tt.content), 0644))
			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}
