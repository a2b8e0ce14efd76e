package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for one test
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Models)
	assert.False(t, cfg.Lenient)
	assert.Equal(t, ".", cfg.Data.Dir)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	doc := `
models:
  - article
  - album
lenient: true
data:
  dir: fixtures
output:
  format: json
  color: never
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kql.yml"), []byte(doc), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"article", "album"}, cfg.Models)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "fixtures", cfg.Data.Dir)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad format", "output:\n  format: xml\n"},
		{"bad color", "output:\n  color: sometimes\n"},
		{"empty model name", "models:\n  - article\n  - \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "kql.yml"), []byte(tt.doc), 0644))
			chdir(t, dir)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kql.yml"), []byte("models: [unclosed"), 0644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}
