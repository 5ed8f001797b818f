package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ε", cfg.EpsilonMarker)
	assert.Equal(t, 10, cfg.Columns)
	assert.Equal(t, Position{X: 100, Y: 100}, cfg.Origin)
	assert.Equal(t, 40.0, cfg.Spacing)
}

func TestConfig_Merge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{EpsilonMarker: "eps", Columns: 4})

	assert.Equal(t, "eps", cfg.EpsilonMarker)
	assert.Equal(t, 4, cfg.Columns)
	assert.Equal(t, 40.0, cfg.Spacing)
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{})
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"epsilon_marker": "eps",
		"spacing": 60,
		"origin": {"x": 20, "y": 30}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "eps", cfg.EpsilonMarker)
	assert.Equal(t, 60.0, cfg.Spacing)
	assert.Equal(t, Position{X: 20, Y: 30}, cfg.Origin)
	assert.Equal(t, 10, cfg.Columns)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
