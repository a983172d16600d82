package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/internal/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algokit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load(write(t, `
node_budget = 5000
spell_budget = 1
output = "json"
`))
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.NodeBudget)
	assert.Equal(t, 1, cfg.SpellBudget)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, 10, cfg.Suggestions, "untouched keys keep defaults")
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key": `colour = "blue"`,
		"syntax":      `node_budget = `,
		"range":       `parallelism = 0`,
		"level":       `log_level = "loud"`,
		"output":      `output = "xml"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.True(t, algoerr.Is(err, algoerr.InvalidInput))
		})
	}
}
