package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-tui/vantage/pkg/ui/backend"
	"github.com/vantage-tui/vantage/pkg/ui/theme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTableGap, cfg.Table.Gap)
	assert.Empty(t, cfg.Theme.Text)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
table:
  gap: 3
theme:
  header: "#ffb74d"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Table.Gap)
	assert.Equal(t, "#ffb74d", cfg.Theme.Header)
	assert.Empty(t, cfg.Theme.Border, "unset fields keep the built-in color")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "table: [not a map")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidateGapRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Gap = MaxTableGap
	assert.NoError(t, cfg.Validate())

	cfg.Table.Gap = MaxTableGap + 1
	assert.Error(t, cfg.Validate())

	cfg.Table.Gap = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateHexColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Border = "#8cbefa"
	assert.NoError(t, cfg.Validate())

	cfg.Theme.Border = "8cbefa"
	assert.NoError(t, cfg.Validate(), "the leading # is optional")

	cfg.Theme.Border = "#8cbe"
	assert.Error(t, cfg.Validate())

	cfg.Theme.Border = "#zzzzzz"
	assert.Error(t, cfg.Validate())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "table:\n  gap: 99\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table.gap")
}

func TestSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Gap = 2
	assert.Equal(t, theme.Settings{TableGap: 2}, cfg.Settings())
}

func TestBuildThemeAppliesOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Header = "#102030"
	cfg.Theme.SelectedBg = "#405060"

	th := cfg.BuildTheme()

	fg, _, _ := th.Header.Decompose()
	assert.Equal(t, backend.ColorRGB(0x10, 0x20, 0x30), fg)

	_, bg, _ := th.TextSelected.Decompose()
	assert.Equal(t, backend.ColorRGB(0x40, 0x50, 0x60), bg)

	def := theme.DefaultTheme()
	assert.Equal(t, def.Border, th.Border, "untouched styles match the default theme")
}

func TestBuildThemeWithoutOverridesMatchesDefault(t *testing.T) {
	th := DefaultConfig().BuildTheme()
	assert.Equal(t, theme.DefaultTheme(), th)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff0080")
	require.NoError(t, err)
	r, g, b := c.RGB()
	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0x00), g)
	assert.Equal(t, uint8(0x80), b)

	_, err = parseHexColor("#fff")
	assert.Error(t, err)
}
