// Package config loads the dashboard's YAML settings: table layout
// tunables and theme color overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vantage-tui/vantage/pkg/ui/backend"
	"github.com/vantage-tui/vantage/pkg/ui/theme"
)

// Default table settings.
const (
	DefaultTableGap = 1
	MaxTableGap     = 5
)

// Config is the complete dashboard configuration.
type Config struct {
	Table TableConfig `yaml:"table"`
	Theme ThemeConfig `yaml:"theme"`
}

// TableConfig controls table layout.
type TableConfig struct {
	// Gap is the blank rows between a table's header and its first data
	// row. Collapses to zero on short tables regardless of this value.
	Gap int `yaml:"gap"`
}

// ThemeConfig overrides theme colors. Values are hex strings such as
// "#8cbefa"; empty strings keep the built-in color.
type ThemeConfig struct {
	Text            string `yaml:"text"`
	SelectedText    string `yaml:"selected_text"`
	SelectedBg      string `yaml:"selected_bg"`
	Header          string `yaml:"header"`
	Border          string `yaml:"border"`
	FocusedBorder   string `yaml:"focused_border"`
	ScrollIndicator string `yaml:"scroll_indicator"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{Gap: DefaultTableGap},
	}
}

// Load reads the config file at path, layering it over the defaults. A
// missing file is not an error; the defaults apply as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Table.Gap < 0 || c.Table.Gap > MaxTableGap {
		return fmt.Errorf("table.gap must be between 0 and %d, got %d", MaxTableGap, c.Table.Gap)
	}
	for name, v := range map[string]string{
		"theme.text":             c.Theme.Text,
		"theme.selected_text":    c.Theme.SelectedText,
		"theme.selected_bg":      c.Theme.SelectedBg,
		"theme.header":           c.Theme.Header,
		"theme.border":           c.Theme.Border,
		"theme.focused_border":   c.Theme.FocusedBorder,
		"theme.scroll_indicator": c.Theme.ScrollIndicator,
	} {
		if v == "" {
			continue
		}
		if _, err := parseHexColor(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Settings converts the config into the layout snapshot widgets read.
func (c *Config) Settings() theme.Settings {
	return theme.Settings{TableGap: c.Table.Gap}
}

// BuildTheme applies the configured color overrides to the default
// theme.
func (c *Config) BuildTheme() *theme.Theme {
	th := theme.DefaultTheme()

	override := func(style *backend.Style, hex string, bg bool) {
		if hex == "" {
			return
		}
		color, err := parseHexColor(hex)
		if err != nil {
			return // Validate catches this before we get here.
		}
		if bg {
			*style = style.Background(color)
		} else {
			*style = style.Foreground(color)
		}
	}

	override(&th.Text, c.Theme.Text, false)
	override(&th.TextSelected, c.Theme.SelectedText, false)
	override(&th.TextSelected, c.Theme.SelectedBg, true)
	override(&th.Header, c.Theme.Header, false)
	override(&th.Border, c.Theme.Border, false)
	override(&th.BorderFocused, c.Theme.FocusedBorder, false)
	override(&th.ScrollIndicator, c.Theme.ScrollIndicator, false)
	return th
}

// parseHexColor parses "#rrggbb" (leading '#' optional) into a color.
func parseHexColor(s string) (backend.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	return backend.ColorRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
