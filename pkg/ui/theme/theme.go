// Package theme provides the visual style snapshot consumed during
// drawing. Widgets never mutate a Theme; the app hands each frame a
// read-only pointer alongside the layout settings.
package theme

import (
	"github.com/vantage-tui/vantage/pkg/ui/backend"
)

// Theme defines the styles used by the dashboard widgets.
type Theme struct {
	// Text
	Text         backend.Style // table rows, plain content
	TextSelected backend.Style // highlighted table row
	TextMuted    backend.Style // hints, placeholders
	Header       backend.Style // table column headers

	// Chrome
	Border        backend.Style
	BorderFocused backend.Style
	Title         backend.Style

	// Table decorations
	SortArrow       backend.Style // arrow next to the sorted column header
	ScrollIndicator backend.Style // horizontal-scroll arrows in the header row

	// Search and sort overlays
	SearchPrompt backend.Style
	SearchText   backend.Style
	MenuItem     backend.Style
	MenuSelected backend.Style
}

// Settings holds layout tunables that travel with the theme.
type Settings struct {
	// TableGap is the blank rows between a table's header and its first
	// data row. Collapses to zero on short tables.
	TableGap int
}

// DefaultSettings returns the stock layout settings.
func DefaultSettings() Settings {
	return Settings{TableGap: 1}
}

// DefaultTheme returns the stock dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Text:         backend.DefaultStyle().Foreground(backend.ColorRGB(220, 218, 212)),
		TextSelected: backend.DefaultStyle().Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(140, 190, 250)),
		TextMuted:    backend.DefaultStyle().Foreground(backend.ColorRGB(110, 108, 102)),
		Header:       backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)).Bold(true),

		Border:        backend.DefaultStyle().Foreground(backend.ColorRGB(60, 60, 72)),
		BorderFocused: backend.DefaultStyle().Foreground(backend.ColorRGB(140, 190, 250)),
		Title:         backend.DefaultStyle().Foreground(backend.ColorRGB(220, 218, 212)).Bold(true),

		SortArrow:       backend.DefaultStyle().Foreground(backend.ColorRGB(140, 190, 250)),
		ScrollIndicator: backend.DefaultStyle().Foreground(backend.ColorRGB(110, 108, 102)),

		SearchPrompt: backend.DefaultStyle().Foreground(backend.ColorRGB(253, 224, 71)).Bold(true),
		SearchText:   backend.DefaultStyle().Foreground(backend.ColorRGB(220, 218, 212)),
		MenuItem:     backend.DefaultStyle().Foreground(backend.ColorRGB(160, 158, 150)),
		MenuSelected: backend.DefaultStyle().Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(255, 183, 77)),
	}
}

// Symbols provides consistent iconography for the widgets.
var Symbols = struct {
	ArrowUp    string
	ArrowDown  string
	ArrowLeft  string
	ArrowRight string

	BorderTopLeft     string
	BorderTopRight    string
	BorderBottomLeft  string
	BorderBottomRight string
	BorderHorizontal  string
	BorderVertical    string

	SearchPrompt string
}{
	ArrowUp:    "▲",
	ArrowDown:  "▼",
	ArrowLeft:  "◀",
	ArrowRight: "▶",

	BorderTopLeft:     "┌",
	BorderTopRight:    "┐",
	BorderBottomLeft:  "└",
	BorderBottomRight: "┘",
	BorderHorizontal:  "─",
	BorderVertical:    "│",

	SearchPrompt: "/",
}
