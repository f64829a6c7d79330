package backend

// Color is a terminal color. Values 0-255 address the palette; colors
// built with ColorRGB carry a flag bit and encode true color.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbFlag = 0x01000000

// ColorRGB builds a true color from components.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbFlag)
}

// IsRGB reports whether c is a true color rather than a palette index.
func (c Color) IsRGB() bool {
	return c > 0 && c&rgbFlag != 0
}

// RGB returns the components of a true color, or zeros otherwise.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a bitmask of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough
)

// Style combines foreground and background colors with attributes.
// The zero value is not the default style; use DefaultStyle.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the terminal's default colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

func (s Style) setAttr(a AttrMask, on bool) Style {
	if on {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

// Bold enables or disables bold.
func (s Style) Bold(on bool) Style { return s.setAttr(AttrBold, on) }

// Italic enables or disables italic.
func (s Style) Italic(on bool) Style { return s.setAttr(AttrItalic, on) }

// Dim enables or disables dim.
func (s Style) Dim(on bool) Style { return s.setAttr(AttrDim, on) }

// Underline enables or disables underline.
func (s Style) Underline(on bool) Style { return s.setAttr(AttrUnderline, on) }

// Reverse enables or disables reverse video.
func (s Style) Reverse(on bool) Style { return s.setAttr(AttrReverse, on) }

// Blink enables or disables blink.
func (s Style) Blink(on bool) Style { return s.setAttr(AttrBlink, on) }

// StrikeThrough enables or disables strikethrough.
func (s Style) StrikeThrough(on bool) Style { return s.setAttr(AttrStrikeThrough, on) }

// FG returns the foreground color.
func (s Style) FG() Color { return s.fg }

// BG returns the background color.
func (s Style) BG() Color { return s.bg }

// Attributes returns the attribute mask.
func (s Style) Attributes() AttrMask { return s.attrs }

// Decompose returns foreground, background, and attributes at once.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
