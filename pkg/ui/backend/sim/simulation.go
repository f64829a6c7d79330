// Package sim provides a headless backend for tests, built on tcell's
// simulation screen. It adds capture helpers so tests can assert on
// rendered frames and inject input without a terminal.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/vantage-tui/vantage/pkg/ui/backend"
	"github.com/vantage-tui/vantage/pkg/ui/backend/tcell"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

// Backend is a simulation backend with the given fixed size until resized.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex
}

// New creates a simulation backend of the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
	}
}

// InjectKey posts a key event as if the user pressed it.
func (s *Backend) InjectKey(ev terminal.KeyEvent) {
	s.PostEvent(ev)
}

// InjectRune posts a bare character keypress.
func (s *Backend) InjectRune(r rune) {
	s.InjectKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: r})
}

// InjectRunes posts each character of str as a keypress.
func (s *Backend) InjectRunes(str string) {
	for _, r := range str {
		s.InjectRune(r)
	}
}

// InjectMouse posts a mouse event.
func (s *Backend) InjectMouse(ev terminal.MouseEvent) {
	s.PostEvent(ev)
}

// InjectClick posts a left button press followed by its release at (x, y).
func (s *Backend) InjectClick(x, y int) {
	s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress})
	s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseNone, Action: terminal.MouseRelease})
}

// InjectResize grows or shrinks the simulated terminal and posts the
// matching resize event.
func (s *Backend) InjectResize(width, height int) {
	s.mu.Lock()
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture returns the whole screen as newline-joined rows.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	return s.captureLocked(0, 0, w, h)
}

// CaptureRegion returns a rectangular slice of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captureLocked(x, y, w, h)
}

func (s *Backend) captureLocked(x, y, w, h int) string {
	var lines []string
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CellStyle returns the style of a single cell.
func (s *Backend) CellStyle(x, y int) backend.Style {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, tcStyle, _ := s.screen.GetContent(x, y)
	return fromTcellStyle(tcStyle)
}

// FindText returns the screen position of the first occurrence of text,
// or (-1, -1) when absent.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

func fromTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(fromTcellColor(fg)).
		Background(fromTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcellv2.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&tcellv2.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcellv2.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

func fromTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
