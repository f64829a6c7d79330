// Package tcell implements the rendering sink on a real terminal via
// gdamore/tcell.
package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vantage-tui/vantage/pkg/ui/backend"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

// Backend implements backend.Backend on a tcell.Screen.
type Backend struct {
	screen tcell.Screen
}

// New creates a backend on a freshly allocated terminal screen.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen. The simulation backend uses
// this to share the conversion code.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	b.screen.EnableMouse()
	return nil
}

func (b *Backend) Fini() {
	b.screen.Fini()
}

func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, toTcellStyle(style))
}

func (b *Backend) Show() {
	b.screen.Show()
}

func (b *Backend) Clear() {
	b.screen.Clear()
}

func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

func (b *Backend) ShowCursor(x, y int) {
	b.screen.ShowCursor(x, y)
}

func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := fromTcellEvent(ev); converted != nil {
			return converted
		}
	}
}

func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := toTcellEvent(ev)
	if tev == nil {
		return nil
	}
	return b.screen.PostEvent(tev)
}

func (b *Backend) Beep() {
	b.screen.Beep()
}

func (b *Backend) Sync() {
	b.screen.Sync()
}

func toTcellStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(toTcellColor(fg)).
		Background(toTcellColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

func toTcellColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func fromTcellEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return terminal.KeyEvent{
			Key:   fromTcellKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   e.Modifiers()&tcell.ModAlt != 0,
			Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
			Shift: e.Modifiers()&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return terminal.MouseEvent{
			X:      x,
			Y:      y,
			Button: fromTcellButtons(e.Buttons()),
			Action: fromTcellAction(e.Buttons()),
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	default:
		return nil
	}
}

// toTcellEvent maps our events back onto tcell events so PostEvent can
// feed the same queue PollEvent drains. Key and mouse events round-trip
// so injected input in tests follows the real input path.
func toTcellEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.KeyEvent:
		var mods tcell.ModMask
		if e.Alt {
			mods |= tcell.ModAlt
		}
		if e.Ctrl {
			mods |= tcell.ModCtrl
		}
		if e.Shift {
			mods |= tcell.ModShift
		}
		return tcell.NewEventKey(toTcellKey(e.Key), e.Rune, mods)
	case terminal.MouseEvent:
		var mods tcell.ModMask
		if e.Alt {
			mods |= tcell.ModAlt
		}
		if e.Ctrl {
			mods |= tcell.ModCtrl
		}
		if e.Shift {
			mods |= tcell.ModShift
		}
		var buttons tcell.ButtonMask
		if e.Action == terminal.MousePress {
			buttons = toTcellButton(e.Button)
		}
		return tcell.NewEventMouse(e.X, e.Y, buttons, mods)
	default:
		return nil
	}
}

var keyFromTcell = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlF:      terminal.KeyCtrlF,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

func fromTcellKey(k tcell.Key) terminal.Key {
	if mapped, ok := keyFromTcell[k]; ok {
		return mapped
	}
	return terminal.KeyNone
}

func toTcellKey(k terminal.Key) tcell.Key {
	// KeyBackspace2 shadows KeyBackspace in the reverse direction; every
	// other mapping is one-to-one.
	for tk, mapped := range keyFromTcell {
		if mapped == k && tk != tcell.KeyBackspace2 {
			return tk
		}
	}
	return tcell.KeyNUL
}

func fromTcellButtons(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func toTcellButton(b terminal.MouseButton) tcell.ButtonMask {
	switch b {
	case terminal.MouseLeft:
		return tcell.Button1
	case terminal.MouseMiddle:
		return tcell.Button2
	case terminal.MouseRight:
		return tcell.Button3
	case terminal.MouseWheelUp:
		return tcell.WheelUp
	case terminal.MouseWheelDown:
		return tcell.WheelDown
	default:
		return tcell.ButtonNone
	}
}

func fromTcellAction(buttons tcell.ButtonMask) terminal.MouseAction {
	if buttons == tcell.ButtonNone {
		return terminal.MouseRelease
	}
	return terminal.MousePress
}

var _ backend.Backend = (*Backend)(nil)
