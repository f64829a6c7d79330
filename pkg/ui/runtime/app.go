package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vantage-tui/vantage/pkg/ui/backend"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
	"github.com/vantage-tui/vantage/pkg/ui/theme"
)

// Parent is implemented by composite widgets so the app can walk the
// tree for focus paths and mouse routing.
type Parent interface {
	Children() []Widget
}

// SignalObserver lets a composite intercept signals bubbling up from
// its descendants. Return nil to consume the signal, the same signal to
// pass it along, or a different one to rewrite it.
type SignalObserver interface {
	OnSignal(sig Signal) Signal
}

// SignalFunc receives signals nothing in the tree consumed. Return true
// when handling the signal changed something worth redrawing.
type SignalFunc func(sig Signal) bool

// GlobalKeyFunc maps a key event to a signal before normal dispatch;
// return nil to let the tree see the event. Used for app-wide bindings
// such as quit keys.
type GlobalKeyFunc func(ev terminal.KeyEvent) Signal

// AppConfig configures an App.
type AppConfig struct {
	Backend  backend.Backend
	Root     Widget
	Theme    *theme.Theme
	Settings theme.Settings

	// InitialFocus is the widget that receives keyboard input first.
	InitialFocus WidgetID

	// OnSignal receives signals that bubbled past the root. Optional.
	OnSignal SignalFunc

	// GlobalKey intercepts key events before the focused widget sees
	// them. Optional.
	GlobalKey GlobalKeyFunc

	// Logger traces input and frames for debugging. Optional; the UI
	// owns the terminal, so this should write to a file when set.
	Logger *slog.Logger
}

// App drives a widget tree against a backend: one synchronous loop of
// poll, dispatch, re-render. There is no background work; every handler
// runs to completion before the next event is read.
type App struct {
	backend   backend.Backend
	root      Widget
	theme     *theme.Theme
	settings  theme.Settings
	onSignal  SignalFunc
	globalKey GlobalKeyFunc
	logger    *slog.Logger

	buf     *Buffer
	grid    *HitGrid
	focused WidgetID
	running bool
	ready   chan struct{}
}

// NewApp creates an App from config.
func NewApp(cfg AppConfig) *App {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	return &App{
		backend:   cfg.Backend,
		root:      cfg.Root,
		theme:     th,
		settings:  cfg.Settings,
		onSignal:  cfg.OnSignal,
		globalKey: cfg.GlobalKey,
		logger:    cfg.Logger,
		focused:   cfg.InitialFocus,
		ready:     make(chan struct{}),
	}
}

// Focused returns the ID of the widget receiving keyboard input.
func (a *App) Focused() WidgetID { return a.focused }

// SetFocused moves keyboard focus to the given widget.
func (a *App) SetFocused(id WidgetID) { a.focused = id }

// Ready is closed once the backend is initialized and the first frame
// has been rendered. Tests wait on it before injecting events.
func (a *App) Ready() <-chan struct{} { return a.ready }

// Run executes the event loop until a Quit signal, backend shutdown, or
// context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if a.root == nil {
		return errors.New("root widget is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()
	a.backend.HideCursor()

	w, h := a.backend.Size()
	a.buf = NewBuffer(w, h)
	a.grid = NewHitGrid(w, h)
	a.root.SetBounds(Rect{Width: w, Height: h})
	a.rebuildHitGrid()

	a.running = true
	a.render()
	close(a.ready)

	for a.running {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ev := a.backend.PollEvent()
		if ev == nil {
			break
		}
		a.dispatch(ev)
		if a.running {
			a.render()
		}
	}
	return nil
}

func (a *App) dispatch(ev terminal.Event) {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		if a.logger != nil {
			a.logger.Debug("resize", "width", e.Width, "height", e.Height)
		}
		a.buf.Resize(e.Width, e.Height)
		a.grid.Resize(e.Width, e.Height)
		a.root.SetBounds(Rect{Width: e.Width, Height: e.Height})
		a.rebuildHitGrid()
		a.backend.Clear()
		a.buf.MarkAllDirty()

	case terminal.KeyEvent:
		a.dispatchKey(e)

	case terminal.MouseEvent:
		a.dispatchMouse(e)
	}
}

func (a *App) dispatchKey(ev terminal.KeyEvent) {
	if a.logger != nil {
		a.logger.Debug("key", "key", int(ev.Key), "rune", string(ev.Rune))
	}

	if a.globalKey != nil {
		if sig := a.globalKey(ev); sig != nil {
			a.handleSignal(sig)
			return
		}
	}

	path := a.pathTo(a.focused)
	if len(path) == 0 {
		return
	}

	target := path[len(path)-1]
	var sig Signal
	if kh, ok := target.(KeyHandler); ok {
		sig = kh.OnKey(ev)
	}

	// Unconsumed events climb toward the root so containers get a shot
	// at tree-level bindings like focus movement.
	if sig == nil {
		for i := len(path) - 2; i >= 0; i-- {
			if kh, ok := path[i].(KeyHandler); ok {
				if sig = kh.OnKey(ev); sig != nil {
					break
				}
			}
		}
	}

	if sh, ok := target.(ScrollHandler); ok {
		if s := sh.OnScroll(); s != nil && sig == nil {
			sig = s
		}
	}

	a.bubble(path, sig)
}

func (a *App) dispatchMouse(ev terminal.MouseEvent) {
	// The wheel moves the selection like arrow keys do.
	if ev.Button == terminal.MouseWheelUp || ev.Button == terminal.MouseWheelDown {
		key := terminal.KeyUp
		if ev.Button == terminal.MouseWheelDown {
			key = terminal.KeyDown
		}
		a.dispatchKey(terminal.KeyEvent{Key: key})
		return
	}

	if ev.Action != terminal.MousePress {
		return
	}

	handler := a.grid.HandlerAt(ev.X, ev.Y)
	if handler == nil || !handler.InBounds(ev.X, ev.Y) {
		return
	}

	var sig Signal
	switch ev.Button {
	case terminal.MouseLeft:
		sig = handler.OnLeftClick(ev.X, ev.Y)
	case terminal.MouseMiddle:
		sig = handler.OnMiddleClick(ev.X, ev.Y)
	case terminal.MouseRight:
		sig = handler.OnRightClick(ev.X, ev.Y)
	default:
		return
	}

	var path []Widget
	if w, ok := handler.(Widget); ok {
		a.focused = w.ID()
		path = a.pathTo(w.ID())
	}
	a.bubble(path, sig)
}

// bubble walks a signal up the ancestor chain, letting each observer
// consume or rewrite it, then hands whatever survives to the app.
func (a *App) bubble(path []Widget, sig Signal) {
	if sig == nil {
		return
	}
	for i := len(path) - 2; i >= 0 && sig != nil; i-- {
		if obs, ok := path[i].(SignalObserver); ok {
			sig = obs.OnSignal(sig)
		}
	}
	if sig != nil {
		a.handleSignal(sig)
	}
}

func (a *App) handleSignal(sig Signal) {
	switch s := sig.(type) {
	case Quit:
		a.running = false
	case MoveFocus:
		a.moveFocus(s.Direction)
	case FocusWidget:
		a.focused = s.ID
	default:
		if a.onSignal != nil {
			a.onSignal(sig)
		}
	}
	// Overlay toggles and the like can change the tree shape.
	a.rebuildHitGrid()
}

// moveFocus picks the nearest focusable widget in the requested
// direction, measured between bounds centers. No candidate means focus
// stays put.
func (a *App) moveFocus(dir FocusDirection) {
	current := a.findWidget(a.focused)
	if current == nil {
		return
	}
	cb := current.Bounds()
	cx, cy := cb.X+cb.Width/2, cb.Y+cb.Height/2

	var best Widget
	bestDist := 0
	for _, w := range a.focusables() {
		if w.ID() == a.focused {
			continue
		}
		b := w.Bounds()
		if b.Empty() {
			continue
		}
		x, y := b.X+b.Width/2, b.Y+b.Height/2
		dx, dy := x-cx, y-cy

		ok := false
		switch dir {
		case FocusUp:
			ok = dy < 0
		case FocusDown:
			ok = dy > 0
		case FocusLeft:
			ok = dx < 0
		case FocusRight:
			ok = dx > 0
		}
		if !ok {
			continue
		}
		dist := dx*dx + dy*dy
		if best == nil || dist < bestDist {
			best = w
			bestDist = dist
		}
	}
	if best != nil {
		a.focused = best.ID()
	}
}

// focusables returns the leaf key handlers in tree order.
func (a *App) focusables() []Widget {
	var out []Widget
	var walk func(w Widget)
	walk = func(w Widget) {
		if p, ok := w.(Parent); ok {
			kids := p.Children()
			if len(kids) > 0 {
				for _, c := range kids {
					walk(c)
				}
				return
			}
		}
		if _, ok := w.(KeyHandler); ok {
			out = append(out, w)
		}
	}
	walk(a.root)
	return out
}

// pathTo returns root..target inclusive, or nil when the ID is absent.
func (a *App) pathTo(id WidgetID) []Widget {
	var path []Widget
	var walk func(w Widget) bool
	walk = func(w Widget) bool {
		path = append(path, w)
		if w.ID() == id {
			return true
		}
		if p, ok := w.(Parent); ok {
			for _, c := range p.Children() {
				if walk(c) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if walk(a.root) {
		return path
	}
	return nil
}

func (a *App) findWidget(id WidgetID) Widget {
	path := a.pathTo(id)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// rebuildHitGrid re-registers every click handler, parents before
// children so the deepest widget wins each cell.
func (a *App) rebuildHitGrid() {
	if a.grid == nil {
		return
	}
	a.grid.Clear()
	var walk func(w Widget)
	walk = func(w Widget) {
		if ch, ok := w.(ClickHandler); ok {
			a.grid.Add(ch, w.Bounds())
		}
		if p, ok := w.(Parent); ok {
			for _, c := range p.Children() {
				walk(c)
			}
		}
	}
	walk(a.root)
}

func (a *App) render() {
	a.root.Draw(DrawContext{
		Buf:      a.buf,
		Theme:    a.theme,
		Settings: a.settings,
		Focused:  a.focused,
	})

	if a.buf.IsDirty() {
		a.buf.ForEachDirtyCell(func(x, y int, cell Cell) {
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			a.backend.SetContent(x, y, r, nil, cell.Style)
		})
		a.buf.ClearDirty()
	}
	a.backend.Show()
}
