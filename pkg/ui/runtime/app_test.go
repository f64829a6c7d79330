package runtime_test

import (
	"context"
	"testing"
	"time"

	"github.com/vantage-tui/vantage/pkg/ui/backend/sim"
	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

// counter is a leaf widget that counts key presses and paints a marker.
type counter struct {
	runtime.Base
	keys   int
	clicks int
}

func newCounter(id runtime.WidgetID) *counter {
	return &counter{Base: runtime.NewBase(id)}
}

func (c *counter) Draw(ctx runtime.DrawContext) {
	b := c.Bounds()
	ctx.Buf.SetString(b.X, b.Y, "counter", ctx.Theme.Text)
}

func (c *counter) OnKey(ev terminal.KeyEvent) runtime.Signal {
	c.keys++
	return nil
}

func (c *counter) OnLeftClick(x, y int) runtime.Signal {
	c.clicks++
	return nil
}

// pair is a two-child composite splitting its area in half.
type pair struct {
	runtime.Base
	left, right runtime.Widget
}

func (p *pair) Draw(ctx runtime.DrawContext) {
	p.left.Draw(ctx)
	p.right.Draw(ctx)
}

func (p *pair) SetBounds(bounds runtime.Rect) {
	p.Base.SetBounds(bounds)
	rects := runtime.Split(bounds, runtime.DirHorizontal, 0, []runtime.Constraint{
		runtime.Percentage(50), runtime.Min(0),
	})
	p.left.SetBounds(rects[0])
	p.right.SetBounds(rects[1])
}

func (p *pair) Children() []runtime.Widget {
	return []runtime.Widget{p.left, p.right}
}

func runApp(t *testing.T, app *runtime.App) chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case <-app.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("app never became ready")
	}
	return done
}

func waitDone(t *testing.T, done chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("app returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestAppRoutesKeysToFocusedWidget(t *testing.T) {
	be := sim.New(40, 10)
	left := newCounter(1)
	right := newCounter(2)
	root := &pair{Base: runtime.NewBase(0), left: left, right: right}

	app := runtime.NewApp(runtime.AppConfig{
		Backend:      be,
		Root:         root,
		InitialFocus: 1,
		GlobalKey: func(ev terminal.KeyEvent) runtime.Signal {
			if ev.Key == terminal.KeyCtrlC {
				return runtime.Quit{}
			}
			return nil
		},
	})
	done := runApp(t, app)

	be.InjectRune('x')
	be.InjectRune('y')
	be.InjectKey(terminal.KeyEvent{Key: terminal.KeyCtrlC, Ctrl: true})
	waitDone(t, done)

	if left.keys != 2 {
		t.Errorf("focused widget saw %d keys, want 2", left.keys)
	}
	if right.keys != 0 {
		t.Errorf("unfocused widget saw %d keys, want 0", right.keys)
	}
}

func TestAppClickFocusesAndDispatches(t *testing.T) {
	be := sim.New(40, 10)
	left := newCounter(1)
	right := newCounter(2)
	root := &pair{Base: runtime.NewBase(0), left: left, right: right}

	app := runtime.NewApp(runtime.AppConfig{
		Backend:      be,
		Root:         root,
		InitialFocus: 1,
		GlobalKey: func(ev terminal.KeyEvent) runtime.Signal {
			if ev.Key == terminal.KeyCtrlC {
				return runtime.Quit{}
			}
			return nil
		},
	})
	done := runApp(t, app)

	// Click the right half, then type: the key should land on the right
	// widget.
	be.InjectClick(30, 5)
	be.InjectRune('x')
	be.InjectKey(terminal.KeyEvent{Key: terminal.KeyCtrlC, Ctrl: true})
	waitDone(t, done)

	if right.clicks != 1 {
		t.Errorf("right widget saw %d clicks, want 1", right.clicks)
	}
	if right.keys != 1 {
		t.Errorf("right widget saw %d keys after click, want 1", right.keys)
	}
	if left.keys != 0 {
		t.Errorf("left widget saw %d keys, want 0", left.keys)
	}
}

func TestAppMoveFocusSignal(t *testing.T) {
	be := sim.New(40, 10)
	left := newCounter(1)
	right := newCounter(2)
	root := &pair{Base: runtime.NewBase(0), left: left, right: right}

	app := runtime.NewApp(runtime.AppConfig{
		Backend:      be,
		Root:         root,
		InitialFocus: 1,
		GlobalKey: func(ev terminal.KeyEvent) runtime.Signal {
			switch ev.Key {
			case terminal.KeyCtrlC:
				return runtime.Quit{}
			case terminal.KeyRight:
				return runtime.MoveFocus{Direction: runtime.FocusRight}
			}
			return nil
		},
	})
	done := runApp(t, app)

	be.InjectKey(terminal.KeyEvent{Key: terminal.KeyRight})
	be.InjectRune('x')
	be.InjectKey(terminal.KeyEvent{Key: terminal.KeyCtrlC, Ctrl: true})
	waitDone(t, done)

	if right.keys != 1 {
		t.Errorf("focus should have moved right; right saw %d keys", right.keys)
	}
	if left.keys != 0 {
		t.Errorf("left saw %d keys after focus moved, want 0", left.keys)
	}
}
