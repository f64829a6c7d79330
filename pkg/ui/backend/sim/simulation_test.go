package sim

import (
	"testing"

	"github.com/vantage-tui/vantage/pkg/ui/backend"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

func newTestBackend(t *testing.T, w, h int) *Backend {
	t.Helper()
	be := New(w, h)
	if err := be.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(be.Fini)
	return be
}

func TestRenderAndCapture(t *testing.T) {
	be := newTestBackend(t, 20, 5)
	style := backend.DefaultStyle()

	be.SetContent(2, 1, 'h', nil, style)
	be.SetContent(3, 1, 'i', nil, style)
	be.Show()

	if !be.ContainsText("hi") {
		t.Fatalf("screen should contain %q:\n%s", "hi", be.Capture())
	}
	if x, y := be.FindText("hi"); x != 2 || y != 1 {
		t.Errorf("FindText = (%d, %d), want (2, 1)", x, y)
	}
	if got := be.CaptureRegion(2, 1, 2, 1); got != "hi" {
		t.Errorf("CaptureRegion = %q, want %q", got, "hi")
	}
}

func TestCellStyleRoundTrip(t *testing.T) {
	be := newTestBackend(t, 10, 3)
	style := backend.DefaultStyle().
		Foreground(backend.ColorRGB(0x8c, 0xbe, 0xfa)).
		Bold(true)

	be.SetContent(1, 1, 'x', nil, style)
	be.Show()

	if got := be.CellStyle(1, 1); got != style {
		t.Errorf("style did not round-trip: got %+v, want %+v", got, style)
	}
}

func TestKeyInjectionRoundTrip(t *testing.T) {
	be := newTestBackend(t, 10, 3)

	be.InjectRune('x')
	want := terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'}
	if got := be.PollEvent(); got != terminal.Event(want) {
		t.Errorf("rune event = %+v, want %+v", got, want)
	}

	be.InjectKey(terminal.KeyEvent{Key: terminal.KeyUp, Shift: true})
	ev, ok := be.PollEvent().(terminal.KeyEvent)
	if !ok || ev.Key != terminal.KeyUp || !ev.Shift {
		t.Errorf("shifted arrow did not round-trip: %+v", ev)
	}

	be.InjectKey(terminal.KeyEvent{Key: terminal.KeyCtrlC, Ctrl: true})
	ev, ok = be.PollEvent().(terminal.KeyEvent)
	if !ok || ev.Key != terminal.KeyCtrlC {
		t.Errorf("ctrl+c did not round-trip: %+v", ev)
	}
}

func TestRunesInjectInOrder(t *testing.T) {
	be := newTestBackend(t, 10, 3)

	be.InjectRunes("abc")
	for _, want := range "abc" {
		ev, ok := be.PollEvent().(terminal.KeyEvent)
		if !ok || ev.Rune != want {
			t.Fatalf("got %+v, want rune %q", ev, want)
		}
	}
}

func TestClickInjectionRoundTrip(t *testing.T) {
	be := newTestBackend(t, 10, 3)

	be.InjectClick(5, 2)

	press, ok := be.PollEvent().(terminal.MouseEvent)
	if !ok {
		t.Fatal("expected a mouse event first")
	}
	if press.X != 5 || press.Y != 2 || press.Button != terminal.MouseLeft || press.Action != terminal.MousePress {
		t.Errorf("press = %+v", press)
	}

	release, ok := be.PollEvent().(terminal.MouseEvent)
	if !ok {
		t.Fatal("expected a release event second")
	}
	if release.Action != terminal.MouseRelease {
		t.Errorf("release = %+v", release)
	}
}

func TestWheelInjection(t *testing.T) {
	be := newTestBackend(t, 10, 3)

	be.InjectMouse(terminal.MouseEvent{X: 1, Y: 1, Button: terminal.MouseWheelDown, Action: terminal.MousePress})

	ev, ok := be.PollEvent().(terminal.MouseEvent)
	if !ok || ev.Button != terminal.MouseWheelDown {
		t.Errorf("wheel event = %+v", ev)
	}
}

func TestResizeInjection(t *testing.T) {
	be := newTestBackend(t, 10, 3)

	be.InjectResize(20, 6)

	for {
		ev := be.PollEvent()
		if ev == nil {
			t.Fatal("event stream ended before the resize arrived")
		}
		resize, ok := ev.(terminal.ResizeEvent)
		if !ok {
			continue
		}
		if resize.Width != 20 || resize.Height != 6 {
			t.Errorf("resize = %+v, want 20x6", resize)
		}
		break
	}

	if w, h := be.Size(); w != 20 || h != 6 {
		t.Errorf("Size = (%d, %d), want (20, 6)", w, h)
	}
}
