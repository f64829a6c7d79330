package runtime

// Signal is the closed set of effects an event handler can request from
// its caller. Handlers return nil when an event is fully absorbed or
// ignored; a non-nil signal bubbles from leaf to container to app until
// something acts on it. Unconsumed signals at the top are dropped.
type Signal interface {
	isSignal()
}

// OpenSearch asks the enclosing composition to show its search input.
type OpenSearch struct{}

func (OpenSearch) isSignal() {}

// OpenSort asks the enclosing composition to show its sort menu.
type OpenSort struct{}

func (OpenSort) isSignal() {}

// SelectColumn reports that the user picked a column, either by clicking
// its header or through the sort menu. Index counts visible columns in
// display order.
type SelectColumn struct {
	Index int
}

func (SelectColumn) isSignal() {}

// CloseOverlay asks the enclosing composition to dismiss its search
// input or sort menu.
type CloseOverlay struct{}

func (CloseOverlay) isSignal() {}

// FocusDirection is the direction of a focus movement request.
type FocusDirection int

const (
	FocusUp FocusDirection = iota
	FocusDown
	FocusLeft
	FocusRight
)

// MoveFocus asks the app to move keyboard focus to the neighboring
// widget in the given direction. Emitted by containers when a
// ctrl+shift+arrow reaches them unconsumed.
type MoveFocus struct {
	Direction FocusDirection
}

func (MoveFocus) isSignal() {}

// FocusWidget asks the app to hand keyboard focus to a specific widget,
// for example a search input that just opened.
type FocusWidget struct {
	ID WidgetID
}

func (FocusWidget) isSignal() {}

// Quit asks the app to stop its event loop.
type Quit struct{}

func (Quit) isSignal() {}
