package glboot

// Key identifies a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQ
	KeyF1
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyQ:
		return "Q"
	case KeyF1:
		return "F1"
	default:
		return "?"
	}
}

// Action is what happened to a key or button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// EventKind discriminates Event.
type EventKind int

const (
	KeyEvent EventKind = iota
	MouseButtonEvent
	ResizeEvent
)

// Event is a single input event drained from the window's queue.
type Event struct {
	Kind   EventKind
	Key    Key    // KeyEvent
	Action Action // KeyEvent, MouseButtonEvent
	Button int    // MouseButtonEvent
	Width  int    // ResizeEvent
	Height int    // ResizeEvent
}

// HandleEvent applies the input policy to one event: pressing Escape
// requests that w close. Every other event is ignored.
func HandleEvent(w Window, ev Event) {
	if ev.Kind == KeyEvent && ev.Key == KeyEscape && ev.Action == Press {
		Logger().Debug("close requested", "key", KeyName(ev.Key))
		w.SetShouldClose(true)
	}
}
