package glboot

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the render loop state.
type State int

const (
	StateRunning State = iota
	StateClosing
)

func (s State) String() string {
	if s == StateClosing {
		return "closing"
	}
	return "running"
}

// DefaultClearColor is the background the loop clears to.
var DefaultClearColor = mgl32.Vec4{0.2, 0.2, 0.3, 1.0}

// Loop clears, error-checks, presents and dispatches input once per frame.
type Loop struct {
	device Device
	window Window
	clear  mgl32.Vec4
	frames int
}

// NewLoop creates a render loop drawing to w through d.
func NewLoop(d Device, w Window, clear mgl32.Vec4) *Loop {
	return &Loop{device: d, window: w, clear: clear}
}

// State reports whether the window has been asked to close.
func (l *Loop) State() State {
	if l.window.ShouldClose() {
		return StateClosing
	}
	return StateRunning
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() int { return l.frames }

// Step renders one frame and dispatches the events that arrived meanwhile.
func (l *Loop) Step() State {
	l.device.ClearColor(l.clear[0], l.clear[1], l.clear[2], l.clear[3])
	l.device.Clear(ColorBufferBit)

	l.checkError()

	l.window.SwapBuffers()
	for _, ev := range l.window.PollEvents() {
		HandleEvent(l.window, ev)
	}

	l.frames++
	return l.State()
}

// Run steps until the window's close flag is set. Cancelling ctx sets the
// close flag, so the loop always ends in StateClosing.
func (l *Loop) Run(ctx context.Context) int {
	for l.State() == StateRunning {
		if ctx.Err() != nil {
			Logger().Info("render loop cancelled", "cause", context.Cause(ctx))
			l.window.SetShouldClose(true)
			break
		}
		l.Step()
	}
	return l.frames
}

// checkError logs the pending API error, if any. Errors are not fatal.
func (l *Loop) checkError() {
	if code := l.device.Error(); code != NoError {
		Logger().Warn("OpenGL error", "code", uint32(code), "name", code.String(), "frame", l.frames)
	}
}
