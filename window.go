package glboot

// Window is a platform window owning the active graphics context and its
// event queue.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	// SwapBuffers presents the frame just rendered. It may block on vsync.
	SwapBuffers()
	// PollEvents processes pending platform events and returns them in
	// arrival order. The slice is only valid until the next call.
	PollEvents() []Event
}
