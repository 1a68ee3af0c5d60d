package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glboot"
)

// Window adapts a GLFW window to glboot.Window. GLFW callbacks queue
// events which PollEvents hands out after glfw.PollEvents returns.
type Window struct {
	window  *glfw.Window
	pending []glboot.Event
	drained []glboot.Event
}

// NewWindow creates a window with an OpenGL 4.1 core context and makes the
// context current. glfw.Init must have been called on the main thread.
func NewWindow(cfg glboot.WindowConfig) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: window}
	window.SetKeyCallback(w.keyCallback)
	window.SetMouseButtonCallback(w.mouseButtonCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	return w, nil
}

func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

func (w *Window) SetShouldClose(value bool) { w.window.SetShouldClose(value) }

func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

// PollEvents processes pending GLFW events and returns the ones queued by
// the callbacks. The slice is reused by the next call.
func (w *Window) PollEvents() []glboot.Event {
	glfw.PollEvents()
	w.drained = append(w.drained[:0], w.pending...)
	w.pending = w.pending[:0]
	return w.drained
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w.pending = append(w.pending, glboot.Event{
		Kind:   glboot.KeyEvent,
		Key:    glfwKeyToKey(key),
		Action: glfwAction(action),
	})
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	w.pending = append(w.pending, glboot.Event{
		Kind:   glboot.MouseButtonEvent,
		Button: int(button),
		Action: glfwAction(action),
	})
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.pending = append(w.pending, glboot.Event{
		Kind:   glboot.ResizeEvent,
		Width:  width,
		Height: height,
	})
}

func glfwAction(action glfw.Action) glboot.Action {
	switch action {
	case glfw.Press:
		return glboot.Press
	case glfw.Repeat:
		return glboot.Repeat
	default:
		return glboot.Release
	}
}

// glfwKeyToKey maps GLFW keys to glboot keys.
func glfwKeyToKey(key glfw.Key) glboot.Key {
	switch key {
	case glfw.KeyEscape:
		return glboot.KeyEscape
	case glfw.KeyEnter:
		return glboot.KeyEnter
	case glfw.KeySpace:
		return glboot.KeySpace
	case glfw.KeyTab:
		return glboot.KeyTab
	case glfw.KeyBackspace:
		return glboot.KeyBackspace
	case glfw.KeyLeft:
		return glboot.KeyLeft
	case glfw.KeyRight:
		return glboot.KeyRight
	case glfw.KeyUp:
		return glboot.KeyUp
	case glfw.KeyDown:
		return glboot.KeyDown
	case glfw.KeyQ:
		return glboot.KeyQ
	case glfw.KeyF1:
		return glboot.KeyF1
	default:
		return glboot.KeyUnknown
	}
}

var _ glboot.Window = (*Window)(nil)
