package glboot

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
)

// App owns every graphics object created at startup.
type App struct {
	device   Device
	program  Program
	quad     *Geometry
	clear    mgl32.Vec4
	vertices []mgl32.Vec2
}

// AppOption configures an App.
type AppOption func(*App)

// WithClearColor sets the background the render loop clears to.
func WithClearColor(c mgl32.Vec4) AppOption {
	return func(a *App) { a.clear = c }
}

// WithVertices replaces the uploaded quad.
func WithVertices(v []mgl32.Vec2) AppOption {
	return func(a *App) { a.vertices = v }
}

// Setup runs the one-time startup sequence: both shader sources are read
// from fsys before any graphics object is created, then the stages are
// compiled and linked and the quad is uploaded. Any failure is fatal to the
// caller; objects created before the failure are released.
func Setup(d Device, fsys fs.FS, opts ...AppOption) (*App, error) {
	a := &App{
		device:   d,
		clear:    DefaultClearColor,
		vertices: QuadVertices,
	}
	for _, opt := range opts {
		opt(a)
	}

	vertexSrc, err := ReadShaderSource(fsys, StageVertex)
	if err != nil {
		return nil, err
	}
	fragmentSrc, err := ReadShaderSource(fsys, StageFragment)
	if err != nil {
		return nil, err
	}

	vertex, err := CompileShader(d, StageVertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	fragment, err := CompileShader(d, StageFragment, fragmentSrc)
	if err != nil {
		vertex.Delete()
		return nil, err
	}

	a.program, err = LinkProgram(d, &vertex, &fragment)
	if err != nil {
		return nil, err
	}

	a.quad, err = NewQuad(d, a.vertices)
	if err != nil {
		a.program.Delete()
		return nil, fmt.Errorf("quad geometry: %w", err)
	}

	Logger().Info("setup complete", "program", a.program.ID(), "vertices", a.quad.Len())
	return a, nil
}

// Program returns the linked shader program.
func (a *App) Program() Program { return a.program }

// Geometry returns the uploaded quad.
func (a *App) Geometry() *Geometry { return a.quad }

// Run drives the render loop on w until it closes or ctx is cancelled and
// returns the number of frames rendered.
func (a *App) Run(ctx context.Context, w Window) int {
	a.program.Use()
	loop := NewLoop(a.device, w, a.clear)
	frames := loop.Run(ctx)
	Logger().Info("render loop finished", "frames", frames)
	return frames
}

// Delete releases the geometry and the program.
func (a *App) Delete() {
	if a.quad != nil {
		a.quad.Delete()
	}
	a.program.Delete()
}
