/*
Package glboot is a minimal OpenGL bootstrap: it compiles and links a
vertex/fragment shader pair, uploads a static quad and runs a clear-screen
render loop until Escape is pressed.

The package is backend agnostic. Every graphics call goes through a Device
and every platform call through a Window; backend/opengl provides both on
top of go-gl and GLFW.

# Quick Start

	window, _ := opengl.NewWindow(cfg.Window)
	device, _ := opengl.NewDevice()

	app, err := glboot.Setup(device, os.DirFS("res"))
	if err != nil {
	    // fatal: missing source, compile or link failure
	}
	defer app.Delete()

	app.Run(ctx, window)

# Resources

Shader sources are read from <root>/shaders/vertex.glsl and
<root>/shaders/fragment.glsl. Both are read before any graphics object is
created, so a missing file never leaves driver objects behind.

# Errors

Startup failures are returned as *SourceError, *CompileError, *LinkError or
wrap ErrHandleUnavailable. Errors reported by the driver while the render
loop runs are logged at warn level and do not stop the loop.
*/
package glboot
