// Command glboot opens a window, compiles the shaders under <res>/shaders,
// uploads a quad and clears the screen every frame until Escape is pressed.
//
// Usage:
//
//	devbox shell
//	go run ./cmd/glboot -res res
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glboot"
	"github.com/go-theft-auto/glboot/backend/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	glboot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		glboot.Logger().Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	glboot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	device, err := opengl.NewDevice()
	if err != nil {
		return err
	}

	app, err := glboot.Setup(device, os.DirFS(cfg.Resources), glboot.WithClearColor(cfg.ClearColor))
	if err != nil {
		return err
	}
	defer app.Delete()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.Run(ctx, window)
	return nil
}

// loadConfig builds the configuration from defaults, the optional -config
// file and the flags explicitly set on the command line, in that order.
func loadConfig(args []string) (glboot.Config, error) {
	fs := flag.NewFlagSet("glboot", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	resources := fs.String("res", glboot.DefaultResources, "resource root containing shaders/")
	width := fs.Int("width", glboot.DefaultWidth, "window width")
	height := fs.Int("height", glboot.DefaultHeight, "window height")
	title := fs.String("title", glboot.DefaultTitle, "window title")
	vsync := fs.Bool("vsync", true, "wait for vertical sync when presenting")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return glboot.Config{}, err
	}

	cfg := glboot.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = glboot.LoadConfig(*configPath); err != nil {
			return glboot.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "res":
			cfg.Resources = *resources
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "title":
			cfg.Window.Title = *title
		case "vsync":
			cfg.Window.VSync = *vsync
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, cfg.Validate()
}
