package glboot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Window defaults.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTitle     = "Default window"
	DefaultResources = "res"
)

// Config holds the startup settings of the bootstrap.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	Resources  string       `yaml:"resources"`
	ClearColor mgl32.Vec4   `yaml:"clear_color"`
	LogLevel   string       `yaml:"log_level"`
}

// WindowConfig describes the window created at startup.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			VSync:  true,
		},
		Resources:  DefaultResources,
		ClearColor: DefaultClearColor,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML file and layers it over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used to start.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return errors.New("window title must not be empty")
	}
	if c.Resources == "" {
		return errors.New("resource root must not be empty")
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear_color[%d] = %v outside [0, 1]", i, v)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", optionally with
// an offset such as "warn+2").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
