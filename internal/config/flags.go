package config

import (
	"flag"
	"io"
)

// Flags holds command-line overrides.
type Flags struct {
	Config      string
	Debug       bool
	Width       int
	Height      int
	Backend     string
	WriteConfig string
}

// ParseFlags parses command-line arguments (without the program name).
// Call this early in main().
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("shapeview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.Config, "config", "", "Path to config file (.ini or .yaml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.StringVar(&f.Backend, "backend", "", "Window backend: sdl or glfw")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write the effective config as YAML to this path and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Backend != "" {
		cfg.Window.Backend = f.Backend
	}
}
