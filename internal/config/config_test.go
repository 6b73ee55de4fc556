package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 800 {
		t.Errorf("expected 800x800 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "ECG" {
		t.Errorf("expected title ECG, got %s", cfg.Window.Title)
	}
	if cfg.Window.Backend != "sdl" {
		t.Errorf("expected sdl backend, got %s", cfg.Window.Backend)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.TransZ != 6 {
		t.Errorf("expected camera z 6, got %f", cfg.Camera.TransZ)
	}

	if cfg.Input.RotateSensitivity != 0.001 {
		t.Errorf("expected rotate sensitivity 0.001, got %f", cfg.Input.RotateSensitivity)
	}

	if cfg.Cylinder.Sides < 3 {
		t.Errorf("default cylinder sides %d cannot build", cfg.Cylinder.Sides)
	}
	if cfg.Sphere.LongSegments < 3 || cfg.Sphere.LatSegments < 2 {
		t.Errorf("default sphere segments %d/%d cannot build", cfg.Sphere.LongSegments, cfg.Sphere.LatSegments)
	}
	for name, obj := range map[string]ObjectConfig{
		"box":      cfg.Box.ObjectConfig,
		"cylinder": cfg.Cylinder.ObjectConfig,
		"sphere":   cfg.Sphere.ObjectConfig,
	} {
		if !obj.Enabled {
			t.Errorf("%s: expected enabled by default", name)
		}
		if obj.ScaleX != 1 || obj.ScaleY != 1 || obj.ScaleZ != 1 {
			t.Errorf("%s: expected unit scale", name)
		}
	}

	if cfg.PointLight.AttenuationConst != 1 {
		t.Errorf("expected constant attenuation 1, got %f", cfg.PointLight.AttenuationConst)
	}
	if cfg.Shaders.Dir != "assets/shaders" {
		t.Errorf("expected shader dir assets/shaders, got %s", cfg.Shaders.Dir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadINI(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.ini", `
[window]
width = 1024
height = 768
title = Shapes

[camera]
fov = 45
near = 0.5
far = 50

[cylinder]
sides = 24
transX = -2.5
shader = gouraud

[sphere]
enabled = false
radius = 1.5 ; inline comment

[directionalLight]
dirX = 1
dirY = 0

[pointLight]
attenuationQuad = 0.25

[logging]
level = debug
`)

	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Shapes" {
		t.Errorf("expected title Shapes, got %s", cfg.Window.Title)
	}
	if cfg.Camera.FOV != 45 || cfg.Camera.Near != 0.5 || cfg.Camera.Far != 50 {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	if cfg.Cylinder.Sides != 24 || cfg.Cylinder.TransX != -2.5 || cfg.Cylinder.Shader != "gouraud" {
		t.Errorf("unexpected cylinder %+v", cfg.Cylinder)
	}
	if cfg.Sphere.Enabled {
		t.Error("expected sphere disabled")
	}
	if cfg.Sphere.Radius != 1.5 {
		t.Errorf("expected sphere radius 1.5, got %f", cfg.Sphere.Radius)
	}
	if cfg.DirectionalLight.DirX != 1 || cfg.DirectionalLight.DirY != 0 {
		t.Errorf("unexpected light direction %+v", cfg.DirectionalLight)
	}
	if cfg.PointLight.AttenuationQuad != 0.25 {
		t.Errorf("expected quadratic attenuation 0.25, got %f", cfg.PointLight.AttenuationQuad)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Untouched keys keep their defaults.
	def := Default()
	if cfg.Box != def.Box {
		t.Errorf("box section absent, expected defaults, got %+v", cfg.Box)
	}
	if cfg.Sphere.LongSegments != def.Sphere.LongSegments {
		t.Errorf("expected default long segments, got %d", cfg.Sphere.LongSegments)
	}
}

func TestLoadINIMalformedValuesKeepDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.ini", `
[window]
width = wide
vsync = maybe

[box]
ka =
alpha = shiny
`)

	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	def := Default()
	if cfg.Window.Width != def.Window.Width {
		t.Errorf("expected default width, got %d", cfg.Window.Width)
	}
	if cfg.Window.VSync != def.Window.VSync {
		t.Error("expected default vsync")
	}
	if cfg.Box.Ka != def.Box.Ka || cfg.Box.Alpha != def.Box.Alpha {
		t.Errorf("expected default box material, got ka=%f alpha=%f", cfg.Box.Ka, cfg.Box.Alpha)
	}
}

func TestLoadINICaseInsensitive(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.ini", `
[DirectionalLight]
RED = 0.25

[Camera]
TRANSZ = 9
`)

	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DirectionalLight.Red != 0.25 {
		t.Errorf("expected red 0.25, got %f", cfg.DirectionalLight.Red)
	}
	if cfg.Camera.TransZ != 9 {
		t.Errorf("expected camera z 9, got %f", cfg.Camera.TransZ)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
window:
  width: 1920
  backend: glfw
box:
  width: 2
  transY: 0.5
  shader: gouraud
pointLight:
  transY: 3
`)

	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 800 {
		t.Errorf("expected default height 800, got %d", cfg.Window.Height)
	}
	if cfg.Window.Backend != "glfw" {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Box.Width != 2 || cfg.Box.TransY != 0.5 || cfg.Box.Shader != "gouraud" {
		t.Errorf("unexpected box %+v", cfg.Box)
	}
	if !cfg.Box.Enabled {
		t.Error("inline object fields not in the file should keep defaults")
	}
	if cfg.PointLight.TransY != 3 {
		t.Errorf("expected point light y 3, got %f", cfg.PointLight.TransY)
	}
}

func TestLoadYAMLInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.yaml", `
window:
  width: not a number
  invalid syntax here
`)

	cfg := Default()
	if err := LoadFile(cfg, path); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	if err := LoadFile(cfg, "/nonexistent/path/settings.ini"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "config.yaml")

	cfg := Default()
	cfg.Window.Title = "saved"
	cfg.Sphere.LatSegments = 9
	cfg.Cylinder.RotY = 0.125
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Default()
	if err := LoadFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", loaded, cfg)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	writeFile(t, ".", "config.yaml", "window:\n  width: 640\n")
	if path := findConfigFile(); path != "config.yaml" {
		t.Errorf("expected config.yaml, got %q", path)
	}

	writeFile(t, ".", "settings.ini", "[window]\nwidth = 640\n")
	if path := findConfigFile(); path != "settings.ini" {
		t.Errorf("expected settings.ini to win over config.yaml, got %q", path)
	}

	writeFile(t, ".", filepath.Join("assets", "settings.ini"), "[window]\n")
	if path := findConfigFile(); path != filepath.Join("assets", "settings.ini") {
		t.Errorf("expected assets/settings.ini first, got %q", path)
	}
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{"-debug", "-width", "1280", "-backend", "glfw", "-write-config", "out.yaml"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flags.Debug || flags.Width != 1280 || flags.Backend != "glfw" || flags.WriteConfig != "out.yaml" {
		t.Errorf("unexpected flags %+v", flags)
	}

	if _, err := ParseFlags([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name:  "debug flag",
			flags: Flags{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:  "width and height flags",
			flags: Flags{Width: 2560, Height: 1440},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
		},
		{
			name:  "backend flag",
			flags: Flags{Backend: "glfw"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Backend != "glfw" {
					t.Errorf("expected glfw, got %s", cfg.Window.Backend)
				}
			},
		},
		{
			name:  "zero values leave config alone",
			flags: Flags{},
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Error("expected defaults")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.ini", "[window]\nwidth = 1600\nheight = 900\n")

	cfg, used, err := Load(&Flags{Config: path, Width: 1920})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if used != path {
		t.Errorf("expected %s to be reported, got %s", path, used)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.ini", "[camera]\nnear = 10\nfar = 1\n")

	if _, _, err := Load(&Flags{Config: path}); err == nil {
		t.Error("expected error for far < near")
	}
}
