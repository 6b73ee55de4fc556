package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// It also returns the file that was read, or "" when none was found.
func Load(flags *Flags) (*Config, string, error) {
	if flags == nil {
		flags = &Flags{}
	}

	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := flags.Config
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := LoadFile(cfg, configPath); err != nil {
			return nil, "", fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, configPath, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		filepath.Join("assets", "settings.ini"),
		"settings.ini",
		"config.yaml",
		filepath.Join(ConfigDir(), "settings.ini"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "ShapeView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "ShapeView")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shapeview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shapeview")
	}
}

// LoadFile merges a config file into cfg. The format follows the extension:
// .yaml and .yml are YAML, anything else is INI.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return loadINI(cfg, data)
	}
}

// loadINI reads INI data over cfg. Section and key names are case
// insensitive. Missing keys and values that fail to parse keep the current
// value.
func loadINI(cfg *Config, data []byte) error {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return err
	}

	w := section{f.Section("window")}
	w.getInt("width", &cfg.Window.Width)
	w.getInt("height", &cfg.Window.Height)
	w.getString("title", &cfg.Window.Title)
	w.getString("backend", &cfg.Window.Backend)
	w.getBool("fullscreen", &cfg.Window.Fullscreen)
	w.getBool("vsync", &cfg.Window.VSync)

	c := section{f.Section("camera")}
	c.getFloat("fov", &cfg.Camera.FOV)
	c.getFloat("near", &cfg.Camera.Near)
	c.getFloat("far", &cfg.Camera.Far)
	c.getFloat("transX", &cfg.Camera.TransX)
	c.getFloat("transY", &cfg.Camera.TransY)
	c.getFloat("transZ", &cfg.Camera.TransZ)

	in := section{f.Section("input")}
	in.getFloat("rotateSensitivity", &cfg.Input.RotateSensitivity)
	in.getFloat("scrollSpeed", &cfg.Input.ScrollSpeed)

	box := section{f.Section("box")}
	box.getFloat("width", &cfg.Box.Width)
	box.getFloat("height", &cfg.Box.Height)
	box.getFloat("depth", &cfg.Box.Depth)
	box.object(&cfg.Box.ObjectConfig)

	cyl := section{f.Section("cylinder")}
	cyl.getFloat("height", &cfg.Cylinder.Height)
	cyl.getFloat("radius", &cfg.Cylinder.Radius)
	cyl.getInt("sides", &cfg.Cylinder.Sides)
	cyl.object(&cfg.Cylinder.ObjectConfig)

	sph := section{f.Section("sphere")}
	sph.getInt("longSegments", &cfg.Sphere.LongSegments)
	sph.getInt("latSegments", &cfg.Sphere.LatSegments)
	sph.getFloat("radius", &cfg.Sphere.Radius)
	sph.object(&cfg.Sphere.ObjectConfig)

	dl := section{f.Section("directionalLight")}
	dl.getFloat("red", &cfg.DirectionalLight.Red)
	dl.getFloat("green", &cfg.DirectionalLight.Green)
	dl.getFloat("blue", &cfg.DirectionalLight.Blue)
	dl.getFloat("dirX", &cfg.DirectionalLight.DirX)
	dl.getFloat("dirY", &cfg.DirectionalLight.DirY)
	dl.getFloat("dirZ", &cfg.DirectionalLight.DirZ)

	pl := section{f.Section("pointLight")}
	pl.getFloat("red", &cfg.PointLight.Red)
	pl.getFloat("green", &cfg.PointLight.Green)
	pl.getFloat("blue", &cfg.PointLight.Blue)
	pl.getFloat("transX", &cfg.PointLight.TransX)
	pl.getFloat("transY", &cfg.PointLight.TransY)
	pl.getFloat("transZ", &cfg.PointLight.TransZ)
	pl.getFloat("attenuationConst", &cfg.PointLight.AttenuationConst)
	pl.getFloat("attenuationLin", &cfg.PointLight.AttenuationLin)
	pl.getFloat("attenuationQuad", &cfg.PointLight.AttenuationQuad)

	section{f.Section("shaders")}.getString("dir", &cfg.Shaders.Dir)

	ss := section{f.Section("screenshot")}
	ss.getString("dir", &cfg.Screenshot.Dir)
	ss.getString("prefix", &cfg.Screenshot.Prefix)

	lg := section{f.Section("logging")}
	lg.getString("level", &cfg.Logging.Level)
	lg.getString("file", &cfg.Logging.LogFile)

	return nil
}

// section reads typed keys, using the current value as default.
type section struct {
	*ini.Section
}

func (s section) has(key string) bool {
	return s.HasKey(key) && strings.TrimSpace(s.Key(key).String()) != ""
}

func (s section) getFloat(key string, v *float32) {
	if s.has(key) {
		*v = float32(s.Key(key).MustFloat64(float64(*v)))
	}
}

func (s section) getInt(key string, v *int) {
	if s.has(key) {
		*v = s.Key(key).MustInt(*v)
	}
}

func (s section) getBool(key string, v *bool) {
	if s.has(key) {
		*v = s.Key(key).MustBool(*v)
	}
}

func (s section) getString(key string, v *string) {
	if s.HasKey(key) {
		*v = s.Key(key).String()
	}
}

func (s section) object(o *ObjectConfig) {
	s.getBool("enabled", &o.Enabled)
	s.getString("shader", &o.Shader)

	s.getFloat("transX", &o.TransX)
	s.getFloat("transY", &o.TransY)
	s.getFloat("transZ", &o.TransZ)
	s.getFloat("rotX", &o.RotX)
	s.getFloat("rotY", &o.RotY)
	s.getFloat("rotZ", &o.RotZ)
	s.getFloat("scaleX", &o.ScaleX)
	s.getFloat("scaleY", &o.ScaleY)
	s.getFloat("scaleZ", &o.ScaleZ)

	s.getFloat("red", &o.Red)
	s.getFloat("green", &o.Green)
	s.getFloat("blue", &o.Blue)

	s.getFloat("ka", &o.Ka)
	s.getFloat("kd", &o.Kd)
	s.getFloat("ks", &o.Ks)
	s.getFloat("alpha", &o.Alpha)
}
