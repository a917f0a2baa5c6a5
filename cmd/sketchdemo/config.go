package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch/surface"
)

// autoBackend selects the backend by the scene's requirements.
const autoBackend = "auto"

// Config controls a demo run. It is read from an optional YAML file and
// then overridden by flags that were set explicitly.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Output    string  `yaml:"output"`
	Frames    int     `yaml:"frames"`
	Scene     string  `yaml:"scene"`
	Backend   string  `yaml:"backend"`
	Tolerance float64 `yaml:"tolerance"`
	Verbose   bool    `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Width:   800,
		Height:  600,
		Output:  "demo.png",
		Frames:  1,
		Scene:   "shapes",
		Backend: "image",
	}
}

// loadConfigFile reads YAML into cfg. Keys missing from the file keep
// their current values.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// parseArgs builds the configuration from command-line arguments.
func parseArgs(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("sketchdemo", flag.ContinueOnError)
	var (
		width     = fs.Int("width", cfg.Width, "image width")
		height    = fs.Int("height", cfg.Height, "image height")
		output    = fs.String("output", cfg.Output, "output file; frames are numbered before the extension")
		frames    = fs.Int("frames", cfg.Frames, "number of frames to render")
		scene     = fs.String("scene", cfg.Scene, "scene to render: "+strings.Join(sceneNames(), ", "))
		backend   = fs.String("backend", cfg.Backend, "surface backend: "+strings.Join(surface.Names(), ", ")+" or "+autoBackend)
		tolerance = fs.Float64("tolerance", cfg.Tolerance, "curve flattening tolerance in pixels (0 for the backend default)")
		verbose   = fs.Bool("v", cfg.Verbose, "log debug output")
		config    = fs.String("config", "", "YAML config file")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *config != "" {
		if err := loadConfigFile(*config, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "output":
			cfg.Output = *output
		case "frames":
			cfg.Frames = *frames
		case "scene":
			cfg.Scene = *scene
		case "backend":
			cfg.Backend = *backend
		case "tolerance":
			cfg.Tolerance = *tolerance
		case "v":
			cfg.Verbose = *verbose
		}
	})
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("invalid frame count %d", c.Frames)
	}
	if _, ok := scenes[c.Scene]; !ok {
		return fmt.Errorf("unknown scene %q (have %s)", c.Scene, strings.Join(sceneNames(), ", "))
	}
	if c.Output == "" {
		return fmt.Errorf("empty output path")
	}
	return nil
}

// frameName returns the output path of frame i. Single-frame runs use
// the output path unchanged.
func (c Config) frameName(i int) string {
	if c.Frames == 1 {
		return c.Output
	}
	ext := filepath.Ext(c.Output)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(c.Output, ext), i, ext)
}
