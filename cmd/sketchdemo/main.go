// Command sketchdemo renders demo sketches through any registered surface
// backend.
//
// Usage:
//
//	sketchdemo -scene paths -frames 30 -output frames/paths.png
//	sketchdemo -config demo.yml -backend recording
//	sketchdemo -scene text -backend auto
//
// The image backend writes PNG frames. The recording backend records each
// frame and replays it onto an image surface before saving. The mesh
// backend writes the staged vertex buffer of each frame to a .mesh file.
// The auto backend is the preferred registered backend whose capabilities
// cover the scene.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/mesh"
	"github.com/gogpu/sketch/recording"
	"github.com/gogpu/sketch/surface"
	"github.com/gogpu/sketch/text"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("sketchdemo: %v", err)
	}
	if cfg.Verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	backend, err := run(cfg)
	if err != nil {
		log.Fatalf("sketchdemo: %v", err)
	}
	log.Printf("rendered %d frame(s) of %q with the %s backend (%dx%d)", cfg.Frames, cfg.Scene, backend, cfg.Width, cfg.Height)
}

// run renders every frame of cfg.Scene and writes the output files. It
// returns the name of the backend that drew them.
func run(cfg Config) (string, error) {
	backend, s, err := openSurface(cfg)
	if err != nil {
		return "", err
	}
	if c, ok := s.(interface{ Close() error }); ok {
		defer func() { _ = c.Close() }()
	}
	cfg.Backend = backend

	g := sketch.NewGraphics(s, cfg.Width, cfg.Height,
		sketch.WithFont(text.DefaultFont()),
		sketch.WithWarningHandler(func(msg string) { slog.Warn(msg) }),
	)
	draw := scenes[cfg.Scene]

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	pb := progressbar.Default(int64(cfg.Frames), "rendering")
	defer func() { _ = pb.Close() }()

	for i := range cfg.Frames {
		g.BeginDraw()
		draw(g, float64(i)/float64(cfg.Frames))
		if err := g.EndDraw(); err != nil {
			return "", fmt.Errorf("frame %d: %w", i, err)
		}
		if err := save(s, cfg, cfg.frameName(i)); err != nil {
			return "", fmt.Errorf("frame %d: %w", i, err)
		}
		_ = pb.Add(1)
	}
	return backend, nil
}

// openSurface opens cfg.Backend, or with "auto" the preferred backend
// that can draw the scene.
func openSurface(cfg Config) (string, sketch.DrawingSurface, error) {
	opts := surface.Options{Width: cfg.Width, Height: cfg.Height, Tolerance: cfg.Tolerance}
	req := sceneNeeds[cfg.Scene]
	if cfg.Backend == autoBackend {
		return surface.Select(opts, req)
	}
	s, err := surface.Open(cfg.Backend, opts)
	if err != nil {
		return "", nil, err
	}
	if !req.SatisfiedBy(s.Capabilities()) {
		slog.Warn("backend cannot draw the whole scene", "backend", cfg.Backend, "scene", cfg.Scene, "need", req.String())
	}
	return cfg.Backend, s, nil
}

// save writes the current frame of s to name.
func save(s sketch.DrawingSurface, cfg Config, name string) error {
	switch dst := s.(type) {
	case *surface.ImageSurface:
		return dst.SavePNG(name)
	case *recording.Recorder:
		r := dst.FinishRecording()
		img := surface.NewImageSurface(cfg.Width, cfg.Height)
		if err := r.Playback(img); err != nil {
			return err
		}
		slog.Debug("replayed frame", "commands", r.Len(), "output", name)
		return img.SavePNG(name)
	case *mesh.Surface:
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".mesh"
		if err := os.WriteFile(name, dst.Vertices(), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		slog.Debug("staged frame", "batches", len(dst.Batches()), "vertices", dst.VertexCount(), "output", name)
		dst.Reset()
		return nil
	default:
		return errors.New("backend " + cfg.Backend + " cannot be saved")
	}
}
