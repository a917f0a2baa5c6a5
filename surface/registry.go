// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/sketch"
)

// Factory creates a surface. The registry validates opts before calling
// it, so factories may assume a positive size.
type Factory func(opts Options) (sketch.DrawingSurface, error)

// Requirements lists what a caller needs from a surface. The zero value
// accepts any surface.
type Requirements struct {
	Antialias bool
	Text      bool
}

// SatisfiedBy reports whether c meets every requirement.
func (r Requirements) SatisfiedBy(c sketch.Capabilities) bool {
	return (!r.Antialias || c.SupportsAntialias) && (!r.Text || c.SupportsText)
}

func (r Requirements) String() string {
	var need []string
	if r.Antialias {
		need = append(need, "antialias")
	}
	if r.Text {
		need = append(need, "text")
	}
	if len(need) == 0 {
		return "nothing"
	}
	return strings.Join(need, "+")
}

// Registry maps backend names to surface factories. Backends are tried
// in descending priority, ties broken by name.
//
//	func init() {
//	    surface.Register("mesh", 5, newMeshSurface)
//	}
//
//	s, err := surface.Open("mesh", surface.Options{Width: 800, Height: 600})
//	name, s, err := surface.Select(opts, surface.Requirements{Text: true})
type Registry struct {
	mu       sync.RWMutex
	backends map[string]backend
}

type backend struct {
	priority int
	factory  Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]backend)}
}

var defaultRegistry = NewRegistry()

// Register adds a backend to the default registry, replacing any backend
// of the same name.
func Register(name string, priority int, f Factory) {
	defaultRegistry.Register(name, priority, f)
}

// Names lists the backends of the default registry in selection order.
func Names() []string {
	return defaultRegistry.Names()
}

// Open creates a surface from the named backend of the default registry.
func Open(name string, opts Options) (sketch.DrawingSurface, error) {
	return defaultRegistry.Open(name, opts)
}

// Select creates a surface from the first backend of the default
// registry whose capabilities satisfy req.
func Select(opts Options, req Requirements) (string, sketch.DrawingSurface, error) {
	return defaultRegistry.Select(opts, req)
}

// Register adds a backend, replacing any backend of the same name.
func (r *Registry) Register(name string, priority int, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = backend{priority: priority, factory: f}
}

// Names lists the backends in selection order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(r.backends[b].priority, r.backends[a].priority); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

// Open creates a surface from the named backend.
func (r *Registry) Open(name string, opts Options) (sketch.DrawingSurface, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownBackendError{Name: name, Known: r.Names()}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("surface: open %s at %dx%d: %w", name, opts.Width, opts.Height, ErrInvalidSize)
	}
	s, err := b.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("surface: open %s: %w", name, err)
	}
	return s, nil
}

// Select tries the backends in order and returns the first surface whose
// Capabilities satisfy req, with its backend name. Rejected surfaces are
// closed.
func (r *Registry) Select(opts Options, req Requirements) (string, sketch.DrawingSurface, error) {
	var errs []error
	for _, name := range r.Names() {
		s, err := r.Open(name, opts)
		if err != nil {
			if errors.Is(err, ErrInvalidSize) {
				return "", nil, err
			}
			errs = append(errs, err)
			continue
		}
		if req.SatisfiedBy(s.Capabilities()) {
			return name, s, nil
		}
		sketch.Logger().Debug("surface: backend rejected", "backend", name, "need", req.String())
		if c, ok := s.(io.Closer); ok {
			_ = c.Close()
		}
	}
	err := fmt.Errorf("%w for %s", ErrNoBackendAvailable, req)
	return "", nil, errors.Join(append([]error{err}, errs...)...)
}

var (
	// ErrNoBackendAvailable is returned by Select when no backend
	// provides the required capabilities.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("surface: width and height must be positive")
)

// UnknownBackendError reports a backend name that was never registered.
type UnknownBackendError struct {
	Name  string
	Known []string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("surface: unknown backend %q (have %s)", e.Name, strings.Join(e.Known, ", "))
}

func init() {
	Register("image", 10, func(opts Options) (sketch.DrawingSurface, error) {
		s := NewImageSurface(opts.Width, opts.Height)
		if opts.Tolerance > 0 {
			s.SetTolerance(opts.Tolerance)
		}
		return s, nil
	})
}
