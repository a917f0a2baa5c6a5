package recording

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/sketch"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Each Add operation copies mutable resources so later changes by the
// caller do not leak into the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*sketch.Path
	images []*image.NRGBA
	fonts  []sketch.Font
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*sketch.Path, 0, 64),
		images: make([]*image.NRGBA, 0, 8),
		fonts:  make([]sketch.Font, 0, 4),
	}
}

// AddPath adds a copy of path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *sketch.Path) PathRef {
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *sketch.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddImage adds a copy of img to the pool and returns its reference.
// Consecutive draws of unchanged pixels share one copy.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if n := len(p.images); n > 0 && samePixels(p.images[n-1], img) {
		// #nosec G115 -- pool size is bounded by available memory
		return ImageRef(uint32(n - 1))
	}
	b := img.Bounds()
	cp := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(cp, cp.Bounds(), img, b.Min, draw.Src)
	p.images = append(p.images, cp)
	// #nosec G115 -- pool size is bounded by available memory
	return ImageRef(uint32(len(p.images) - 1))
}

// samePixels reports whether img is an NRGBA image with exactly the
// pixels of pooled.
func samePixels(pooled *image.NRGBA, img image.Image) bool {
	n, ok := img.(*image.NRGBA)
	if !ok || n.Rect.Dx() != pooled.Rect.Dx() || n.Rect.Dy() != pooled.Rect.Dy() {
		return false
	}
	w := n.Rect.Dx() * 4
	for y := 0; y < n.Rect.Dy(); y++ {
		a := n.Pix[n.PixOffset(n.Rect.Min.X, n.Rect.Min.Y+y):][:w]
		b := pooled.Pix[y*pooled.Stride:][:w]
		if string(a) != string(b) {
			return false
		}
	}
	return true
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) *image.NRGBA {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// AddFont adds a font to the pool, reusing the reference of an equal
// font already pooled.
func (p *ResourcePool) AddFont(f sketch.Font) FontRef {
	for i, have := range p.fonts {
		if have == f {
			// #nosec G115 -- pool size is bounded by available memory
			return FontRef(uint32(i))
		}
	}
	p.fonts = append(p.fonts, f)
	// #nosec G115 -- pool size is bounded by available memory
	return FontRef(uint32(len(p.fonts) - 1))
}

// GetFont returns the font for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetFont(ref FontRef) sketch.Font {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of fonts in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.images = p.images[:0]
	p.fonts = p.fonts[:0]
}
