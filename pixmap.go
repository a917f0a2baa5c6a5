package sketch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is an in-memory Image backed by packed ARGB pixels.
type Pixmap struct {
	width    int
	height   int
	format   ImageFormat
	pixels   []uint32
	modified bool
}

// Ensure Pixmap implements both Image and image.Image.
var (
	_ Image       = (*Pixmap)(nil)
	_ image.Image = (*Pixmap)(nil)
)

// NewPixmap creates a transparent pixmap. It starts out modified so the
// first draw uploads it.
func NewPixmap(width, height int, format ImageFormat) *Pixmap {
	return &Pixmap{
		width:    width,
		height:   height,
		format:   format,
		pixels:   make([]uint32, width*height),
		modified: true,
	}
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Format returns the pixel format.
func (p *Pixmap) Format() ImageFormat { return p.format }

// Pixels returns the packed pixels in row-major order. Callers that write
// to the slice must call SetModified(true).
func (p *Pixmap) Pixels() []uint32 { return p.pixels }

// Modified reports whether the pixels changed since the last upload.
func (p *Pixmap) Modified() bool { return p.modified }

// SetModified sets the modified flag.
func (p *Pixmap) SetModified(m bool) { p.modified = m }

// Set writes one pixel and marks the pixmap modified.
func (p *Pixmap) Set(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pixels[y*p.width+x] = uint32(c)
	p.modified = true
}

// Get returns one pixel, or Transparent outside the pixmap.
func (p *Pixmap) Get(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return Color(p.pixels[y*p.width+x])
}

// FromImage creates an ARGB pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy(), FormatARGB)
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.pixels[y*pm.width+x] = uint32(FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("sketch: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Get(x, y)
	switch p.format {
	case FormatAlpha:
		return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: uint8(c)}
	case FormatRGB:
		return c.WithAlpha(0xFF).NRGBA()
	default:
		return c.NRGBA()
	}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
