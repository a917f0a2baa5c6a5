package sketch

import (
	"image"
)

// ImageFormat describes how an Image's packed pixels are interpreted.
type ImageFormat int

const (
	// FormatRGB pixels are opaque; the alpha byte is ignored.
	FormatRGB ImageFormat = iota + 1
	// FormatARGB pixels carry alpha in the high byte.
	FormatARGB
	// FormatAlpha pixels hold only alpha, in the low byte. They draw as
	// white with that alpha, so a tint colors them.
	FormatAlpha
)

// Image is a pixel source for Graphics.Image.
//
// Graphics caches an uploaded copy of every image it draws and refreshes
// it only when Modified reports true, clearing the flag afterwards.
// Implementations must be comparable, typically pointer types.
type Image interface {
	Width() int
	Height() int
	Format() ImageFormat

	// Pixels returns width*height packed pixels in row-major order.
	Pixels() []uint32

	Modified() bool
	SetModified(modified bool)
}

// ImageMode sets how Image interprets its position arguments. It panics
// for modes other than ImageCorner, ImageCorners and ImageCenter.
func (g *Graphics) ImageMode(mode ImageMode) {
	switch mode {
	case ImageCorner, ImageCorners, ImageCenter:
		g.style.ImageMode = mode
	default:
		fail("imageMode", ErrInvalidImageMode)
	}
}

// Image draws img at its natural size.
func (g *Graphics) Image(img Image, x, y float64) {
	w, h := img.Width(), img.Height()
	if w <= 0 || h <= 0 {
		return
	}
	fw, fh := float64(w), float64(h)
	switch g.style.ImageMode {
	case ImageCorner, ImageCorners:
		g.image(img, x, y, x+fw, y+fh, 0, 0, w, h)
	case ImageCenter:
		x1, y1 := x-fw/2, y-fh/2
		g.image(img, x1, y1, x1+fw, y1+fh, 0, 0, w, h)
	}
}

// ImageSize draws img scaled into a rectangle placed according to the
// image mode.
func (g *Graphics) ImageSize(img Image, a, b, c, d float64) {
	g.ImageRegion(img, a, b, c, d, 0, 0, img.Width(), img.Height())
}

// ImageRegion draws the source region (u1, v1)-(u2, v2) of img, in image
// pixels, scaled into a rectangle placed according to the image mode.
func (g *Graphics) ImageRegion(img Image, a, b, c, d float64, u1, v1, u2, v2 int) {
	if img.Width() <= 0 || img.Height() <= 0 {
		return
	}
	switch g.style.ImageMode {
	case ImageCorner:
		if c < 0 {
			a += c
			c = -c
		}
		if d < 0 {
			b += d
			d = -d
		}
		g.image(img, a, b, a+c, b+d, u1, v1, u2, v2)
	case ImageCorners:
		if c < a {
			a, c = c, a
		}
		if d < b {
			b, d = d, b
		}
		g.image(img, a, b, c, d, u1, v1, u2, v2)
	case ImageCenter:
		if c < 0 {
			c = -c
		}
		if d < 0 {
			d = -d
		}
		x1, y1 := a-c/2, b-d/2
		g.image(img, x1, y1, x1+c, y1+d, u1, v1, u2, v2)
	}
}

func (g *Graphics) image(img Image, x1, y1, x2, y2 float64, u1, v1, u2, v2 int) {
	src := g.upload(img)
	g.surface.DrawBitmap(src,
		image.Rect(u1, v1, u2, v2),
		Rect{X1: x1, Y1: y1, X2: x2, Y2: y2},
		g.style.Paint.TintPaint())
}

// upload returns the cached copy of img, refreshing it when the image was
// modified or resized.
func (g *Graphics) upload(img Image) *image.NRGBA {
	w, h := img.Width(), img.Height()
	cached := g.images[img]
	if cached != nil && cached.Rect.Dx() == w && cached.Rect.Dy() == h && !img.Modified() {
		return cached
	}
	if cached == nil || cached.Rect.Dx() != w || cached.Rect.Dy() != h {
		cached = image.NewNRGBA(image.Rect(0, 0, w, h))
		g.images[img] = cached
	}

	format := img.Format()
	px := img.Pixels()
	for i := 0; i < w*h && i < len(px); i++ {
		c := Color(px[i])
		switch format {
		case FormatAlpha:
			c = Color(px[i]<<24 | 0xFFFFFF)
		case FormatRGB:
			c = c.WithAlpha(0xFF)
		}
		o := i * 4
		cached.Pix[o+0] = c.R()
		cached.Pix[o+1] = c.G()
		cached.Pix[o+2] = c.B()
		cached.Pix[o+3] = c.A()
	}
	img.SetModified(false)
	Logger().Debug("sketch: image uploaded", "width", w, "height", h)
	return cached
}

// ForgetImage drops the cached copy of img.
func (g *Graphics) ForgetImage(img Image) {
	delete(g.images, img)
}
