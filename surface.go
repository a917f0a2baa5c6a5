package sketch

import (
	"image"

	"github.com/gogpu/gputypes"
)

// LineCap specifies the shape of line endpoints on a surface.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota
	// LineCapRound specifies a semicircular line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// LineJoin specifies the shape of line joins on a surface.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// DefaultMiterLimit is the miter length limit used by stroke paints.
const DefaultMiterLimit = 4.0

// PaintStyle selects whether a paint fills or strokes geometry.
type PaintStyle uint8

const (
	// PaintFill fills the interior of the geometry.
	PaintFill PaintStyle = iota
	// PaintStroke outlines the geometry.
	PaintStroke
)

// ColorFilter modulates source pixels of image draws.
type ColorFilter struct {
	// Multiply is multiplied channel-wise into every source pixel.
	Multiply Color
}

// Paint is the surface-level projection of the paint state for one draw.
// Surfaces receive it by value and must not retain references from it.
type Paint struct {
	Style      PaintStyle
	Color      Color
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	AntiAlias  bool

	// Filter is only set on image paints when a tint is active.
	Filter *ColorFilter
}

// Capabilities describes optional features of a DrawingSurface. Graphics
// queries it once at construction.
type Capabilities struct {
	// SupportsGradientFill indicates gradient shaders are available.
	SupportsGradientFill bool

	// SupportsAntialias indicates anti-aliased rendering is available.
	SupportsAntialias bool

	// SupportsText indicates DrawText renders glyphs.
	SupportsText bool

	// Format is the pixel format of the surface's backing store.
	Format gputypes.TextureFormat
}

// DrawingSurface is the backend that paints geometry for a Graphics.
//
// Coordinates passed to drawing calls are in logical space; the surface
// maps them through its own device transform, which Graphics keeps equal
// to the logical transform via SetTransform and ConcatTransform.
//
// Paths and paints are only valid for the duration of the call. Surfaces
// that keep geometry must copy it (Path.Clone).
type DrawingSurface interface {
	// DrawLine draws a straight segment with a stroke paint.
	DrawLine(x1, y1, x2, y2 float64, p Paint)

	// DrawPath fills or strokes a path.
	DrawPath(path *Path, p Paint)

	// DrawRect fills or strokes the rectangle with corners (x1, y1), (x2, y2).
	DrawRect(x1, y1, x2, y2 float64, p Paint)

	// DrawOval fills or strokes the ellipse inscribed in the given bounds.
	DrawOval(x1, y1, x2, y2 float64, p Paint)

	// DrawArc draws part of the oval inscribed in the bounds, starting at
	// startDeg and sweeping sweepDeg degrees. With useCenter the arc is
	// closed through the center.
	DrawArc(x1, y1, x2, y2, startDeg, sweepDeg float64, useCenter bool, p Paint)

	// DrawBitmap draws the src region of img scaled into dst. p is nil for
	// an untinted draw.
	DrawBitmap(img image.Image, src image.Rectangle, dst Rect, p *Paint)

	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64, f Font, p Paint)

	// SetPixel writes c at device pixel (x, y), ignoring transform and clip.
	SetPixel(x, y int, c Color)

	// Clear fills the whole surface with c, ignoring transform and clip.
	Clear(c Color)

	// SetTransform replaces the device transform.
	SetTransform(m Matrix)

	// ConcatTransform post-multiplies the device transform by m.
	ConcatTransform(m Matrix)

	// ClipRect intersects the clip with a rectangle in logical space.
	ClipRect(x1, y1, x2, y2 float64)

	// ResetClip removes clipping.
	ResetClip()

	// Capabilities reports the surface's optional features.
	Capabilities() Capabilities
}

// Flusher is implemented by surfaces that buffer work until the end of a frame.
type Flusher interface {
	Flush() error
}

// Resizer is implemented by surfaces whose backing store follows SetSize.
type Resizer interface {
	Resize(width, height int) error
}
