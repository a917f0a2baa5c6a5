// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/flatten"
	"github.com/gogpu/sketch/internal/stroke"
)

// FaceFont is a sketch.Font that can provide a rasterizable face at its
// current size. ImageSurface only draws text in fonts implementing it.
type FaceFont interface {
	sketch.Font
	Face() font.Face
}

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(sketch.White)
//	s.DrawOval(300, 200, 500, 400, sketch.Paint{Color: sketch.Black, AntiAlias: true})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	matrix    sketch.Matrix
	tolerance float64

	// clip is the device-space clip coverage, nil when unclipped.
	clip *image.Alpha

	rast    *vector.Rasterizer
	scratch *sketch.Path

	closed bool
}

var (
	_ sketch.DrawingSurface = (*ImageSurface)(nil)
	_ sketch.Flusher        = (*ImageSurface)(nil)
	_ sketch.Resizer        = (*ImageSurface)(nil)
	_ io.Closer             = (*ImageSurface)(nil)
)

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:     bounds.Dx(),
		height:    bounds.Dy(),
		img:       img,
		matrix:    sketch.Identity(),
		tolerance: flatten.Tolerance,
		rast:      vector.NewRasterizer(0, 0),
		scratch:   sketch.NewPath(),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// SetTolerance sets the curve flattening tolerance in device pixels.
// Non-positive values are ignored.
func (s *ImageSurface) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		s.tolerance = tolerance
	}
}

// Transform returns the current device transform.
func (s *ImageSurface) Transform() sketch.Matrix {
	return s.matrix
}

// SetTransform replaces the device transform.
func (s *ImageSurface) SetTransform(m sketch.Matrix) {
	s.matrix = m
}

// ConcatTransform post-multiplies the device transform by m.
func (s *ImageSurface) ConcatTransform(m sketch.Matrix) {
	s.matrix = s.matrix.Multiply(m)
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c sketch.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// SetPixel writes c at device pixel (x, y).
func (s *ImageSurface) SetPixel(x, y int, c sketch.Color) {
	if s.closed || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.img.Set(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y, c.NRGBA())
}

// DrawLine strokes the segment (x1, y1)-(x2, y2).
func (s *ImageSurface) DrawLine(x1, y1, x2, y2 float64, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	s.DrawPath(path, p)
}

// DrawRect fills or strokes a rectangle.
func (s *ImageSurface) DrawRect(x1, y1, x2, y2 float64, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.AddRect(x1, y1, x2, y2)
	s.DrawPath(path, p)
}

// DrawOval fills or strokes the ellipse inscribed in the bounds.
func (s *ImageSurface) DrawOval(x1, y1, x2, y2 float64, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.AddEllipse(x1, y1, x2, y2)
	s.DrawPath(path, p)
}

// DrawArc fills or strokes part of the oval inscribed in the bounds. An
// arc filled without its center is closed by its chord.
func (s *ImageSurface) DrawArc(x1, y1, x2, y2, startDeg, sweepDeg float64, useCenter bool, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.AddArc(x1, y1, x2, y2, startDeg, sweepDeg, useCenter, false)
	s.DrawPath(path, p)
}

// DrawPath fills or strokes a path.
func (s *ImageSurface) DrawPath(path *sketch.Path, p sketch.Paint) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}
	if p.Style == sketch.PaintStroke {
		s.stroke(path, p)
		return
	}
	s.fill(flatten.Path(path, s.matrix, s.tolerance), p.Color, p.AntiAlias)
}

// stroke expands the path in logical space so the stroke width follows
// the transform, then fills the outline.
func (s *ImageSurface) stroke(path *sketch.Path, p sketch.Paint) {
	scale := s.matrix.MaxScale()
	if scale == 0 || math.IsNaN(scale) {
		return
	}
	tol := s.tolerance / scale

	e := stroke.NewExpander(stroke.FromPaint(p))
	e.SetTolerance(tol)
	outline := e.Expand(flatten.Path(path, sketch.Identity(), tol))
	s.fill(flatten.Path(outline, s.matrix, s.tolerance), p.Color, p.AntiAlias)
}

// fill composites c through the coverage of the device-space polylines.
func (s *ImageSurface) fill(lines []flatten.Polyline, c sketch.Color, antiAlias bool) {
	cover, r := s.coverage(lines)
	if cover == nil {
		return
	}
	if s.clip != nil {
		s.applyClip(cover, r)
	}
	if !antiAlias {
		threshold(cover)
	}
	draw.DrawMask(s.img, r.Add(s.img.Rect.Min), image.NewUniform(c.NRGBA()), image.Point{}, cover, image.Point{}, draw.Over)
}

// coverage rasterizes the polylines under the non-zero rule. The mask
// origin corresponds to device pixel r.Min. It returns nil when nothing
// lies on the surface.
func (s *ImageSurface) coverage(lines []flatten.Polyline) (*image.Alpha, image.Rectangle) {
	b := flatten.Bounds(lines)
	r := image.Rect(
		int(math.Floor(b.X1)), int(math.Floor(b.Y1)),
		int(math.Ceil(b.X2)), int(math.Ceil(b.Y2)),
	).Intersect(image.Rect(0, 0, s.width, s.height))
	if r.Empty() {
		return nil, r
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	s.rast.Reset(r.Dx(), r.Dy())
	for _, l := range lines {
		if len(l.Points) < 2 {
			continue
		}
		p0 := l.Points[0]
		s.rast.MoveTo(float32(p0.X-ox), float32(p0.Y-oy))
		for _, pt := range l.Points[1:] {
			s.rast.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
		}
		s.rast.ClosePath()
	}

	cover := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	s.rast.DrawOp = draw.Src
	s.rast.Draw(cover, cover.Bounds(), image.Opaque, image.Point{})
	return cover, r
}

func (s *ImageSurface) applyClip(cover *image.Alpha, r image.Rectangle) {
	for y := 0; y < r.Dy(); y++ {
		row := cover.Pix[y*cover.Stride : y*cover.Stride+r.Dx()]
		clipRow := s.clip.Pix[(r.Min.Y+y)*s.clip.Stride+r.Min.X:]
		for x := range row {
			row[x] = uint8(uint32(row[x]) * uint32(clipRow[x]) / 255)
		}
	}
}

// threshold turns partial coverage into all-or-nothing coverage.
func threshold(a *image.Alpha) {
	for i, v := range a.Pix {
		if v >= 128 {
			a.Pix[i] = 0xFF
		} else {
			a.Pix[i] = 0
		}
	}
}

// ClipRect intersects the clip with a rectangle given in logical space.
// The clip is fixed in device space; later transforms do not move it.
func (s *ImageSurface) ClipRect(x1, y1, x2, y2 float64) {
	if s.closed {
		return
	}
	path := s.scratch
	path.Reset()
	path.AddRect(x1, y1, x2, y2)

	mask := image.NewAlpha(image.Rect(0, 0, s.width, s.height))
	cover, r := s.coverage(flatten.Path(path, s.matrix, s.tolerance))
	if cover != nil {
		draw.Draw(mask, r, cover, image.Point{}, draw.Src)
	}
	if s.clip != nil {
		for i := range mask.Pix {
			mask.Pix[i] = uint8(uint32(mask.Pix[i]) * uint32(s.clip.Pix[i]) / 255)
		}
	}
	s.clip = mask
}

// ResetClip removes clipping.
func (s *ImageSurface) ResetClip() {
	s.clip = nil
}

// Clipped reports whether a clip is active.
func (s *ImageSurface) Clipped() bool {
	return s.clip != nil
}

// DrawBitmap draws the src region of img scaled into the logical
// rectangle dst. A paint with a color filter tints the image.
func (s *ImageSurface) DrawBitmap(img image.Image, src image.Rectangle, dst sketch.Rect, p *sketch.Paint) {
	if s.closed || img == nil || src.Empty() || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	source := img
	if p != nil && p.Filter != nil {
		source = tinted(img, src, p.Filter.Multiply)
		src = source.Bounds()
	}

	sx := dst.Width() / float64(src.Dx())
	sy := dst.Height() / float64(src.Dy())
	toDst := sketch.Matrix{
		A: sx, C: dst.X1 - float64(src.Min.X)*sx,
		E: sy, F: dst.Y1 - float64(src.Min.Y)*sy,
	}
	s.transform(source, src, toDst, p == nil || p.AntiAlias)
}

// tinted returns the r region of img multiplied by tint.
func tinted(img image.Image, r image.Rectangle, tint sketch.Color) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			c := sketch.FromColor(img.At(r.Min.X+x, r.Min.Y+y)).Multiply(tint)
			out.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return out
}

// transform composites the src region of img, mapped to logical space by
// m, through the device transform and the clip.
func (s *ImageSurface) transform(img image.Image, src image.Rectangle, m sketch.Matrix, smooth bool) {
	var interp draw.Interpolator = draw.NearestNeighbor
	if smooth {
		interp = draw.BiLinear
	}
	var opts *draw.Options
	if s.clip != nil {
		opts = &draw.Options{DstMask: s.clip, DstMaskP: s.img.Rect.Min}
	}
	dev := sketch.Translate(float64(s.img.Rect.Min.X), float64(s.img.Rect.Min.Y)).
		Multiply(s.matrix).Multiply(m)
	interp.Transform(s.img, dev.Aff3(), img, src, draw.Over, opts)
}

// DrawText draws s with its baseline origin at (x, y). Fonts that do not
// implement FaceFont are skipped.
func (s *ImageSurface) DrawText(str string, x, y float64, f sketch.Font, p sketch.Paint) {
	if s.closed || str == "" {
		return
	}
	ff, ok := f.(FaceFont)
	if !ok {
		sketch.Logger().Debug("surface: font has no face, text skipped", "text", str)
		return
	}
	face := ff.Face()
	b, _ := font.BoundString(face, str)
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	maxX, maxY := b.Max.X.Ceil(), b.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(p.Color.NRGBA()),
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(str)
	if !p.AntiAlias {
		thresholdRGBA(glyphs)
	}

	s.transform(glyphs, glyphs.Bounds(), sketch.Translate(x+float64(minX), y+float64(minY)), p.AntiAlias)
}

// thresholdRGBA is threshold for premultiplied glyph images.
func thresholdRGBA(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 || a == 0xFF {
			continue
		}
		if a < 128 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0
			continue
		}
		for k := 0; k < 3; k++ {
			img.Pix[i+k] = uint8(min(255, uint32(img.Pix[i+k])*255/uint32(a)))
		}
		img.Pix[i+3] = 0xFF
	}
}

// Capabilities returns the surface capabilities.
func (s *ImageSurface) Capabilities() sketch.Capabilities {
	return sketch.Capabilities{
		SupportsGradientFill: false,
		SupportsAntialias:    true,
		SupportsText:         true,
		Format:               gputypes.TextureFormatRGBA8Unorm,
	}
}

// Resize replaces the backing image with a transparent one of the new
// size. The transform is kept and the clip removed.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: resize to %dx%d: %w", width, height, ErrInvalidSize)
	}
	s.width, s.height = width, height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.clip = nil
	return nil
}

// Flush ensures all pending operations are complete.
// For ImageSurface, this is a no-op.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Rect.Min, draw.Src)
	return result
}

// SavePNG writes the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return fmt.Errorf("surface: save %s: surface closed", path)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	return f.Close()
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.clip = nil
	s.rast = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}
