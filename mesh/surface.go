package mesh

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/flatten"
	"github.com/gogpu/sketch/internal/stroke"
)

// Tolerance is the default flattening tolerance in device pixels.
const Tolerance = 0.25

// ErrInvalidSize is returned when resizing to non-positive dimensions.
var ErrInvalidSize = errors.New("mesh: width and height must be positive")

// Kind selects how a batch is rendered.
type Kind int

const (
	// KindConvex batches are drawn in a single pass without stencil.
	KindConvex Kind = iota
	// KindStencil batches write their fan into the stencil buffer, then
	// draw their cover quad where the stencil is non-zero.
	KindStencil
	// KindImage batches draw textured quads from TexturedVertices.
	KindImage
)

var kindNames = [...]string{
	KindConvex:  "Convex",
	KindStencil: "Stencil",
	KindImage:   "Image",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Batch is one draw call. Vertex ranges index Vertices for solid kinds
// and TexturedVertices for KindImage.
type Batch struct {
	Kind  Kind
	First int
	Count int

	// CoverFirst and CoverCount locate the cover quad of a KindStencil
	// batch.
	CoverFirst int
	CoverCount int

	// Image indexes Images for KindImage batches and is -1 otherwise.
	Image int

	// Smooth selects linear rather than nearest sampling.
	Smooth bool

	// Scissor is the device-space clip of the batch.
	Scissor image.Rectangle

	Color [4]float32
}

// Surface is a DrawingSurface that turns draw calls into GPU-ready
// vertex data. It is not safe for concurrent use.
type Surface struct {
	width, height int
	matrix        sketch.Matrix
	tolerance     float64
	scissor       image.Rectangle

	vertices []byte
	textured []byte
	batches  []Batch
	images   []*image.NRGBA

	clear    sketch.Color
	hasClear bool

	scratch *sketch.Path
	frames  int
}

var (
	_ sketch.DrawingSurface = (*Surface)(nil)
	_ sketch.Flusher        = (*Surface)(nil)
	_ sketch.Resizer        = (*Surface)(nil)
)

// NewSurface creates an empty surface. Sizes below one are raised to one.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 1), max(height, 1)
	return &Surface{
		width:     width,
		height:    height,
		matrix:    sketch.Identity(),
		tolerance: Tolerance,
		scissor:   image.Rect(0, 0, width, height),
		scratch:   sketch.NewPath(),
	}
}

// Width returns the surface width.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height.
func (s *Surface) Height() int { return s.height }

// SetTolerance sets the flattening tolerance in device pixels.
// Non-positive values are ignored.
func (s *Surface) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		s.tolerance = tolerance
	}
}

// Vertices returns the solid vertex data, laid out as Layout describes.
func (s *Surface) Vertices() []byte { return s.vertices }

// TexturedVertices returns the textured vertex data, laid out as
// TexturedLayout describes.
func (s *Surface) TexturedVertices() []byte { return s.textured }

// VertexCount returns the number of solid vertices.
func (s *Surface) VertexCount() int { return len(s.vertices) / Stride }

// Vertex decodes the i-th solid vertex.
func (s *Surface) Vertex(i int) Vertex { return decodeVertex(s.vertices, i*Stride) }

// TexturedVertex decodes the i-th textured vertex.
func (s *Surface) TexturedVertex(i int) TexturedVertex {
	return decodeTexturedVertex(s.textured, i*TexturedStride)
}

// Batches returns the draw calls in submission order.
func (s *Surface) Batches() []Batch { return s.batches }

// Images returns the textures referenced by KindImage batches.
func (s *Surface) Images() []*image.NRGBA { return s.images }

// ClearColor returns the color of the last Clear, if any since Reset.
func (s *Surface) ClearColor() (sketch.Color, bool) { return s.clear, s.hasClear }

// Frames returns the number of flushes.
func (s *Surface) Frames() int { return s.frames }

// Reset discards staged geometry. The transform and clip are kept.
func (s *Surface) Reset() {
	s.vertices = s.vertices[:0]
	s.textured = s.textured[:0]
	s.batches = s.batches[:0]
	s.images = nil
	s.hasClear = false
}

// Clear discards everything staged so far and records c as the clear
// color of the render pass.
func (s *Surface) Clear(c sketch.Color) {
	s.Reset()
	s.clear, s.hasClear = c, true
}

// SetPixel stages a one-pixel quad at device coordinates. The transform
// and clip do not apply.
func (s *Surface) SetPixel(x, y int, c sketch.Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	color := premultiplied(c)
	first := s.VertexCount()
	s.vertices = quad(s.vertices, sketch.Rect{X1: float64(x), Y1: float64(y), X2: float64(x + 1), Y2: float64(y + 1)}, color)
	s.batches = append(s.batches, Batch{
		Kind: KindConvex, First: first, Count: 6, Image: -1,
		Scissor: image.Rect(0, 0, s.width, s.height), Color: color,
	})
}

// DrawLine strokes the segment (x1, y1)-(x2, y2).
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	s.DrawPath(path, p)
}

// DrawRect fills or strokes a rectangle.
func (s *Surface) DrawRect(x1, y1, x2, y2 float64, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.AddRect(x1, y1, x2, y2)
	s.DrawPath(path, p)
}

// DrawOval fills or strokes the ellipse inscribed in the bounds.
func (s *Surface) DrawOval(x1, y1, x2, y2 float64, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.AddEllipse(x1, y1, x2, y2)
	s.DrawPath(path, p)
}

// DrawArc fills or strokes part of the oval inscribed in the bounds.
func (s *Surface) DrawArc(x1, y1, x2, y2, startDeg, sweepDeg float64, useCenter bool, p sketch.Paint) {
	path := s.scratch
	path.Reset()
	path.AddArc(x1, y1, x2, y2, startDeg, sweepDeg, useCenter, false)
	s.DrawPath(path, p)
}

// DrawPath stages a fill or a stroke of path. A fill made of one convex
// contour becomes a KindConvex batch, anything else a KindStencil batch.
func (s *Surface) DrawPath(path *sketch.Path, p sketch.Paint) {
	if path == nil || path.IsEmpty() || s.scissor.Empty() {
		return
	}
	var lines []flatten.Polyline
	if p.Style == sketch.PaintStroke {
		scale := s.matrix.MaxScale()
		if scale == 0 || math.IsNaN(scale) {
			return
		}
		tol := s.tolerance / scale
		e := stroke.NewExpander(stroke.FromPaint(p))
		e.SetTolerance(tol)
		outline := e.Expand(flatten.Path(path, sketch.Identity(), tol))
		lines = flatten.Path(outline, s.matrix, s.tolerance)
	} else {
		lines = flatten.Path(path, s.matrix, s.tolerance)
	}
	if len(lines) == 0 {
		return
	}

	color := premultiplied(p.Color)
	first := s.VertexCount()
	if p.Style != sketch.PaintStroke && len(lines) == 1 {
		if pts := distinct(lines[0].Points); isConvex(pts) {
			s.vertices = convexFill(s.vertices, pts, color, p.AntiAlias)
			s.batches = append(s.batches, Batch{
				Kind: KindConvex, First: first, Count: s.VertexCount() - first,
				Image: -1, Scissor: s.scissor, Color: color,
			})
			return
		}
	}

	s.vertices = stencilFan(s.vertices, lines, color)
	fan := s.VertexCount() - first
	if fan == 0 {
		return
	}
	s.vertices = coverQuad(s.vertices, lines, color)
	s.batches = append(s.batches, Batch{
		Kind: KindStencil, First: first, Count: fan,
		CoverFirst: first + fan, CoverCount: 6,
		Image: -1, Scissor: s.scissor, Color: color,
	})
}

// DrawBitmap stages the src region of img as a textured quad over the
// logical rectangle dst. A paint with a color filter sets the tint.
func (s *Surface) DrawBitmap(img image.Image, src image.Rectangle, dst sketch.Rect, p *sketch.Paint) {
	if img == nil {
		return
	}
	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.Width() == 0 || dst.Height() == 0 || s.scissor.Empty() {
		return
	}
	tex := s.texture(img)
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	u1, v1 := float32(float64(src.Min.X-b.Min.X)/w), float32(float64(src.Min.Y-b.Min.Y)/h)
	u2, v2 := float32(float64(src.Max.X-b.Min.X)/w), float32(float64(src.Max.Y-b.Min.Y)/h)

	tint := premultiplied(sketch.White)
	if p != nil && p.Filter != nil {
		tint = premultiplied(p.Filter.Multiply)
	}
	corner := func(x, y float64, u, v float32) {
		d := s.matrix.TransformPoint(sketch.Pt(x, y))
		s.textured = appendTexturedVertex(s.textured, float32(d.X), float32(d.Y), u, v, tint)
	}

	first := len(s.textured) / TexturedStride
	corner(dst.X1, dst.Y1, u1, v1)
	corner(dst.X2, dst.Y1, u2, v1)
	corner(dst.X2, dst.Y2, u2, v2)
	corner(dst.X1, dst.Y1, u1, v1)
	corner(dst.X2, dst.Y2, u2, v2)
	corner(dst.X1, dst.Y2, u1, v2)

	s.batches = append(s.batches, Batch{
		Kind: KindImage, First: first, Count: 6, Image: tex,
		Smooth: p == nil || p.AntiAlias, Scissor: s.scissor, Color: tint,
	})
}

// texture copies img into the texture list, reusing the last texture
// when the same image is drawn repeatedly.
func (s *Surface) texture(img image.Image) int {
	if n, ok := img.(*image.NRGBA); ok && len(s.images) > 0 {
		last := s.images[len(s.images)-1]
		if last == n {
			return len(s.images) - 1
		}
	}
	b := img.Bounds()
	cp := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(cp, cp.Bounds(), img, b.Min, draw.Src)
	s.images = append(s.images, cp)
	return len(s.images) - 1
}

// DrawText is ignored; text is not staged.
func (s *Surface) DrawText(str string, x, y float64, f sketch.Font, p sketch.Paint) {
	sketch.Logger().Debug("mesh: text not staged", "text", str)
}

// SetTransform replaces the device transform.
func (s *Surface) SetTransform(m sketch.Matrix) { s.matrix = m }

// ConcatTransform post-multiplies the device transform by m.
func (s *Surface) ConcatTransform(m sketch.Matrix) { s.matrix = s.matrix.Multiply(m) }

// Transform returns the device transform.
func (s *Surface) Transform() sketch.Matrix { return s.matrix }

// ClipRect intersects the scissor with the device bounds of the
// transformed rectangle. Under rotation the scissor is the bounding box
// of the rotated rectangle.
func (s *Surface) ClipRect(x1, y1, x2, y2 float64) {
	corners := [4]sketch.Point{
		s.matrix.TransformPoint(sketch.Pt(x1, y1)),
		s.matrix.TransformPoint(sketch.Pt(x2, y1)),
		s.matrix.TransformPoint(sketch.Pt(x2, y2)),
		s.matrix.TransformPoint(sketch.Pt(x1, y2)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX, minY = math.Min(minX, c.X), math.Min(minY, c.Y)
		maxX, maxY = math.Max(maxX, c.X), math.Max(maxY, c.Y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	s.scissor = s.scissor.Intersect(r)
}

// ResetClip restores the full-surface scissor.
func (s *Surface) ResetClip() {
	s.scissor = image.Rect(0, 0, s.width, s.height)
}

// Scissor returns the current device-space clip.
func (s *Surface) Scissor() image.Rectangle { return s.scissor }

// Capabilities reports anti-aliasing through coverage fringes and no
// text support.
func (s *Surface) Capabilities() sketch.Capabilities {
	return sketch.Capabilities{
		SupportsAntialias: true,
		Format:            gputypes.TextureFormatRGBA8Unorm,
	}
}

// Flush marks the end of a frame.
func (s *Surface) Flush() error {
	s.frames++
	sketch.Logger().Debug("mesh: frame staged",
		"batches", len(s.batches), "vertices", s.VertexCount(), "textures", len(s.images))
	return nil
}

// Resize changes the surface size and removes the clip. Staged geometry
// is kept.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("mesh: resize to %dx%d: %w", width, height, ErrInvalidSize)
	}
	s.width, s.height = width, height
	s.ResetClip()
	return nil
}
