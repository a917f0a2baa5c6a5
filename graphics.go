package sketch

import (
	"fmt"
	"image"
	"io"
)

// Graphics is the drawing context. It turns shape, transform and paint
// calls into DrawingSurface calls.
//
// A Graphics is not safe for concurrent use.
type Graphics struct {
	surface DrawingSurface
	caps    Capabilities
	width   int
	height  int
	drawing bool
	closed  bool

	transform *TransformStack
	style     Style
	styles    *styleStack

	// Shape in progress
	shape        ShapeKind
	vertices     *VertexBuffer
	path         *Path // polygon outline
	contour      *Path // contours of the polygon, merged at EndShape
	scratch      *Path // immediate triangles, quads and curves
	inContour    bool
	contourStart bool
	breakShape   bool

	// Curves
	curveWindow  [4]Point
	curveCount   int
	tightness    float64
	basis        curveBasis
	bezierDetail int
	curveDetail  int

	// Uploaded image pixels, keyed by source image.
	images map[Image]*image.NRGBA

	warned map[string]struct{}
	warnFn func(string)
}

// Ensure Graphics implements io.Closer.
var _ io.Closer = (*Graphics)(nil)

// NewGraphics creates a drawing context of the given size over s.
// The surface capabilities are queried once here.
//
//	canvas := surface.NewImageSurface(800, 600)
//	g := sketch.NewGraphics(canvas, 800, 600, sketch.WithFont(text.Default()))
func NewGraphics(s DrawingSurface, width, height int, opts ...Option) *Graphics {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	g := &Graphics{
		surface:      s,
		caps:         s.Capabilities(),
		width:        width,
		height:       height,
		transform:    NewTransformStack(options.matrixDepth),
		style:        defaultStyle(),
		styles:       newStyleStack(),
		vertices:     NewVertexBuffer(options.vertexCapacity),
		path:         NewPath(),
		contour:      NewPath(),
		scratch:      NewPath(),
		basis:        newCurveBasis(0),
		bezierDetail: DefaultBezierDetail,
		curveDetail:  DefaultCurveDetail,
		images:       make(map[Image]*image.NRGBA),
		warned:       make(map[string]struct{}),
		warnFn:       options.warn,
	}
	g.style.Paint.Smooth = options.smooth
	if options.font != nil {
		g.style.TextFont = options.font
		g.applyTextSize(options.font.Size())
	}
	return g
}

// Width returns the logical width.
func (g *Graphics) Width() int { return g.width }

// Height returns the logical height.
func (g *Graphics) Height() int { return g.height }

// Surface returns the surface the Graphics draws on.
func (g *Graphics) Surface() DrawingSurface { return g.surface }

// Capabilities returns the surface capabilities cached at creation.
func (g *Graphics) Capabilities() Capabilities { return g.caps }

// Drawing reports whether a frame is open.
func (g *Graphics) Drawing() bool { return g.drawing }

// BeginDraw opens a frame. The transform is reset to identity and the
// matrix stack is emptied; style settings persist between frames.
func (g *Graphics) BeginDraw() {
	g.transform.Clear()
	g.surface.SetTransform(Identity())
	g.drawing = true
}

// EndDraw closes the frame and flushes surfaces that buffer work.
// It panics if a shape is still open.
func (g *Graphics) EndDraw() error {
	if g.shape != noShape {
		fail("endDraw", fmt.Errorf("%s shape not ended: %w", g.shape, ErrShapeOpen))
	}
	g.drawing = false
	if f, ok := g.surface.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("sketch: flush surface: %w", err)
		}
	}
	return nil
}

// SetSize changes the logical size. Surfaces implementing Resizer are
// resized to match.
func (g *Graphics) SetSize(width, height int) error {
	if r, ok := g.surface.(Resizer); ok {
		if err := r.Resize(width, height); err != nil {
			return fmt.Errorf("sketch: resize surface to %dx%d: %w", width, height, err)
		}
	}
	g.width = width
	g.height = height
	return nil
}

// Close releases uploaded image data. Close is idempotent.
func (g *Graphics) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	clear(g.images)
	return nil
}

// warn reports an ignored operation once per distinct message.
func (g *Graphics) warn(op, msg string) {
	if _, seen := g.warned[msg]; seen {
		return
	}
	g.warned[msg] = struct{}{}
	Logger().Warn(msg, "op", op)
	if g.warnFn != nil {
		g.warnFn(msg)
	}
}

// warnDepth reports a 3D call on this 2D renderer.
func (g *Graphics) warnDepth(op string) {
	g.warn(op, op+"() with x, y, and z coordinates can only be used with a 3D renderer")
}

// warnUnavailable reports a call the renderer does not implement.
func (g *Graphics) warnUnavailable(op string) {
	g.warn(op, op+"() is not available with this renderer")
}
