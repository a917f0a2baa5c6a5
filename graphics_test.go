package sketch_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/recording"
)

var (
	red  = sketch.ARGB(255, 255, 0, 0)
	blue = sketch.ARGB(255, 0, 0, 255)
)

// fakeFont measures every rune as half the font size wide.
type fakeFont struct{ size float64 }

func (f *fakeFont) Size() float64                  { return f.size }
func (f *fakeFont) WithSize(s float64) sketch.Font { return &fakeFont{size: s} }
func (f *fakeFont) Width(s string) float64         { return float64(utf8.RuneCountInString(s)) * f.size / 2 }
func (f *fakeFont) Ascent() float64                { return f.size * 0.8 }
func (f *fakeFont) Descent() float64               { return f.size * 0.2 }

// newTestGraphics returns a 100x100 Graphics over a recorder, with an open
// frame and no recorded commands.
func newTestGraphics(t *testing.T, opts ...sketch.Option) (*sketch.Graphics, *recording.Recorder) {
	t.Helper()
	rec := recording.NewRecorder(100, 100)
	g := sketch.NewGraphics(rec, 100, 100, opts...)
	g.BeginDraw()
	rec.Reset()
	return g, rec
}

func commandsOf[T recording.Command](rec *recording.Recorder) []T {
	var out []T
	for _, c := range rec.Commands() {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func recordedPaths(rec *recording.Recorder) []*sketch.Path {
	var out []*sketch.Path
	for _, c := range commandsOf[recording.DrawPathCommand](rec) {
		out = append(out, rec.Resources().GetPath(c.Path))
	}
	return out
}

// outline returns the end points of the segments of subpath i.
func outline(p *sketch.Path, i int) []sketch.Point {
	var pts []sketch.Point
	for _, s := range p.Subpaths()[i].Segments {
		pts = append(pts, s.End())
	}
	return pts
}

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want %v", want)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic %v, want %v", r, want)
		}
		var pe *sketch.PreconditionError
		if !errors.As(err, &pe) || pe.Op == "" {
			t.Errorf("panic value %T is not a *PreconditionError with an op", r)
		}
	}()
	fn()
}

func TestPreconditions(t *testing.T) {
	tests := []struct {
		name string
		opts []sketch.Option
		fn   func(g *sketch.Graphics)
		want error
	}{
		{"vertex outside shape", nil, func(g *sketch.Graphics) { g.Vertex(1, 1) }, sketch.ErrNoShape},
		{"endShape outside shape", nil, func(g *sketch.Graphics) { g.EndShape(sketch.Open) }, sketch.ErrNoShape},
		{"curveVertex outside shape", nil, func(g *sketch.Graphics) { g.CurveVertex(1, 1) }, sketch.ErrNoShape},
		{"beginShape twice", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Polygon)
			g.BeginShape(sketch.Lines)
		}, sketch.ErrShapeOpen},
		{"endDraw with open shape", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Triangles)
			_ = g.EndDraw()
		}, sketch.ErrShapeOpen},
		{"popMatrix underflow", nil, func(g *sketch.Graphics) { g.PopMatrix() }, sketch.ErrMatrixStackUnderflow},
		{"pushMatrix overflow", []sketch.Option{sketch.WithMatrixStackDepth(2)}, func(g *sketch.Graphics) {
			g.PushMatrix()
			g.PushMatrix()
			g.PushMatrix()
		}, sketch.ErrMatrixStackOverflow},
		{"popStyle underflow", nil, func(g *sketch.Graphics) { g.PopStyle() }, sketch.ErrStyleStackUnderflow},
		{"pop underflow", nil, func(g *sketch.Graphics) { g.Pop() }, sketch.ErrStyleStackUnderflow},
		{"bezierVertex without vertex", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Polygon)
			g.BezierVertex(1, 1, 2, 2, 3, 3)
		}, sketch.ErrNoCurrentPoint},
		{"bezierVertex outside polygon", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Triangles)
			g.Vertex(0, 0)
			g.BezierVertex(1, 1, 2, 2, 3, 3)
		}, sketch.ErrBezierOutsidePolygon},
		{"quadraticVertex at contour start", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Polygon)
			g.Vertex(0, 0)
			g.BeginContour()
			g.QuadraticVertex(1, 1, 2, 2)
		}, sketch.ErrNoCurrentPoint},
		{"curveVertex outside polygon", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Lines)
			g.CurveVertex(1, 1)
		}, sketch.ErrCurveOutsidePolygon},
		{"beginContour outside shape", nil, func(g *sketch.Graphics) { g.BeginContour() }, sketch.ErrNoShape},
		{"beginContour outside polygon", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Quads)
			g.BeginContour()
		}, sketch.ErrContourOutsidePolygon},
		{"nested contour", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Polygon)
			g.BeginContour()
			g.BeginContour()
		}, sketch.ErrNestedContour},
		{"endContour without beginContour", nil, func(g *sketch.Graphics) {
			g.BeginShape(sketch.Polygon)
			g.EndContour()
		}, sketch.ErrNoContour},
		{"invalid image mode", nil, func(g *sketch.Graphics) { g.ImageMode(sketch.ImageMode(42)) }, sketch.ErrInvalidImageMode},
		{"text without font", nil, func(g *sketch.Graphics) { g.Text("hi", 0, 0) }, sketch.ErrNoFont},
		{"textWidth without font", nil, func(g *sketch.Graphics) { g.TextWidth("hi") }, sketch.ErrNoFont},
		{"textSize without font", nil, func(g *sketch.Graphics) { g.TextSize(20) }, sketch.ErrNoFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGraphics(t, tt.opts...)
			expectPanic(t, tt.want, func() { tt.fn(g) })
		})
	}
}

func TestFrameLifecycle(t *testing.T) {
	g, rec := newTestGraphics(t)
	if !g.Drawing() {
		t.Error("Drawing() = false inside BeginDraw")
	}
	g.PushMatrix()
	g.Translate(5, 5)

	if err := g.EndDraw(); err != nil {
		t.Fatalf("EndDraw: %v", err)
	}
	if g.Drawing() {
		t.Error("Drawing() = true after EndDraw")
	}
	if rec.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", rec.Flushes())
	}

	g.BeginDraw()
	if g.MatrixDepth() != 0 || !g.GetMatrix().IsIdentity() {
		t.Errorf("BeginDraw kept depth %d, matrix %v", g.MatrixDepth(), g.GetMatrix())
	}
	if c, ok := rec.Last().(recording.SetTransformCommand); !ok || !c.Matrix.IsIdentity() {
		t.Errorf("BeginDraw did not reset the surface transform, last = %#v", rec.Last())
	}
}

func TestSetSize(t *testing.T) {
	g, rec := newTestGraphics(t)
	if err := g.SetSize(50, 60); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if g.Width() != 50 || g.Height() != 60 {
		t.Errorf("size = %dx%d, want 50x60", g.Width(), g.Height())
	}
	if rec.Width() != 50 || rec.Height() != 60 {
		t.Errorf("surface size = %dx%d, want 50x60", rec.Width(), rec.Height())
	}
	if _, ok := rec.Last().(recording.ResizeCommand); !ok {
		t.Errorf("last command = %#v, want ResizeCommand", rec.Last())
	}

	err := g.SetSize(0, 10)
	if !errors.Is(err, recording.ErrInvalidSize) {
		t.Errorf("SetSize(0, 10) = %v, want ErrInvalidSize", err)
	}
	if g.Width() != 50 {
		t.Errorf("failed SetSize changed width to %d", g.Width())
	}
}

func TestClose(t *testing.T) {
	g, _ := newTestGraphics(t)
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestWarningsReportedOnce(t *testing.T) {
	var warnings []string
	g, rec := newTestGraphics(t, sketch.WithWarningHandler(func(msg string) {
		warnings = append(warnings, msg)
	}))

	g.Vertex3(1, 2, 3)
	g.Vertex3(1, 2, 3)
	g.RotateX(1)
	g.RotateY(1)
	g.Scale3(1, 2, 3)
	g.Translate3(1, 2, 3)
	g.StrokeWeight(0)
	g.StrokeWeight(0)

	if len(warnings) != 6 {
		t.Errorf("got %d warnings, want 6: %q", len(warnings), warnings)
	}
	if rec.Len() != 0 {
		t.Errorf("ignored calls recorded %d commands", rec.Len())
	}
}

func TestSmoothWithoutAntialias(t *testing.T) {
	var warnings []string
	rec := recording.NewRecorder(10, 10)
	rec.SetCapabilities(sketch.Capabilities{})
	g := sketch.NewGraphics(rec, 10, 10, sketch.WithWarningHandler(func(msg string) {
		warnings = append(warnings, msg)
	}))
	if g.Capabilities().SupportsAntialias {
		t.Fatal("capabilities not taken from the surface")
	}
	g.Smooth()
	if len(warnings) != 1 {
		t.Errorf("warnings = %q, want one", warnings)
	}
}

func TestSurfaceAccessor(t *testing.T) {
	g, rec := newTestGraphics(t)
	if g.Surface() != rec {
		t.Error("Surface() does not return the recorder")
	}
	if !g.Capabilities().SupportsText {
		t.Error("recorder capabilities lost")
	}
}
