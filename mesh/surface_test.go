package mesh

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface"
)

var red = sketch.ARGB(255, 255, 0, 0)

func fillPaint(c sketch.Color, aa bool) sketch.Paint {
	return sketch.Paint{Style: sketch.PaintFill, Color: c, AntiAlias: aa}
}

func TestLayout(t *testing.T) {
	l := Layout()
	if len(l) != 1 || l[0].ArrayStride != Stride {
		t.Fatalf("Layout() = %+v, want one buffer of stride %d", l, Stride)
	}
	wantOffsets := []uint64{0, 8, 12}
	for i, a := range l[0].Attributes {
		if a.Offset != wantOffsets[i] || a.ShaderLocation != uint32(i) {
			t.Errorf("attribute %d = %+v, want offset %d location %d", i, a, wantOffsets[i], i)
		}
	}
	if tl := TexturedLayout(); tl[0].ArrayStride != TexturedStride || len(tl[0].Attributes) != 3 {
		t.Errorf("TexturedLayout() = %+v", tl)
	}
	if Topology() != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology() = %v, want triangle list", Topology())
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindConvex, "Convex"},
		{KindStencil, "Stencil"},
		{KindImage, "Image"},
		{Kind(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestIsConvex(t *testing.T) {
	pts := func(xy ...float64) []sketch.Point {
		var out []sketch.Point
		for i := 0; i+1 < len(xy); i += 2 {
			out = append(out, sketch.Pt(xy[i], xy[i+1]))
		}
		return out
	}
	tests := []struct {
		name string
		pts  []sketch.Point
		want bool
	}{
		{"square", pts(0, 0, 10, 0, 10, 10, 0, 10), true},
		{"counter-clockwise", pts(0, 0, 0, 10, 10, 10, 10, 0), true},
		{"triangle", pts(0, 0, 10, 0, 5, 8), true},
		{"collinear edge", pts(0, 0, 5, 0, 10, 0, 10, 10, 0, 10), true},
		{"concave", pts(0, 0, 10, 0, 10, 10, 5, 5, 0, 10), false},
		{"star", pts(0, -10, 6, 8, -10, -3, 10, -3, -6, 8), false},
		{"line", pts(0, 0, 5, 0, 10, 0), false},
		{"two points", pts(0, 0, 1, 1), false},
		{"closing duplicate", distinct(pts(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConvex(tt.pts); got != tt.want {
				t.Errorf("isConvex = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawRectConvex(t *testing.T) {
	s := NewSurface(100, 100)
	s.DrawRect(0, 0, 10, 10, fillPaint(red, false))

	b := s.Batches()
	if len(b) != 1 || b[0].Kind != KindConvex {
		t.Fatalf("batches = %+v, want one convex batch", b)
	}
	if b[0].Count != 12 || s.VertexCount() != 12 {
		t.Errorf("Count = %d, VertexCount = %d, want 12", b[0].Count, s.VertexCount())
	}
	v := s.Vertex(0)
	if v.X != 5 || v.Y != 5 || v.Coverage != 1 {
		t.Errorf("first vertex = %+v, want centroid (5, 5) at full coverage", v)
	}
	if v.Color != [4]float32{1, 0, 0, 1} {
		t.Errorf("color = %v, want opaque red", v.Color)
	}
	if b[0].Scissor != image.Rect(0, 0, 100, 100) {
		t.Errorf("scissor = %v, want the whole surface", b[0].Scissor)
	}
}

func TestDrawRectAntiAliasFringe(t *testing.T) {
	s := NewSurface(100, 100)
	s.DrawRect(0, 0, 10, 10, fillPaint(red, true))

	if got := s.Batches()[0].Count; got != 36 {
		t.Fatalf("Count = %d, want 36 (12 fan + 24 fringe)", got)
	}
	var outer int
	for i := 12; i < s.VertexCount(); i++ {
		v := s.Vertex(i)
		if v.Coverage == 0 {
			outer++
			if v.X > 0 && v.X < 10 && v.Y > 0 && v.Y < 10 {
				t.Errorf("fringe vertex %+v lies inside the rectangle", v)
			}
		}
	}
	if outer != 12 {
		t.Errorf("%d zero-coverage vertices, want 12", outer)
	}
}

func TestPremultipliedColor(t *testing.T) {
	s := NewSurface(10, 10)
	s.DrawRect(0, 0, 5, 5, fillPaint(sketch.ARGB(128, 255, 0, 0), false))
	c := s.Vertex(0).Color
	a := float32(128) / 255
	if c[0] != a || c[3] != a || c[1] != 0 {
		t.Errorf("color = %v, want premultiplied (%v, 0, 0, %v)", c, a, a)
	}
}

func TestDrawConcavePathStencil(t *testing.T) {
	s := NewSurface(100, 100)
	p := sketch.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(20, 10)
	p.LineTo(10, 10)
	p.LineTo(10, 20)
	p.LineTo(0, 20)
	p.Close()
	s.DrawPath(p, fillPaint(red, true))

	b := s.Batches()
	if len(b) != 1 || b[0].Kind != KindStencil {
		t.Fatalf("batches = %+v, want one stencil batch", b)
	}
	if b[0].Count != 12 || b[0].CoverFirst != 12 || b[0].CoverCount != 6 {
		t.Errorf("batch = %+v, want 4 fan triangles then a 6-vertex cover", b[0])
	}
	cover := s.Vertex(b[0].CoverFirst)
	if cover.X != -coverPadding || cover.Y != -coverPadding {
		t.Errorf("cover starts at (%v, %v), want padded bounds", cover.X, cover.Y)
	}
	far := s.Vertex(b[0].CoverFirst + 2)
	if far.X != 20+coverPadding || far.Y != 20+coverPadding {
		t.Errorf("cover corner = (%v, %v), want (21, 21)", far.X, far.Y)
	}
}

func TestStrokeUsesStencil(t *testing.T) {
	s := NewSurface(100, 100)
	s.DrawLine(10, 10, 90, 10, sketch.Paint{
		Style: sketch.PaintStroke, Color: red, Width: 4, Cap: sketch.LineCapButt, AntiAlias: true,
	})
	b := s.Batches()
	if len(b) != 1 || b[0].Kind != KindStencil || b[0].Count == 0 {
		t.Fatalf("batches = %+v, want one stencil batch", b)
	}
	for i := b[0].First; i < b[0].First+b[0].Count; i++ {
		v := s.Vertex(i)
		if v.Y < 8-1e-4 || v.Y > 12+1e-4 {
			t.Errorf("stroke vertex %+v outside the 4px band", v)
		}
	}
}

func TestDrawWithTransform(t *testing.T) {
	s := NewSurface(100, 100)
	s.SetTransform(sketch.Translate(10, 20))
	s.ConcatTransform(sketch.Scale(2, 2))
	s.DrawRect(0, 0, 10, 10, fillPaint(red, false))

	if v := s.Vertex(0); v.X != 20 || v.Y != 30 {
		t.Errorf("centroid = (%v, %v), want (20, 30)", v.X, v.Y)
	}
}

func TestClipRect(t *testing.T) {
	s := NewSurface(200, 200)
	s.SetTransform(sketch.Scale(2, 2))
	s.ClipRect(10, 10, 50, 50)
	if got, want := s.Scissor(), image.Rect(20, 20, 100, 100); got != want {
		t.Errorf("Scissor() = %v, want %v", got, want)
	}

	s.SetTransform(sketch.Identity())
	s.ClipRect(50, 0, 150, 60)
	if got, want := s.Scissor(), image.Rect(50, 20, 100, 60); got != want {
		t.Errorf("intersected Scissor() = %v, want %v", got, want)
	}

	s.DrawRect(0, 0, 10, 10, fillPaint(red, false))
	if got := s.Batches()[0].Scissor; got != image.Rect(50, 20, 100, 60) {
		t.Errorf("batch scissor = %v", got)
	}

	s.ClipRect(0, 0, 10, 10)
	s.DrawRect(0, 0, 10, 10, fillPaint(red, false))
	if len(s.Batches()) != 1 {
		t.Errorf("draw under an empty clip staged a batch")
	}

	s.ResetClip()
	if s.Scissor() != image.Rect(0, 0, 200, 200) {
		t.Errorf("ResetClip left scissor %v", s.Scissor())
	}
}

func TestDrawBitmap(t *testing.T) {
	s := NewSurface(100, 100)
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(3, 3, color.NRGBA{B: 255, A: 255})
	tint := &sketch.Paint{Filter: &sketch.ColorFilter{Multiply: red}}

	s.DrawBitmap(img, image.Rect(2, 0, 4, 4), sketch.Rect{X2: 20, Y2: 40}, tint)
	s.DrawBitmap(img, img.Bounds(), sketch.Rect{X2: 4, Y2: 4}, nil)

	if len(s.Images()) != 1 {
		t.Errorf("Images() has %d textures, want 1", len(s.Images()))
	}
	if got := s.Images()[0].NRGBAAt(3, 3); got.B != 255 {
		t.Errorf("texture pixel = %v, want blue", got)
	}

	b := s.Batches()
	if len(b) != 2 || b[0].Kind != KindImage || b[0].Image != 0 {
		t.Fatalf("batches = %+v, want two image batches", b)
	}
	if b[0].Smooth {
		t.Error("tint paint without AntiAlias should sample nearest")
	}
	if !b[1].Smooth {
		t.Error("nil paint should sample linearly")
	}

	v0 := s.TexturedVertex(0)
	if v0.X != 0 || v0.Y != 0 || v0.U != 0.5 || v0.V != 0 {
		t.Errorf("first corner = %+v, want (0, 0) uv (0.5, 0)", v0)
	}
	v2 := s.TexturedVertex(2)
	if v2.X != 20 || v2.Y != 40 || v2.U != 1 || v2.V != 1 {
		t.Errorf("far corner = %+v, want (20, 40) uv (1, 1)", v2)
	}
	if v0.Tint != [4]float32{1, 0, 0, 1} {
		t.Errorf("tint = %v, want red", v0.Tint)
	}
	if s.TexturedVertex(6).Tint != [4]float32{1, 1, 1, 1} {
		t.Errorf("untinted quad tint = %v, want white", s.TexturedVertex(6).Tint)
	}
}

func TestClearAndSetPixel(t *testing.T) {
	s := NewSurface(10, 10)
	s.DrawRect(0, 0, 5, 5, fillPaint(red, false))
	s.Clear(sketch.White)

	if len(s.Batches()) != 0 || s.VertexCount() != 0 {
		t.Errorf("Clear kept %d batches", len(s.Batches()))
	}
	if c, ok := s.ClearColor(); !ok || c != sketch.White {
		t.Errorf("ClearColor() = %v, %v", c, ok)
	}

	s.SetTransform(sketch.Translate(50, 50))
	s.SetPixel(3, 4, red)
	s.SetPixel(-1, 0, red)
	if len(s.Batches()) != 1 {
		t.Fatalf("got %d batches, want 1", len(s.Batches()))
	}
	if v := s.Vertex(0); v.X != 3 || v.Y != 4 {
		t.Errorf("pixel quad starts at (%v, %v), want (3, 4)", v.X, v.Y)
	}

	s.Reset()
	if _, ok := s.ClearColor(); ok {
		t.Error("Reset kept the clear color")
	}
}

func TestDrawTextIgnored(t *testing.T) {
	s := NewSurface(10, 10)
	s.DrawText("hello", 0, 0, nil, fillPaint(red, true))
	if len(s.Batches()) != 0 {
		t.Error("DrawText staged geometry")
	}
	if s.Capabilities().SupportsText {
		t.Error("mesh surfaces should not report text support")
	}
}

func TestFlushAndResize(t *testing.T) {
	s := NewSurface(10, 10)
	s.ClipRect(0, 0, 5, 5)
	if err := s.Flush(); err != nil || s.Frames() != 1 {
		t.Errorf("Flush() = %v, Frames() = %d", err, s.Frames())
	}
	if err := s.Resize(30, 40); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Width() != 30 || s.Height() != 40 || s.Scissor() != image.Rect(0, 0, 30, 40) {
		t.Errorf("after Resize: %dx%d scissor %v", s.Width(), s.Height(), s.Scissor())
	}
	if err := s.Resize(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 10) = %v, want ErrInvalidSize", err)
	}
}

func TestWithGraphics(t *testing.T) {
	s := NewSurface(200, 200)
	g := sketch.NewGraphics(s, 200, 200)
	g.BeginDraw()
	g.Ellipse(100, 100, 80, 80)
	if err := g.EndDraw(); err != nil {
		t.Fatalf("EndDraw: %v", err)
	}

	b := s.Batches()
	if len(b) != 2 {
		t.Fatalf("got %d batches, want fill and stroke", len(b))
	}
	if b[0].Kind != KindConvex || b[1].Kind != KindStencil {
		t.Errorf("kinds = %s, %s, want Convex, Stencil", b[0].Kind, b[1].Kind)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

func TestMeshBackendRegistered(t *testing.T) {
	ds, err := surface.Open("mesh", surface.Options{Width: 64, Height: 32})
	if err != nil {
		t.Fatalf("Open(mesh): %v", err)
	}
	if s, ok := ds.(*Surface); !ok || s.Width() != 64 || s.Height() != 32 {
		t.Errorf("got %T, want a 64x32 *mesh.Surface", ds)
	}
	if _, err := surface.Open("mesh", surface.Options{Width: 64}); !errors.Is(err, surface.ErrInvalidSize) {
		t.Errorf("Open(mesh) with zero height = %v, want ErrInvalidSize", err)
	}
}

func TestMeshRejectedWhenTextRequired(t *testing.T) {
	r := surface.NewRegistry()
	r.Register("mesh", 5, func(opts surface.Options) (sketch.DrawingSurface, error) {
		return NewSurface(opts.Width, opts.Height), nil
	})
	opts := surface.Options{Width: 16, Height: 16}

	if name, _, err := r.Select(opts, surface.Requirements{Antialias: true}); err != nil || name != "mesh" {
		t.Errorf("Select(antialias) = %q, %v, want mesh", name, err)
	}
	if _, _, err := r.Select(opts, surface.Requirements{Text: true}); !errors.Is(err, surface.ErrNoBackendAvailable) {
		t.Errorf("Select(text) = %v, want ErrNoBackendAvailable", err)
	}
}
