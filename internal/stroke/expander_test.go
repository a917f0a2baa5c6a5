package stroke

import (
	"testing"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/flatten"
)

// winding returns the non-zero winding number of p against the flattened
// outline.
func winding(outline *sketch.Path, p sketch.Point) int {
	w := 0
	for _, l := range flatten.Path(outline, sketch.Identity(), 0.01) {
		pts := l.Points
		n := len(pts)
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			side := b.Sub(a).Cross(p.Sub(a))
			if a.Y <= p.Y {
				if b.Y > p.Y && side > 0 {
					w++
				}
			} else if b.Y <= p.Y && side < 0 {
				w--
			}
		}
	}
	return w
}

func polyline(closed bool, pts ...sketch.Point) []flatten.Polyline {
	return []flatten.Polyline{{Points: pts, Closed: closed}}
}

type probe struct {
	p      sketch.Point
	inside bool
}

func checkProbes(t *testing.T, outline *sketch.Path, probes []probe) {
	t.Helper()
	for _, pr := range probes {
		got := winding(outline, pr.p) != 0
		if got != pr.inside {
			t.Errorf("point %v inside = %v, want %v", pr.p, got, pr.inside)
		}
	}
}

func TestNewExpander(t *testing.T) {
	e := NewExpander(Style{Width: 2, MiterLimit: 0.5})
	if e.style.MiterLimit != 1 {
		t.Errorf("MiterLimit = %v, want 1", e.style.MiterLimit)
	}
	want := 2 * flatten.Tolerance / 2
	if e.joinThresh != want {
		t.Errorf("joinThresh = %v, want %v", e.joinThresh, want)
	}

	e.SetTolerance(-1)
	if e.joinThresh != want {
		t.Error("negative tolerance should be ignored")
	}
	e.SetTolerance(0.5)
	if e.joinThresh != 0.5 {
		t.Errorf("joinThresh = %v, want 0.5", e.joinThresh)
	}
}

func TestFromPaint(t *testing.T) {
	p := sketch.Paint{
		Style:      sketch.PaintStroke,
		Width:      3,
		Cap:        sketch.LineCapRound,
		Join:       sketch.LineJoinBevel,
		MiterLimit: 7,
	}
	got := FromPaint(p)
	want := Style{Width: 3, Cap: sketch.LineCapRound, Join: sketch.LineJoinBevel, MiterLimit: 7}
	if got != want {
		t.Errorf("FromPaint = %+v, want %+v", got, want)
	}
}

func TestExpandCaps(t *testing.T) {
	line := polyline(false, sketch.Pt(0, 0), sketch.Pt(10, 0))

	tests := []struct {
		name   string
		cap    sketch.LineCap
		probes []probe
	}{
		{"butt", sketch.LineCapButt, []probe{
			{sketch.Pt(5, 0.5), true},
			{sketch.Pt(5, -0.9), true},
			{sketch.Pt(5, 1.5), false},
			{sketch.Pt(-0.5, 0), false},
			{sketch.Pt(10.5, 0), false},
		}},
		{"square", sketch.LineCapSquare, []probe{
			{sketch.Pt(-0.5, 0.5), true},
			{sketch.Pt(10.9, -0.9), true},
			{sketch.Pt(-1.5, 0), false},
			{sketch.Pt(11.5, 0), false},
		}},
		{"round", sketch.LineCapRound, []probe{
			{sketch.Pt(-0.9, 0), true},
			{sketch.Pt(10.9, 0), true},
			{sketch.Pt(-0.8, 0.8), false},
			{sketch.Pt(10.8, -0.8), false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{Width: 2, Cap: tt.cap, Join: sketch.LineJoinMiter, MiterLimit: 4})
			checkProbes(t, e.Expand(line), tt.probes)
		})
	}
}

func TestExpandJoins(t *testing.T) {
	corner := polyline(false, sketch.Pt(0, 0), sketch.Pt(10, 0), sketch.Pt(10, 10))

	tests := []struct {
		name   string
		join   sketch.LineJoin
		probes []probe
	}{
		{"miter", sketch.LineJoinMiter, []probe{
			{sketch.Pt(10.9, -0.9), true},
			{sketch.Pt(10.6, -0.6), true},
			{sketch.Pt(9.5, 0.5), true},
		}},
		{"bevel", sketch.LineJoinBevel, []probe{
			{sketch.Pt(10.9, -0.9), false},
			{sketch.Pt(10.6, -0.6), false},
			{sketch.Pt(10.4, -0.4), true},
			{sketch.Pt(9.5, 0.5), true},
		}},
		{"round", sketch.LineJoinRound, []probe{
			{sketch.Pt(10.9, -0.9), false},
			{sketch.Pt(10.6, -0.6), true},
			{sketch.Pt(9.5, 0.5), true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{Width: 2, Cap: sketch.LineCapButt, Join: tt.join, MiterLimit: 4})
			checkProbes(t, e.Expand(corner), tt.probes)
		})
	}
}

func TestExpandJoinTurningLeft(t *testing.T) {
	corner := polyline(false, sketch.Pt(0, 0), sketch.Pt(10, 0), sketch.Pt(10, -10))
	e := NewExpander(Style{Width: 2, Join: sketch.LineJoinMiter, MiterLimit: 4})
	checkProbes(t, e.Expand(corner), []probe{
		{sketch.Pt(10.9, 0.9), true},
		{sketch.Pt(9.5, -0.5), true},
		{sketch.Pt(8, -3), false},
	})
}

func TestExpandMiterLimit(t *testing.T) {
	sharp := polyline(false, sketch.Pt(0, 0), sketch.Pt(10, 0), sketch.Pt(0, 1))
	far := sketch.Pt(20, -0.5)

	tests := []struct {
		name   string
		limit  float64
		inside bool
	}{
		{"within limit", 25, true},
		{"beyond limit", 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{Width: 2, Join: sketch.LineJoinMiter, MiterLimit: tt.limit})
			checkProbes(t, e.Expand(sharp), []probe{{far, tt.inside}})
		})
	}
}

func TestExpandClosed(t *testing.T) {
	square := polyline(true, sketch.Pt(0, 0), sketch.Pt(10, 0), sketch.Pt(10, 10), sketch.Pt(0, 10))
	e := NewExpander(Style{Width: 2, Join: sketch.LineJoinMiter, MiterLimit: 4})
	outline := e.Expand(square)

	if n := len(outline.Subpaths()); n != 2 {
		t.Fatalf("subpaths = %d, want 2", n)
	}
	checkProbes(t, outline, []probe{
		{sketch.Pt(5, 5), false},
		{sketch.Pt(5, -0.5), true},
		{sketch.Pt(0, 5), true},
		{sketch.Pt(-0.9, -0.9), true},
		{sketch.Pt(10.9, 10.9), true},
		{sketch.Pt(5, 11.5), false},
	})
}

func TestExpandDuplicateClosingPoint(t *testing.T) {
	tri := polyline(true, sketch.Pt(0, 0), sketch.Pt(10, 0), sketch.Pt(5, 8), sketch.Pt(0, 0))
	e := NewExpander(DefaultStyle())
	if n := len(e.Expand(tri).Subpaths()); n != 2 {
		t.Errorf("subpaths = %d, want 2", n)
	}
}

func TestExpandDot(t *testing.T) {
	dot := polyline(false, sketch.Pt(5, 5), sketch.Pt(5, 5))

	tests := []struct {
		name   string
		cap    sketch.LineCap
		inside bool
	}{
		{"butt", sketch.LineCapButt, false},
		{"square", sketch.LineCapSquare, true},
		{"round", sketch.LineCapRound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{Width: 4, Cap: tt.cap})
			checkProbes(t, e.Expand(dot), []probe{{sketch.Pt(5.5, 5.5), tt.inside}})
		})
	}
}

func TestExpandEmpty(t *testing.T) {
	line := polyline(false, sketch.Pt(0, 0), sketch.Pt(10, 0))

	if out := NewExpander(Style{Width: 0}).Expand(line); !out.IsEmpty() {
		t.Error("zero width should produce an empty outline")
	}
	if out := NewExpander(DefaultStyle()).Expand(nil); !out.IsEmpty() {
		t.Error("no polylines should produce an empty outline")
	}
}
