package sketch

import (
	"math"
	"testing"
)

func TestBezierPoint(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 10},
		{"end", 1, 40},
		{"middle", 0.5, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BezierPoint(10, 20, 30, 40, tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("BezierPoint(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestBezierTangent(t *testing.T) {
	// A straight line with evenly spaced controls has constant speed.
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		if got := BezierTangent(0, 1, 2, 3, tt); math.Abs(got-3) > 1e-12 {
			t.Errorf("BezierTangent(t=%v) = %v, want 3", tt, got)
		}
	}
}

func TestCurveBasisInterpolates(t *testing.T) {
	for _, tightness := range []float64{-1, 0, 0.5, 1} {
		cb := newCurveBasis(tightness)
		if got := cb.point(1, 2, 5, 9, 0); math.Abs(got-2) > 1e-12 {
			t.Errorf("tightness %v: point(t=0) = %v, want 2", tightness, got)
		}
		if got := cb.point(1, 2, 5, 9, 1); math.Abs(got-5) > 1e-12 {
			t.Errorf("tightness %v: point(t=1) = %v, want 5", tightness, got)
		}
	}
}

func TestCurveBasisCatmullRomTangent(t *testing.T) {
	cb := newCurveBasis(0)
	// Catmull-Rom tangents at the ends are half the span between neighbors.
	if got := cb.tangent(0, 1, 4, 9, 0); math.Abs(got-2) > 1e-12 {
		t.Errorf("tangent(t=0) = %v, want 2", got)
	}
	if got := cb.tangent(0, 1, 4, 9, 1); math.Abs(got-4) > 1e-12 {
		t.Errorf("tangent(t=1) = %v, want 4", got)
	}
}

func TestCurveToBezierMatchesBasis(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(10, 5), Pt(20, -5), Pt(30, 0)
	for _, tightness := range []float64{0, 0.3, 1} {
		b0, b1, b2, b3 := curveToBezier(p0, p1, p2, p3, tightness)
		cb := newCurveBasis(tightness)
		for _, tt := range []float64{0, 0.3, 0.7, 1} {
			want := Pt(cb.point(p0.X, p1.X, p2.X, p3.X, tt), cb.point(p0.Y, p1.Y, p2.Y, p3.Y, tt))
			got := Pt(BezierPoint(b0.X, b1.X, b2.X, b3.X, tt), BezierPoint(b0.Y, b1.Y, b2.Y, b3.Y, tt))
			if !got.ApproxEqual(want, 1e-9) {
				t.Errorf("tightness %v t=%v: bezier %v, curve %v", tightness, tt, got, want)
			}
		}
	}
}
