package sketch

// Default curve settings.
const (
	DefaultBezierDetail = 20
	DefaultCurveDetail  = 20
)

// curveBasis is the Catmull-Rom style basis matrix for a given tightness.
// Row i holds the coefficients of t^(3-i).
type curveBasis [4][4]float64

func newCurveBasis(s float64) curveBasis {
	return curveBasis{
		{(s - 1) / 2, (s + 3) / 2, (-3 - s) / 2, (1 - s) / 2},
		{1 - s, (-5 - s) / 2, s + 2, (s - 1) / 2},
		{(s - 1) / 2, 0, (1 - s) / 2, 0},
		{0, 1, 0, 0},
	}
}

// point evaluates the curve through a, b, c, d at t.
func (cb *curveBasis) point(a, b, c, d, t float64) float64 {
	tt := t * t
	ttt := tt * t
	w := [4]float64{a, b, c, d}
	var sum float64
	for j := 0; j < 4; j++ {
		sum += w[j] * (ttt*cb[0][j] + tt*cb[1][j] + t*cb[2][j] + cb[3][j])
	}
	return sum
}

// tangent evaluates the derivative of the curve at t.
func (cb *curveBasis) tangent(a, b, c, d, t float64) float64 {
	tt3 := 3 * t * t
	t2 := 2 * t
	w := [4]float64{a, b, c, d}
	var sum float64
	for j := 0; j < 4; j++ {
		sum += w[j] * (tt3*cb[0][j] + t2*cb[1][j] + cb[2][j])
	}
	return sum
}

// curveToBezier converts the span p1..p2 of a four point curve window into
// cubic Bezier control points. Tightness 0 gives a Catmull-Rom spline.
func curveToBezier(p0, p1, p2, p3 Point, tightness float64) (b0, b1, b2, b3 Point) {
	k := (1 - tightness) / 6
	b0 = p1
	b1 = p1.Add(p2.Sub(p0).Mul(k))
	b2 = p2.Sub(p3.Sub(p1).Mul(k))
	b3 = p2
	return b0, b1, b2, b3
}

// BezierPoint evaluates one coordinate of a cubic Bezier with on-curve
// points a, d and controls b, c at t in [0, 1].
func BezierPoint(a, b, c, d, t float64) float64 {
	t1 := t - 1
	return t*(3*t1*(b*t1-c*t)+d*t*t) - a*t1*t1*t1
}

// BezierTangent evaluates the derivative of BezierPoint at t.
func BezierTangent(a, b, c, d, t float64) float64 {
	return 3*t*t*(-a+3*b-3*c+d) + 6*t*(a-2*b+c) + 3*(-a+b)
}

// CurvePoint evaluates one coordinate of the curve segment between b and c,
// using the Graphics' current curve tightness.
func (g *Graphics) CurvePoint(a, b, c, d, t float64) float64 {
	return g.basis.point(a, b, c, d, t)
}

// CurveTangent evaluates the derivative of CurvePoint at t.
func (g *Graphics) CurveTangent(a, b, c, d, t float64) float64 {
	return g.basis.tangent(a, b, c, d, t)
}

// CurveTightness sets how tightly curveVertex segments fit their points.
// 0 is a Catmull-Rom spline; 1 connects the points with straight lines.
func (g *Graphics) CurveTightness(tightness float64) {
	g.tightness = tightness
	g.basis = newCurveBasis(tightness)
}

// BezierDetail sets the segment count hint for Bezier curves. Path based
// surfaces flatten adaptively and only record the value.
func (g *Graphics) BezierDetail(detail int) {
	g.bezierDetail = detail
}

// CurveDetail sets the segment count hint for curves.
func (g *Graphics) CurveDetail(detail int) {
	g.curveDetail = detail
}
