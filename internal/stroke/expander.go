package stroke

import (
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/flatten"
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        sketch.LineCap
	Join       sketch.LineJoin
	MiterLimit float64
}

// DefaultStyle returns a 1 pixel butt-capped, miter-joined style.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        sketch.LineCapButt,
		Join:       sketch.LineJoinMiter,
		MiterLimit: sketch.DefaultMiterLimit,
	}
}

// FromPaint returns the stroke style of a stroke paint.
func FromPaint(p sketch.Paint) Style {
	return Style{Width: p.Width, Cap: p.Cap, Join: p.Join, MiterLimit: p.MiterLimit}
}

// Expander converts polylines to stroke outlines.
type Expander struct {
	style Style

	// joinThresh is the sine of the smallest corner that gets a join.
	joinThresh float64

	forward  side
	backward side
}

// NewExpander creates an expander for style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	e := &Expander{style: style}
	e.SetTolerance(flatten.Tolerance)
	return e
}

// SetTolerance sets the distance below which a corner is not joined.
// Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 && e.style.Width > 0 {
		e.joinThresh = 2 * tolerance / e.style.Width
	}
}

// Expand returns the fill outline of the stroked polylines.
func (e *Expander) Expand(lines []flatten.Polyline) *sketch.Path {
	out := sketch.NewPath()
	if e.style.Width <= 0 {
		return out
	}
	for _, pl := range lines {
		pts := dedup(pl.Points)
		if pl.Closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		switch {
		case len(pts) == 0:
		case len(pts) == 1:
			e.dot(out, pts[0])
		case pl.Closed && len(pts) > 2:
			e.closed(out, pts)
		default:
			e.open(out, pts)
		}
	}
	return out
}

// dedup drops consecutive duplicate points.
func dedup(pts []sketch.Point) []sketch.Point {
	out := make([]sketch.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// normal returns the segment normal a->b scaled to half the width.
func (e *Expander) normal(a, b sketch.Point) sketch.Point {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	return sketch.Point{X: -d.Y, Y: d.X}.Mul(0.5 * e.style.Width / l)
}

// dot draws a zero-length stroke, which only caps can make visible.
func (e *Expander) dot(out *sketch.Path, p sketch.Point) {
	hw := e.style.Width / 2
	switch e.style.Cap {
	case sketch.LineCapRound:
		out.AddEllipse(p.X-hw, p.Y-hw, p.X+hw, p.Y+hw)
	case sketch.LineCapSquare:
		out.AddRect(p.X-hw, p.Y-hw, p.X+hw, p.Y+hw)
	}
}

func (e *Expander) open(out *sketch.Path, pts []sketch.Point) {
	e.forward.reset()
	e.backward.reset()

	n0 := e.normal(pts[0], pts[1])
	e.forward.moveTo(pts[0].Sub(n0))
	e.backward.moveTo(pts[0].Add(n0))

	last := n0
	for i := 1; i < len(pts); i++ {
		n := e.normal(pts[i-1], pts[i])
		if i > 1 {
			e.join(pts[i-1], pts[i-1].Sub(pts[i-2]), pts[i].Sub(pts[i-1]), last, n)
		}
		e.forward.lineTo(pts[i].Sub(n))
		e.backward.lineTo(pts[i].Add(n))
		last = n
	}

	end := pts[len(pts)-1]
	e.forward.writeTo(out)
	e.endCap(out, end, last, end.Sub(pts[len(pts)-2]))
	e.backward.writeReversed(out, true)
	e.startCap(out, pts[0], n0, pts[1].Sub(pts[0]))
	out.Close()
}

func (e *Expander) closed(out *sketch.Path, pts []sketch.Point) {
	e.forward.reset()
	e.backward.reset()

	count := len(pts)
	at := func(i int) sketch.Point { return pts[(i+count)%count] }

	n0 := e.normal(pts[0], pts[1])
	e.forward.moveTo(pts[0].Sub(n0))
	e.backward.moveTo(pts[0].Add(n0))

	last := n0
	for i := 1; i <= count; i++ {
		n := e.normal(at(i-1), at(i))
		if i > 1 {
			e.join(at(i-1), at(i-1).Sub(at(i-2)), at(i).Sub(at(i-1)), last, n)
		}
		e.forward.lineTo(at(i).Sub(n))
		e.backward.lineTo(at(i).Add(n))
		last = n
	}
	e.join(pts[0], pts[0].Sub(at(-1)), pts[1].Sub(pts[0]), last, n0)

	e.forward.writeTo(out)
	out.Close()
	e.backward.writeReversed(out, false)
	out.Close()
}

// join connects the sides at corner p between tangents a and b with
// normals na and nb.
func (e *Expander) join(p, a, b, na, nb sketch.Point) {
	cross := a.Cross(b)
	dot := a.X*b.X + a.Y*b.Y
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p.Sub(nb))
		e.backward.lineTo(p.Add(nb))
		return
	}

	angle := math.Atan2(cross, dot)
	outer, inner := &e.forward, &e.backward
	sign := -1.0
	if angle < 0 {
		outer, inner = inner, outer
		sign = 1
	}

	inner.lineTo(p)
	inner.lineTo(p.Add(nb.Mul(-sign)))

	switch e.style.Join {
	case sketch.LineJoinRound:
		outer.arc(p, na.Mul(sign), angle)
	case sketch.LineJoinMiter:
		// The miter length relative to the width is 1/cos(theta/2).
		cosHalf := math.Sqrt((1 + dot/hypot) / 2)
		if cosHalf > 0 && 1/cosHalf <= e.style.MiterLimit {
			m := na.Add(nb)
			ml := math.Hypot(m.X, m.Y)
			if ml > 0 {
				hw := e.style.Width / 2
				outer.lineTo(p.Add(m.Mul(sign * hw / (ml * cosHalf))))
			}
		}
	}
	outer.lineTo(p.Add(nb.Mul(sign)))
}

// endCap goes from the forward side to the backward side around end,
// where n is the last segment normal and d its direction.
func (e *Expander) endCap(out *sketch.Path, end, n, d sketch.Point) {
	e.cap(out, end, n.Mul(-1), d)
	out.LineTo(end.X+n.X, end.Y+n.Y)
}

// startCap goes from the backward side to the forward side around start.
func (e *Expander) startCap(out *sketch.Path, start, n, d sketch.Point) {
	e.cap(out, start, n, d.Mul(-1))
	out.LineTo(start.X-n.X, start.Y-n.Y)
}

// cap adds the cap outline from center+from, heading in direction d.
func (e *Expander) cap(out *sketch.Path, center, from, d sketch.Point) {
	switch e.style.Cap {
	case sketch.LineCapRound:
		var s side
		s.moveTo(center.Add(from))
		s.arc(center, from, math.Pi)
		for _, seg := range s.segs[1:] {
			out.CubicTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y, seg.Points[2].X, seg.Points[2].Y)
		}
	case sketch.LineCapSquare:
		l := math.Hypot(d.X, d.Y)
		ext := d.Mul(e.style.Width / 2 / l)
		a := center.Add(from).Add(ext)
		b := center.Sub(from).Add(ext)
		out.LineTo(a.X, a.Y)
		out.LineTo(b.X, b.Y)
	}
}

// side is one offset side of a stroke under construction.
type side struct {
	segs []sketch.Segment
}

func (s *side) reset() { s.segs = s.segs[:0] }

func (s *side) current() sketch.Point { return s.segs[len(s.segs)-1].End() }

func (s *side) moveTo(p sketch.Point) {
	s.segs = append(s.segs, sketch.Segment{Op: sketch.OpMoveTo, Points: [3]sketch.Point{p}})
}

func (s *side) lineTo(p sketch.Point) {
	s.segs = append(s.segs, sketch.Segment{Op: sketch.OpLineTo, Points: [3]sketch.Point{p}})
}

// arc adds a circular arc around center starting at center+from and
// turning by angle radians, as cubics of at most 90 degrees each.
func (s *side) arc(center, from sketch.Point, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	r := math.Hypot(from.X, from.Y)
	a0 := math.Atan2(from.Y, from.X)
	alpha := math.Sin(step) * (math.Sqrt(4+3*math.Tan(step/2)*math.Tan(step/2)) - 1) / 3

	for i := 0; i < n; i++ {
		a1 := a0 + step
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		p0 := sketch.Point{X: center.X + r*cos0, Y: center.Y + r*sin0}
		p1 := sketch.Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
		c0 := sketch.Point{X: p0.X - alpha*r*sin0, Y: p0.Y + alpha*r*cos0}
		c1 := sketch.Point{X: p1.X + alpha*r*sin1, Y: p1.Y - alpha*r*cos1}
		s.segs = append(s.segs, sketch.Segment{Op: sketch.OpCubicTo, Points: [3]sketch.Point{c0, c1, p1}})
		a0 = a1
	}
}

// writeTo appends the side to out as a new subpath.
func (s *side) writeTo(out *sketch.Path) {
	for _, seg := range s.segs {
		p := seg.Points
		switch seg.Op {
		case sketch.OpMoveTo:
			out.MoveTo(p[0].X, p[0].Y)
		case sketch.OpLineTo:
			out.LineTo(p[0].X, p[0].Y)
		case sketch.OpCubicTo:
			out.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		}
	}
}

// writeReversed appends the side to out from its end to its start. With
// connect it continues the current subpath, otherwise it starts a new one.
func (s *side) writeReversed(out *sketch.Path, connect bool) {
	if len(s.segs) == 0 {
		return
	}
	end := s.current()
	if connect {
		out.LineTo(end.X, end.Y)
	} else {
		out.MoveTo(end.X, end.Y)
	}
	for i := len(s.segs) - 1; i >= 1; i-- {
		to := s.segs[i-1].End()
		p := s.segs[i].Points
		switch s.segs[i].Op {
		case sketch.OpLineTo:
			out.LineTo(to.X, to.Y)
		case sketch.OpCubicTo:
			out.CubicTo(p[1].X, p[1].Y, p[0].X, p[0].Y, to.X, to.Y)
		}
	}
}
