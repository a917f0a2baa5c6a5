package sketch

import "math"

// kappa is the cubic Bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// SegmentOp identifies the kind of a path segment.
type SegmentOp uint8

const (
	// OpMoveTo starts a subpath at Points[0].
	OpMoveTo SegmentOp = iota
	// OpLineTo draws a straight line to Points[0].
	OpLineTo
	// OpCubicTo draws a cubic Bezier through controls Points[0], Points[1]
	// to Points[2].
	OpCubicTo
)

// String returns the segment op name.
func (op SegmentOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one element of a subpath.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// End returns the point the segment finishes at.
func (s Segment) End() Point {
	if s.Op == OpCubicTo {
		return s.Points[2]
	}
	return s.Points[0]
}

// Subpath is a contiguous run of segments. The first segment is always
// the only OpMoveTo.
type Subpath struct {
	Segments []Segment
	Closed   bool
}

// Start returns the subpath's move-to point.
func (sp *Subpath) Start() Point {
	return sp.Segments[0].Points[0]
}

// Path is an ordered sequence of subpaths. Exterior outlines and interior
// contours are separate subpaths; which regions are filled is decided by
// the surface's winding rule.
//
// The zero value is an empty path ready to use.
type Path struct {
	subpaths []Subpath
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{subpaths: make([]Subpath, 0, 4)}
}

// Subpaths returns the subpaths of p. The slice aliases the path and is
// only valid until the path is next modified.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// Len returns the total number of segments, move-tos included.
func (p *Path) Len() int {
	n := 0
	for i := range p.subpaths {
		n += len(p.subpaths[i].Segments)
	}
	return n
}

// CurrentPoint returns the end of the last segment. ok is false when the
// path is empty.
func (p *Path) CurrentPoint() (pt Point, ok bool) {
	sp := p.last()
	if sp == nil {
		return Point{}, false
	}
	if sp.Closed {
		return sp.Start(), true
	}
	return sp.Segments[len(sp.Segments)-1].End(), true
}

func (p *Path) last() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	n := len(p.subpaths)
	if n < cap(p.subpaths) {
		// Reuse the segment storage left behind by Reset.
		p.subpaths = p.subpaths[:n+1]
		sp := &p.subpaths[n]
		sp.Segments = sp.Segments[:0]
		sp.Closed = false
	} else {
		p.subpaths = append(p.subpaths, Subpath{Segments: make([]Segment, 0, 8)})
	}
	sp := &p.subpaths[n]
	sp.Segments = append(sp.Segments, Segment{Op: OpMoveTo, Points: [3]Point{{X: x, Y: y}}})
}

// open returns the subpath that new segments extend, starting one at
// from when the path is empty or the last subpath was closed.
func (p *Path) open(from Point) *Subpath {
	sp := p.last()
	if sp == nil {
		p.MoveTo(from.X, from.Y)
	} else if sp.Closed {
		start := sp.Start()
		p.MoveTo(start.X, start.Y)
	}
	return p.last()
}

// LineTo adds a straight segment to (x, y). On an empty path it behaves
// like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if p.IsEmpty() {
		p.MoveTo(x, y)
		return
	}
	sp := p.open(Point{})
	sp.Segments = append(sp.Segments, Segment{Op: OpLineTo, Points: [3]Point{{X: x, Y: y}}})
}

// CubicTo adds a cubic Bezier with controls (c1x, c1y), (c2x, c2y) ending
// at (x, y). On an empty path the first control becomes the start point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	sp := p.open(Point{X: c1x, Y: c1y})
	sp.Segments = append(sp.Segments, Segment{
		Op:     OpCubicTo,
		Points: [3]Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}},
	})
}

// QuadTo adds a quadratic Bezier, stored as the equivalent cubic.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p0, ok := p.CurrentPoint()
	if !ok {
		p0 = Point{X: cx, Y: cy}
	}
	c := Point{X: cx, Y: cy}
	p3 := Point{X: x, Y: y}
	c1 := p0.Add(c.Sub(p0).Mul(2.0 / 3.0))
	c2 := p3.Add(c.Sub(p3).Mul(2.0 / 3.0))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// Close marks the current subpath closed, joining its end to its start.
// Closing an empty path or an already closed subpath does nothing.
func (p *Path) Close() {
	if sp := p.last(); sp != nil {
		sp.Closed = true
	}
}

// Reset empties the path, keeping its storage for reuse.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// Append adds copies of all subpaths of other to p.
func (p *Path) Append(other *Path) {
	for _, sp := range other.subpaths {
		segs := make([]Segment, len(sp.Segments))
		copy(segs, sp.Segments)
		p.subpaths = append(p.subpaths, Subpath{Segments: segs, Closed: sp.Closed})
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := &Path{subpaths: make([]Subpath, 0, len(p.subpaths))}
	c.Append(p)
	return c
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	c := p.Clone()
	for i := range c.subpaths {
		segs := c.subpaths[i].Segments
		for j := range segs {
			for k := range segs[j].Points {
				segs[j].Points[k] = m.TransformPoint(segs[j].Points[k])
			}
		}
	}
	return c
}

// Bounds returns the bounding box of all points, control points included.
// Returns the zero Rect for an empty path.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	add := func(pt Point) {
		if first {
			r = Rect{X1: pt.X, Y1: pt.Y, X2: pt.X, Y2: pt.Y}
			first = false
			return
		}
		r.X1 = math.Min(r.X1, pt.X)
		r.Y1 = math.Min(r.Y1, pt.Y)
		r.X2 = math.Max(r.X2, pt.X)
		r.Y2 = math.Max(r.Y2, pt.Y)
	}
	for _, sp := range p.subpaths {
		for _, s := range sp.Segments {
			n := 1
			if s.Op == OpCubicTo {
				n = 3
			}
			for k := 0; k < n; k++ {
				add(s.Points[k])
			}
		}
	}
	return r
}

// AddRect adds a closed axis-aligned rectangle with corners (x1, y1), (x2, y2).
func (p *Path) AddRect(x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y1)
	p.LineTo(x2, y2)
	p.LineTo(x1, y2)
	p.Close()
}

// AddEllipse adds a closed ellipse inscribed in the given bounds.
func (p *Path) AddEllipse(x1, y1, x2, y2 float64) {
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := (x2-x1)/2, (y2-y1)/2
	ox, oy := rx*kappa, ry*kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// AddArc adds an elliptical arc inscribed in the given bounds, from
// startDeg sweeping sweepDeg degrees clockwise on screen. With useCenter
// the arc is closed through the center as a pie wedge. The arc starts a
// new subpath unless connect is set and the path has a current point.
func (p *Path) AddArc(x1, y1, x2, y2, startDeg, sweepDeg float64, useCenter, connect bool) {
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := (x2-x1)/2, (y2-y1)/2
	a0 := startDeg * math.Pi / 180
	sweep := sweepDeg * math.Pi / 180

	startPt := Point{X: cx + rx*math.Cos(a0), Y: cy + ry*math.Sin(a0)}
	switch {
	case useCenter:
		p.MoveTo(cx, cy)
		p.LineTo(startPt.X, startPt.Y)
	case connect && !p.IsEmpty():
		p.LineTo(startPt.X, startPt.Y)
	default:
		p.MoveTo(startPt.X, startPt.Y)
	}

	if sweep == 0 {
		if useCenter {
			p.Close()
		}
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a := a0 + float64(i)*step
		p.arcSegment(cx, cy, rx, ry, a, a+step)
	}
	if useCenter {
		p.Close()
	}
}

// arcSegment adds one cubic approximating an elliptical arc of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, rx, ry, a1, a2 float64) {
	half := (a2 - a1) / 2
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan(half)*math.Tan(half)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	c1x := cx + rx*(cos1-alpha*sin1)
	c1y := cy + ry*(sin1+alpha*cos1)
	c2x := cx + rx*(cos2+alpha*sin2)
	c2y := cy + ry*(sin2-alpha*cos2)

	p.CubicTo(c1x, c1y, c2x, c2y, cx+rx*cos2, cy+ry*sin2)
}
