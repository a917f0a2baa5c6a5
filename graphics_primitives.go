package sketch

import "math"

// Point draws a point in the stroke color. Nothing is drawn without a stroke.
func (g *Graphics) Point(x, y float64) {
	if !g.style.Paint.Stroke {
		return
	}
	g.drawPoints([]Vertex{{X: x, Y: y}})
}

// Line draws a segment in the stroke color.
func (g *Graphics) Line(x1, y1, x2, y2 float64) {
	g.line(Point{X: x1, Y: y1}, Point{X: x2, Y: y2})
}

// Triangle draws a filled and stroked triangle.
func (g *Graphics) Triangle(x1, y1, x2, y2, x3, y3 float64) {
	g.triangle(Point{X: x1, Y: y1}, Point{X: x2, Y: y2}, Point{X: x3, Y: y3})
}

// Quad draws a filled and stroked quadrilateral.
func (g *Graphics) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	g.quad(Point{X: x1, Y: y1}, Point{X: x2, Y: y2}, Point{X: x3, Y: y3}, Point{X: x4, Y: y4})
}

// RectMode sets how Rect interprets its arguments.
func (g *Graphics) RectMode(mode RectMode) {
	g.style.RectMode = mode
}

// rectCorners resolves rect arguments to ordered corners.
func (g *Graphics) rectCorners(a, b, c, d float64) (x1, y1, x2, y2 float64) {
	switch g.style.RectMode {
	case RectCorner:
		c += a
		d += b
	case RectRadius:
		a, b, c, d = a-c, b-d, a+c, b+d
	case RectCenter:
		hw, hh := c/2, d/2
		a, b, c, d = a-hw, b-hh, a+hw, b+hh
	}
	if a > c {
		a, c = c, a
	}
	if b > d {
		b, d = d, b
	}
	return a, b, c, d
}

// Rect draws a rectangle placed according to the rect mode.
func (g *Graphics) Rect(a, b, c, d float64) {
	x1, y1, x2, y2 := g.rectCorners(a, b, c, d)
	ps := &g.style.Paint
	if ps.Fill {
		g.surface.DrawRect(x1, y1, x2, y2, ps.FillPaint())
	}
	if ps.Stroke {
		g.surface.DrawRect(x1, y1, x2, y2, ps.StrokePaint())
	}
}

// RoundedRect draws a rectangle with the given corner radii, clockwise
// from top-left. Radii are limited to half the shorter side.
func (g *Graphics) RoundedRect(a, b, c, d, tl, tr, br, bl float64) {
	x1, y1, x2, y2 := g.rectCorners(a, b, c, d)
	limit := math.Min((x2-x1)/2, (y2-y1)/2)
	tl, tr, br, bl = math.Min(tl, limit), math.Min(tr, limit), math.Min(br, limit), math.Min(bl, limit)

	p := g.scratch
	p.Reset()
	if tr != 0 {
		p.MoveTo(x2-tr, y1)
		p.QuadTo(x2, y1, x2, y1+tr)
	} else {
		p.MoveTo(x2, y1)
	}
	if br != 0 {
		p.LineTo(x2, y2-br)
		p.QuadTo(x2, y2, x2-br, y2)
	} else {
		p.LineTo(x2, y2)
	}
	if bl != 0 {
		p.LineTo(x1+bl, y2)
		p.QuadTo(x1, y2, x1, y2-bl)
	} else {
		p.LineTo(x1, y2)
	}
	if tl != 0 {
		p.LineTo(x1, y1+tl)
		p.QuadTo(x1, y1, x1+tl, y1)
	} else {
		p.LineTo(x1, y1)
	}
	p.Close()
	g.drawPath(p)
}

// Square draws a rectangle with equal sides.
func (g *Graphics) Square(x, y, extent float64) {
	g.Rect(x, y, extent, extent)
}

// EllipseMode sets how Ellipse and Arc interpret their arguments.
func (g *Graphics) EllipseMode(mode EllipseMode) {
	g.style.EllipseMode = mode
}

// ellipseBounds resolves ellipse arguments to a corner and size. Negative
// sizes are not corrected.
func (g *Graphics) ellipseBounds(a, b, c, d float64) (x, y, w, h float64) {
	x, y, w, h = a, b, c, d
	switch g.style.EllipseMode {
	case EllipseCorners:
		w, h = c-a, d-b
	case EllipseRadius:
		x, y, w, h = a-c, b-d, c*2, d*2
	case EllipseCenter:
		x, y = a-c/2, b-d/2
	}
	return x, y, w, h
}

// Ellipse draws an ellipse placed according to the ellipse mode.
func (g *Graphics) Ellipse(a, b, c, d float64) {
	x, y, w, h := g.ellipseBounds(a, b, c, d)
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	g.ellipse(x, y, w, h)
}

func (g *Graphics) ellipse(x, y, w, h float64) {
	ps := &g.style.Paint
	if ps.Fill {
		g.surface.DrawOval(x, y, x+w, y+h, ps.FillPaint())
	}
	if ps.Stroke {
		g.surface.DrawOval(x, y, x+w, y+h, ps.StrokePaint())
	}
}

// Circle draws an ellipse with equal axes.
func (g *Graphics) Circle(x, y, extent float64) {
	g.Ellipse(x, y, extent, extent)
}

// Arc draws the part of an ellipse between the start and stop angles, in
// radians clockwise from the positive x axis. Nothing is drawn unless stop
// is greater than start. Spans of a full turn or more draw the ellipse.
func (g *Graphics) Arc(a, b, c, d, start, stop float64, mode ArcMode) {
	x, y, w, h := g.ellipseBounds(a, b, c, d)
	if math.IsInf(start, 0) || math.IsInf(stop, 0) || !(stop > start) {
		return
	}
	for start < 0 {
		start += 2 * math.Pi
		stop += 2 * math.Pi
	}
	if stop-start > 2*math.Pi {
		start, stop = 0, 2*math.Pi
	}
	g.arc(x, y, w, h, start, stop, mode)
}

func (g *Graphics) arc(x, y, w, h, start, stop float64, mode ArcMode) {
	if stop-start >= 2*math.Pi {
		g.ellipse(x, y, w, h)
		return
	}

	startDeg := start * 180 / math.Pi
	stopDeg := stop * 180 / math.Pi
	for startDeg < 0 {
		startDeg += 360
		stopDeg += 360
	}
	if startDeg > stopDeg {
		startDeg, stopDeg = stopDeg, startDeg
	}
	sweep := stopDeg - startDeg
	x2, y2 := x+w, y+h

	ps := &g.style.Paint
	switch mode {
	case ArcOpen, ArcChord:
		if ps.Fill {
			g.surface.DrawArc(x, y, x2, y2, startDeg, sweep, false, ps.FillPaint())
		}
		if ps.Stroke {
			sp := ps.StrokePaint()
			g.surface.DrawArc(x, y, x2, y2, startDeg, sweep, false, sp)
			if mode == ArcChord {
				cx, cy := x+w/2, y+h/2
				a0 := startDeg * math.Pi / 180
				a1 := (startDeg + sweep) * math.Pi / 180
				g.surface.DrawLine(
					cx+w/2*math.Cos(a0), cy+h/2*math.Sin(a0),
					cx+w/2*math.Cos(a1), cy+h/2*math.Sin(a1), sp)
			}
		}
	case ArcPie:
		if ps.Fill {
			g.surface.DrawArc(x, y, x2, y2, startDeg, sweep, true, ps.FillPaint())
		}
		if ps.Stroke {
			g.surface.DrawArc(x, y, x2, y2, startDeg, sweep, true, ps.StrokePaint())
		}
	default:
		if ps.Fill {
			g.surface.DrawArc(x, y, x2, y2, startDeg, sweep, true, ps.FillPaint())
		}
		if ps.Stroke {
			g.surface.DrawArc(x, y, x2, y2, startDeg, sweep, false, ps.StrokePaint())
		}
	}
}

// Bezier draws a cubic Bezier curve from (x1, y1) to (x4, y4).
func (g *Graphics) Bezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	p := g.scratch
	p.Reset()
	p.MoveTo(x1, y1)
	p.CubicTo(x2, y2, x3, y3, x4, y4)
	g.drawPath(p)
}

// Curve draws the curve segment between (x2, y2) and (x3, y3), using the
// outer points as guides.
func (g *Graphics) Curve(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	b0, b1, b2, b3 := curveToBezier(Pt(x1, y1), Pt(x2, y2), Pt(x3, y3), Pt(x4, y4), g.tightness)
	p := g.scratch
	p.Reset()
	p.MoveTo(b0.X, b0.Y)
	p.CubicTo(b1.X, b1.Y, b2.X, b2.Y, b3.X, b3.Y)
	g.drawPath(p)
}

// Clip limits drawing to a rectangle placed according to the image mode.
func (g *Graphics) Clip(a, b, c, d float64) {
	switch g.style.ImageMode {
	case ImageCorner:
		if c < 0 {
			a += c
			c = -c
		}
		if d < 0 {
			b += d
			d = -d
		}
		g.surface.ClipRect(a, b, a+c, b+d)
	case ImageCorners:
		if c < a {
			a, c = c, a
		}
		if d < b {
			b, d = d, b
		}
		g.surface.ClipRect(a, b, c, d)
	case ImageCenter:
		c, d = math.Abs(c), math.Abs(d)
		x1, y1 := a-c/2, b-d/2
		g.surface.ClipRect(x1, y1, x1+c, y1+d)
	}
}

// NoClip removes clipping.
func (g *Graphics) NoClip() {
	g.surface.ResetClip()
}

// Set writes c to the device pixel (x, y). Coordinates outside the
// surface are ignored.
func (g *Graphics) Set(x, y int, c Color) {
	g.set(x, y, c)
}
