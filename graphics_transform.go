package sketch

// PushMatrix saves the current transform. It panics when the matrix stack
// is full.
func (g *Graphics) PushMatrix() {
	if err := g.transform.Push(); err != nil {
		fail("pushMatrix", err)
	}
}

// PopMatrix restores the transform saved by the matching PushMatrix. It
// panics when nothing was pushed.
func (g *Graphics) PopMatrix() {
	m, err := g.transform.Pop()
	if err != nil {
		fail("popMatrix", err)
	}
	g.surface.SetTransform(m)
}

// concat composes op onto the current transform, keeping the surface in step.
func (g *Graphics) concat(op Matrix) {
	g.transform.Concat(op)
	g.surface.ConcatTransform(op)
}

// Translate moves the origin by (tx, ty).
func (g *Graphics) Translate(tx, ty float64) {
	g.concat(Translate(tx, ty))
}

// Rotate rotates by angle radians, clockwise on screen.
func (g *Graphics) Rotate(angle float64) {
	g.concat(Rotate(angle))
}

// RotateZ is the same as Rotate on a 2D renderer.
func (g *Graphics) RotateZ(angle float64) {
	g.Rotate(angle)
}

// RotateX is ignored with a warning.
func (g *Graphics) RotateX(angle float64) {
	g.warnDepth("rotateX")
}

// RotateY is ignored with a warning.
func (g *Graphics) RotateY(angle float64) {
	g.warnDepth("rotateY")
}

// Scale scales both axes by s.
func (g *Graphics) Scale(s float64) {
	g.concat(Scale(s, s))
}

// ScaleXY scales the axes independently.
func (g *Graphics) ScaleXY(sx, sy float64) {
	g.concat(Scale(sx, sy))
}

// Scale3 is ignored with a warning.
func (g *Graphics) Scale3(sx, sy, sz float64) {
	g.warnDepth("scale")
}

// Translate3 is ignored with a warning.
func (g *Graphics) Translate3(tx, ty, tz float64) {
	g.warnDepth("translate")
}

// ShearX shears along the x axis by angle radians.
func (g *Graphics) ShearX(angle float64) {
	g.concat(ShearX(angle))
}

// ShearY shears along the y axis by angle radians.
func (g *Graphics) ShearY(angle float64) {
	g.concat(ShearY(angle))
}

// ApplyMatrix composes the affine matrix
//
//	| n00 n01 n02 |
//	| n10 n11 n12 |
//
// onto the current transform.
func (g *Graphics) ApplyMatrix(n00, n01, n02, n10, n11, n12 float64) {
	g.concat(Matrix{A: n00, B: n01, C: n02, D: n10, E: n11, F: n12})
}

// ResetMatrix sets the transform to identity. Saved matrices are kept.
func (g *Graphics) ResetMatrix() {
	g.transform.Reset()
	g.surface.SetTransform(Identity())
}

// SetMatrix replaces the current transform.
func (g *Graphics) SetMatrix(m Matrix) {
	g.transform.Set(m)
	g.surface.SetTransform(m)
}

// GetMatrix returns a copy of the current transform.
func (g *Graphics) GetMatrix() Matrix {
	return g.transform.Current()
}

// MatrixDepth returns the number of saved transforms.
func (g *Graphics) MatrixDepth() int {
	return g.transform.Depth()
}

// ScreenX returns the device x coordinate of the logical point (x, y).
func (g *Graphics) ScreenX(x, y float64) float64 {
	return g.transform.Current().TransformPoint(Point{X: x, Y: y}).X
}

// ScreenY returns the device y coordinate of the logical point (x, y).
func (g *Graphics) ScreenY(x, y float64) float64 {
	return g.transform.Current().TransformPoint(Point{X: x, Y: y}).Y
}

// PrintMatrix logs the current transform at info level.
func (g *Graphics) PrintMatrix() {
	Logger().Info("sketch: matrix", "matrix", g.transform.Current().String())
}
