package sketch

// CapKind is the sketch-level stroke cap selector passed to StrokeCap.
type CapKind int

const (
	// CapSquare ends strokes flat at the endpoint.
	CapSquare CapKind = iota
	// CapProject extends strokes by half the stroke weight.
	CapProject
	// CapRound ends strokes with a semicircle.
	CapRound
)

// JoinKind is the sketch-level stroke join selector passed to StrokeJoin.
type JoinKind int

const (
	// JoinMiter joins segments with a sharp corner.
	JoinMiter JoinKind = iota
	// JoinBevel cuts the corner off.
	JoinBevel
	// JoinRound rounds the corner.
	JoinRound
)

// lineCapFor maps a sketch cap to the surface cap. Unknown values fall
// back to butt.
func lineCapFor(k CapKind) LineCap {
	switch k {
	case CapRound:
		return LineCapRound
	case CapProject:
		return LineCapSquare
	default:
		return LineCapButt
	}
}

// lineJoinFor maps a sketch join to the surface join. Unknown values fall
// back to bevel.
func lineJoinFor(k JoinKind) LineJoin {
	switch k {
	case JoinMiter:
		return LineJoinMiter
	case JoinRound:
		return LineJoinRound
	default:
		return LineJoinBevel
	}
}

// PaintState is the current fill, stroke and tint configuration of a
// Graphics. It persists across shapes until changed.
type PaintState struct {
	Fill      bool
	FillColor Color

	Stroke       bool
	StrokeColor  Color
	StrokeWeight float64
	StrokeCap    CapKind
	StrokeJoin   JoinKind

	Tint      bool
	TintColor Color

	Smooth bool
}

// DefaultPaintState returns white fill, black 1px round-capped stroke and
// no tint.
func DefaultPaintState() PaintState {
	return PaintState{
		Fill:         true,
		FillColor:    White,
		Stroke:       true,
		StrokeColor:  Black,
		StrokeWeight: 1,
		StrokeCap:    CapRound,
		StrokeJoin:   JoinMiter,
		TintColor:    White,
		Smooth:       true,
	}
}

// FillPaint projects the state into a fill paint.
func (ps *PaintState) FillPaint() Paint {
	return Paint{
		Style:     PaintFill,
		Color:     ps.FillColor,
		AntiAlias: ps.Smooth,
	}
}

// StrokePaint projects the state into a stroke paint.
func (ps *PaintState) StrokePaint() Paint {
	return Paint{
		Style:      PaintStroke,
		Color:      ps.StrokeColor,
		Width:      ps.StrokeWeight,
		Cap:        lineCapFor(ps.StrokeCap),
		Join:       lineJoinFor(ps.StrokeJoin),
		MiterLimit: DefaultMiterLimit,
		AntiAlias:  ps.Smooth,
	}
}

// StrokeAsFill returns the stroke color as a fill paint, used for wide points.
func (ps *PaintState) StrokeAsFill() Paint {
	p := ps.StrokePaint()
	p.Style = PaintFill
	return p
}

// TintPaint returns the image paint, or nil when no tint is active.
func (ps *PaintState) TintPaint() *Paint {
	if !ps.Tint {
		return nil
	}
	return &Paint{
		Style:     PaintFill,
		Color:     ps.TintColor,
		AntiAlias: ps.Smooth,
		Filter:    &ColorFilter{Multiply: ps.TintColor},
	}
}
