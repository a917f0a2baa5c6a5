package sketch

import "fmt"

// StyleStackDepth is the initial capacity of the style stack. The stack
// grows past it on demand.
const StyleStackDepth = 64

// Style is a snapshot of everything pushStyle saves.
type Style struct {
	Paint PaintState
	color colorModel

	RectMode    RectMode
	EllipseMode EllipseMode
	ImageMode   ImageMode

	TextFont    Font
	TextSize    float64
	TextLeading float64
	TextAlign   AlignX
	TextAlignY  AlignY
}

func defaultStyle() Style {
	return Style{
		Paint:       DefaultPaintState(),
		color:       defaultColorModel(),
		RectMode:    RectCorner,
		EllipseMode: EllipseDiameter,
		ImageMode:   ImageCorner,
		TextSize:    12,
		TextLeading: 14,
		TextAlign:   AlignLeft,
		TextAlignY:  AlignBaseline,
	}
}

// styleStack saves Style snapshots for pushStyle/popStyle.
type styleStack struct {
	items []Style
}

func newStyleStack() *styleStack {
	return &styleStack{items: make([]Style, 0, StyleStackDepth)}
}

func (s *styleStack) push(st Style) {
	s.items = append(s.items, st)
}

func (s *styleStack) pop() (Style, error) {
	if len(s.items) == 0 {
		return Style{}, fmt.Errorf("too many popStyle() without enough pushStyle(): %w", ErrStyleStackUnderflow)
	}
	st := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return st, nil
}

func (s *styleStack) depth() int { return len(s.items) }

// PushStyle saves the current style settings.
func (g *Graphics) PushStyle() {
	g.styles.push(g.style)
}

// PopStyle restores the style settings saved by the matching PushStyle.
func (g *Graphics) PopStyle() {
	st, err := g.styles.pop()
	if err != nil {
		fail("popStyle", err)
	}
	g.style = st
}

// Push saves both the transform and the style.
func (g *Graphics) Push() {
	g.PushMatrix()
	g.PushStyle()
}

// Pop restores both the style and the transform.
func (g *Graphics) Pop() {
	g.PopStyle()
	g.PopMatrix()
}

// CurrentStyle returns a copy of the current style.
func (g *Graphics) CurrentStyle() Style {
	return g.style
}

// SetStyle replaces the current style.
func (g *Graphics) SetStyle(st Style) {
	g.style = st
}
