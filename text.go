package sketch

import (
	"fmt"
	"math"
)

// Font is a sized font face used to measure and draw text. The text
// package provides an OpenType implementation. Implementations must be
// comparable, typically pointer types.
type Font interface {
	// Size returns the font size in pixels.
	Size() float64

	// WithSize returns the same face at another size.
	WithSize(size float64) Font

	// Width returns the advance width of s at the font size.
	Width(s string) float64

	// Ascent and Descent return the distances above and below the
	// baseline at the font size, both positive.
	Ascent() float64
	Descent() float64
}

// AlignX is the horizontal text alignment.
type AlignX int

const (
	// AlignLeft starts text at x.
	AlignLeft AlignX = iota
	// AlignCenter centers text on x.
	AlignCenter
	// AlignRight ends text at x.
	AlignRight
)

// AlignY is the vertical text alignment.
type AlignY int

const (
	// AlignBaseline puts the first baseline at y.
	AlignBaseline AlignY = iota
	// AlignTop puts the top of the first line at y.
	AlignTop
	// AlignBottom puts the bottom of the last line at y.
	AlignBottom
	// AlignMiddle centers the text block on y.
	AlignMiddle
)

// leadingFactor relates the default line spacing to the font height.
const leadingFactor = 1.275

// TextFont sets the font, at its own size or at the optional size.
// The leading is reset.
func (g *Graphics) TextFont(f Font, size ...float64) {
	s := f.Size()
	if len(size) > 0 {
		if size[0] > 0 {
			s = size[0]
		} else {
			g.warn("textFont", fmt.Sprintf("textFont() ignoring size %g, the text size must be larger than zero", size[0]))
			s = g.style.TextSize
		}
	}
	g.style.TextFont = f
	g.applyTextSize(s)
}

// TextSize sets the font size and resets the leading. Non-positive sizes
// are ignored.
func (g *Graphics) TextSize(size float64) {
	if size <= 0 {
		g.warn("textSize", fmt.Sprintf("textSize(%g) ignored, the text size must be larger than zero", size))
		return
	}
	g.requireFont("textSize")
	g.applyTextSize(size)
}

func (g *Graphics) applyTextSize(size float64) {
	if g.style.TextFont.Size() != size {
		g.style.TextFont = g.style.TextFont.WithSize(size)
	}
	g.style.TextSize = size
	g.style.TextLeading = (g.TextAscent() + g.TextDescent()) * leadingFactor
}

func (g *Graphics) requireFont(op string) Font {
	if g.style.TextFont == nil {
		fail(op, ErrNoFont)
	}
	return g.style.TextFont
}

// TextLeading sets the distance between baselines of consecutive lines.
// TextSize and TextFont reset it.
func (g *Graphics) TextLeading(leading float64) {
	g.style.TextLeading = leading
}

// TextAlign sets the horizontal and, optionally, vertical alignment.
// The vertical alignment defaults to AlignBaseline.
func (g *Graphics) TextAlign(x AlignX, y ...AlignY) {
	g.style.TextAlign = x
	g.style.TextAlignY = AlignBaseline
	if len(y) > 0 {
		g.style.TextAlignY = y[0]
	}
}

// TextAscent returns the ascent of the current font.
func (g *Graphics) TextAscent() float64 {
	return g.requireFont("textAscent").Ascent()
}

// TextDescent returns the descent of the current font.
func (g *Graphics) TextDescent() float64 {
	return g.requireFont("textDescent").Descent()
}

// TextWidth returns the advance width of s in the current font.
func (g *Graphics) TextWidth(s string) float64 {
	return g.requireFont("textWidth").Width(s)
}

// Text draws s in the fill color. Lines split on '\n' advance by the
// leading; the block is placed according to the text alignment.
func (g *Graphics) Text(s string, x, y float64) {
	g.requireFont("text")

	runes := []rune(s)
	var high float64
	for _, r := range runes {
		if r == '\n' {
			high += g.style.TextLeading
		}
	}
	switch g.style.TextAlignY {
	case AlignMiddle:
		y += (g.TextAscent() - high) / 2
	case AlignTop:
		y += g.TextAscent()
	case AlignBottom:
		y -= g.TextDescent() + high
	}

	start := 0
	for i, r := range runes {
		if r == '\n' {
			g.textLine(string(runes[start:i]), x, y)
			start = i + 1
			y += g.style.TextLeading
		}
	}
	if start < len(runes) {
		g.textLine(string(runes[start:]), x, y)
	}
}

// TextBox draws s wrapped to a box placed according to the rect mode.
// Lines that do not fit in the box are dropped.
func (g *Graphics) TextBox(s string, a, b, c, d float64) {
	f := g.requireFont("text")
	x1, y1, x2, y2 := g.rectCorners(a, b, c, d)
	boxWidth := x2 - x1
	boxHeight := y2 - y1

	runes := append([]rune(s), '\n')
	width := func(from, to int) float64 { return f.Width(string(runes[from:to])) }
	spaceWidth := f.Width(" ")

	var lines [][2]int
	start := 0
	for i, r := range runes {
		if r != '\n' {
			continue
		}
		var ok bool
		lines, ok = wrapSentence(runes, start, i, boxWidth, spaceWidth, width, lines)
		if !ok {
			break
		}
		start = i + 1
	}

	lineX := x1
	switch g.style.TextAlign {
	case AlignCenter:
		lineX += boxWidth / 2
	case AlignRight:
		lineX = x2
	}

	ascent, descent, leading := g.TextAscent(), g.TextDescent(), g.style.TextLeading
	fit := 1 + int(math.Floor((boxHeight-ascent-descent)/leading))
	count := min(len(lines), fit)

	var y float64
	switch g.style.TextAlignY {
	case AlignMiddle:
		lineHigh := ascent + leading*float64(count-1)
		y = y1 + ascent + (boxHeight-lineHigh)/2
	case AlignBottom:
		y = y2 - descent - leading*float64(count-1)
	default:
		y = y1 + ascent
	}
	for i := 0; i < count; i++ {
		g.textLine(string(runes[lines[i][0]:lines[i][1]]), lineX, y)
		y += leading
	}
}

// wrapSentence breaks runes[start:stop], a run without newlines, into
// lines no wider than boxWidth and appends their bounds to lines. ok is
// false when not even one character fits.
func wrapSentence(runes []rune, start, stop int, boxWidth, spaceWidth float64,
	width func(from, to int) float64, lines [][2]int) ([][2]int, bool) {
	var runningX float64
	lineStart, wordStart, index := start, start, start
	for index <= stop {
		if index != stop && runes[index] != ' ' {
			index++
			continue
		}
		wordWidth := width(wordStart, index)
		switch {
		case runningX+wordWidth > boxWidth && runningX != 0:
			index = wordStart
			lines = append(lines, [2]int{lineStart, index})
			for index < stop && runes[index] == ' ' {
				index++
			}
			lineStart, wordStart, runningX = index, index, 0
		case runningX+wordWidth > boxWidth:
			for {
				index--
				if index == wordStart {
					return lines, false
				}
				if width(wordStart, index) <= boxWidth {
					break
				}
			}
			lines = append(lines, [2]int{lineStart, index})
			lineStart, wordStart, runningX = index, index, 0
		case index == stop:
			lines = append(lines, [2]int{lineStart, index})
			index++
		default:
			runningX += wordWidth + spaceWidth
			wordStart = index + 1
			index++
		}
	}
	return lines, true
}

// textLine draws one line placed by the horizontal alignment.
func (g *Graphics) textLine(s string, x, y float64) {
	f := g.style.TextFont
	switch g.style.TextAlign {
	case AlignCenter:
		x -= f.Width(s) / 2
	case AlignRight:
		x -= f.Width(s)
	}
	g.surface.DrawText(s, x, y, f, g.style.Paint.FillPaint())
}
