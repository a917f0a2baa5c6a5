package main

import (
	"math"
	"slices"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface"
)

// scene draws one frame. t runs from 0 to 1 over the animation.
type scene func(g *sketch.Graphics, t float64)

var scenes = map[string]scene{
	"shapes":    drawShapes,
	"paths":     drawPaths,
	"strips":    drawStrips,
	"transform": drawTransform,
	"text":      drawText,
	"images":    drawImages,
}

// sceneNeeds lists what each scene needs from its surface. Scenes not
// listed need nothing.
var sceneNeeds = map[string]surface.Requirements{
	"text": {Text: true},
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// cell maps the unit square to cell (col, row) of a 3x2 grid.
func cell(g *sketch.Graphics, col, row int) {
	w, h := float64(g.Width())/3, float64(g.Height())/2
	g.Translate(w*float64(col), h*float64(row))
	g.Scale(math.Min(w, h))
}

func drawShapes(g *sketch.Graphics, t float64) {
	g.Background(g.RGB(30, 40, 60))
	g.StrokeWeight(4)

	g.Push()
	cell(g, 0, 0)
	g.StrokeWeight(0.02)
	g.Fill(g.RGBA(255, 80, 80, 200))
	g.Stroke(g.Gray(255))
	g.Rect(0.15, 0.15, 0.7, 0.7)
	g.Fill(g.RGBA(80, 255, 80, 200))
	g.RoundedRect(0.25, 0.25, 0.5, 0.5, 0.1, 0.1, 0.1, 0.1)
	g.Pop()

	g.Push()
	cell(g, 1, 0)
	g.StrokeWeight(0.02)
	g.Fill(g.RGBA(80, 80, 255, 200))
	g.Stroke(g.Gray(255))
	g.Ellipse(0.5, 0.5, 0.7, 0.5+0.2*math.Sin(2*math.Pi*t))
	g.Pop()

	modes := []sketch.ArcMode{sketch.ArcOpen, sketch.ArcChord, sketch.ArcPie}
	for i, mode := range modes {
		g.Push()
		cell(g, i, 1)
		g.StrokeWeight(0.02)
		g.Fill(g.RGB(255, 200, 0))
		g.Stroke(g.Gray(0))
		g.Arc(0.5, 0.5, 0.7, 0.7, 0, math.Pi*(0.5+t), mode)
		g.Pop()
	}

	g.Push()
	cell(g, 2, 0)
	g.StrokeWeight(0.02)
	g.Fill(g.RGB(200, 100, 255))
	g.Triangle(0.1, 0.9, 0.5, 0.1, 0.9, 0.9)
	g.Pop()
}

func drawPaths(g *sketch.Graphics, t float64) {
	g.Background(g.Gray(245))

	g.Push()
	cell(g, 0, 0)
	g.StrokeWeight(0.015)
	g.Stroke(g.Gray(0))
	g.Fill(g.RGB(255, 220, 0))
	g.BeginShape(sketch.Polygon)
	for i := 0; i < 10; i++ {
		r := 0.4
		if i%2 == 1 {
			r = 0.18
		}
		a := float64(i)*math.Pi/5 - math.Pi/2 + 2*math.Pi*t/5
		g.Vertex(0.5+r*math.Cos(a), 0.5+r*math.Sin(a))
	}
	g.EndShape(sketch.Close)
	g.Pop()

	g.Push()
	cell(g, 1, 0)
	g.StrokeWeight(0.015)
	g.Fill(g.RGB(0, 160, 200))
	g.BeginShape(sketch.Polygon)
	g.Vertex(0.1, 0.1)
	g.Vertex(0.9, 0.1)
	g.Vertex(0.9, 0.9)
	g.Vertex(0.1, 0.9)
	g.BeginContour()
	g.Vertex(0.3, 0.3)
	g.Vertex(0.3, 0.7)
	g.Vertex(0.7, 0.7)
	g.Vertex(0.7, 0.3)
	g.EndContour()
	g.EndShape(sketch.Close)
	g.Pop()

	g.Push()
	cell(g, 2, 0)
	g.StrokeWeight(0.02)
	g.NoFill()
	g.Stroke(g.RGB(200, 0, 80))
	g.BeginShape(sketch.Polygon)
	g.Vertex(0.1, 0.5)
	g.BezierVertex(0.3, 0.1, 0.7, 0.9, 0.9, 0.5)
	g.EndShape(sketch.Open)
	g.Pop()

	g.Push()
	cell(g, 0, 1)
	g.StrokeWeight(0.02)
	g.NoFill()
	g.Stroke(g.RGB(0, 120, 0))
	g.BeginShape(sketch.Polygon)
	for i := 0; i <= 8; i++ {
		x := 0.05 + 0.9*float64(i)/8
		g.CurveVertex(x, 0.5+0.3*math.Sin(float64(i)+2*math.Pi*t))
	}
	g.EndShape(sketch.Open)
	g.Pop()

	caps := []sketch.CapKind{sketch.CapSquare, sketch.CapProject, sketch.CapRound}
	joins := []sketch.JoinKind{sketch.JoinMiter, sketch.JoinBevel, sketch.JoinRound}
	g.Push()
	cell(g, 1, 1)
	g.StrokeWeight(0.06)
	g.NoFill()
	g.Stroke(g.Gray(40))
	for i := range caps {
		g.StrokeCap(caps[i])
		g.StrokeJoin(joins[i])
		y := 0.2 + 0.3*float64(i)
		g.BeginShape(sketch.Polygon)
		g.Vertex(0.15, y+0.1)
		g.Vertex(0.5, y-0.05)
		g.Vertex(0.85, y+0.1)
		g.EndShape(sketch.Open)
	}
	g.Pop()

	g.Push()
	cell(g, 2, 1)
	g.StrokeWeight(0.02)
	g.Stroke(g.Gray(0))
	g.Fill(g.RGBA(255, 0, 0, 120))
	g.Bezier(0.1, 0.9, 0.1, 0.1, 0.9, 0.1, 0.9, 0.9)
	g.Curve(0, 1, 0.1, 0.5, 0.9, 0.5, 1, 1)
	g.Pop()
}

func drawStrips(g *sketch.Graphics, t float64) {
	g.Background(g.Gray(20))
	g.Stroke(g.Gray(255))
	g.StrokeWeight(1.5)
	g.ColorMode(sketch.HSB, 1)

	kinds := []sketch.ShapeKind{
		sketch.TriangleStrip, sketch.TriangleFan, sketch.QuadStrip,
		sketch.Lines, sketch.LineLoop, sketch.Points,
	}
	for i, kind := range kinds {
		g.Push()
		col, row := i%3, i/3
		w, h := float64(g.Width())/3, float64(g.Height())/2
		g.Translate(w*float64(col)+w/2, h*float64(row)+h/2)
		r := math.Min(w, h) * 0.4
		if kind == sketch.Points {
			g.StrokeWeight(6)
		}
		g.BeginShape(kind)
		n := 12
		for j := 0; j < n; j++ {
			g.Fill(g.RGB(math.Mod(float64(j)/float64(n)+t, 1), 0.8, 0.9))
			a := 2 * math.Pi * float64(j) / float64(n)
			rr := r
			if j%2 == 1 && kind != sketch.TriangleFan {
				rr = r * 0.5
			}
			if kind == sketch.TriangleFan && j == 0 {
				g.Vertex(0, 0)
				continue
			}
			g.Vertex(rr*math.Cos(a), rr*math.Sin(a))
		}
		g.EndShape(sketch.Close)
		g.Pop()
	}
}

func drawTransform(g *sketch.Graphics, t float64) {
	g.Background(g.Gray(255))
	g.NoStroke()
	g.RectMode(sketch.RectCenter)
	g.Translate(float64(g.Width())/2, float64(g.Height())/2)

	for i := 0; i < 12; i++ {
		g.PushMatrix()
		g.Rotate(2*math.Pi*float64(i)/12 + 2*math.Pi*t)
		g.Translate(math.Min(float64(g.Width()), float64(g.Height()))*0.3, 0)
		g.ShearX(0.3)
		g.Fill(g.RGBA(float64(i)*20, 80, 255-float64(i)*20, 200))
		g.Rect(0, 0, 40, 40)
		g.PopMatrix()
	}
	g.Fill(g.Gray(0))
	g.Circle(0, 0, 20)
}

func drawText(g *sketch.Graphics, t float64) {
	g.Background(g.Gray(250))
	g.Fill(g.Gray(20))
	g.TextSize(28)

	x := float64(g.Width()) / 2
	g.TextAlign(sketch.AlignCenter, sketch.AlignTop)
	g.Text("sketch", x, 20)

	g.TextSize(16)
	g.TextAlign(sketch.AlignLeft)
	g.Text("left aligned\nsecond line", 20, 100)
	g.TextAlign(sketch.AlignRight)
	g.Text("right aligned\nsecond line", float64(g.Width())-20, 100)

	g.NoFill()
	g.Stroke(g.Gray(150))
	box := 200 + 150*t
	g.Rect(20, 180, box, 200)
	g.Fill(g.Gray(20))
	g.TextAlign(sketch.AlignLeft, sketch.AlignTop)
	g.TextBox("The quick brown fox jumps over the lazy dog. Text boxes wrap at word boundaries and drop lines that do not fit.", 20, 180, box, 200)
}

// checker is a small pixmap drawn by the images scene.
var checker = func() *sketch.Pixmap {
	pm := sketch.NewPixmap(8, 8, sketch.FormatARGB)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := sketch.White
			if (x+y)%2 == 0 {
				c = sketch.ARGB(255, 40, 40, 40)
			}
			pm.Set(x, y, c)
		}
	}
	return pm
}()

func drawImages(g *sketch.Graphics, t float64) {
	g.Background(g.Gray(200))
	g.Image(checker, 20, 20)
	g.ImageSize(checker, 60, 20, 160, 160)

	g.NoSmooth()
	g.ImageSize(checker, 240, 20, 160, 160)
	g.Smooth()

	g.Tint(g.RGBA(255, 120, 0, 255*(0.5+0.5*t)))
	g.ImageMode(sketch.ImageCenter)
	g.ImageRegion(checker, float64(g.Width())-120, 100, 160, 160, 0, 0, 4, 4)
	g.NoTint()

	g.Clip(20, 220, 200, 100)
	g.Fill(g.RGB(0, 100, 200))
	g.Ellipse(120, 270, 260, 160)
	g.NoClip()
}
