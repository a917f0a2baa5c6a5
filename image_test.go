package sketch_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/recording"
)

func bitmaps(rec *recording.Recorder) []recording.DrawBitmapCommand {
	return commandsOf[recording.DrawBitmapCommand](rec)
}

func TestImagePlacement(t *testing.T) {
	tests := []struct {
		name    string
		mode    sketch.ImageMode
		draw    func(g *sketch.Graphics, pm *sketch.Pixmap)
		wantDst sketch.Rect
		wantSrc image.Rectangle
	}{
		{"natural size", sketch.ImageCorner, func(g *sketch.Graphics, pm *sketch.Pixmap) { g.Image(pm, 10, 20) },
			sketch.Rect{X1: 10, Y1: 20, X2: 14, Y2: 22}, image.Rect(0, 0, 4, 2)},
		{"centered", sketch.ImageCenter, func(g *sketch.Graphics, pm *sketch.Pixmap) { g.Image(pm, 10, 20) },
			sketch.Rect{X1: 8, Y1: 19, X2: 12, Y2: 21}, image.Rect(0, 0, 4, 2)},
		{"sized with negative width", sketch.ImageCorner, func(g *sketch.Graphics, pm *sketch.Pixmap) { g.ImageSize(pm, 10, 10, -4, 8) },
			sketch.Rect{X1: 6, Y1: 10, X2: 10, Y2: 18}, image.Rect(0, 0, 4, 2)},
		{"corners swapped", sketch.ImageCorners, func(g *sketch.Graphics, pm *sketch.Pixmap) { g.ImageSize(pm, 20, 20, 10, 10) },
			sketch.Rect{X1: 10, Y1: 10, X2: 20, Y2: 20}, image.Rect(0, 0, 4, 2)},
		{"region", sketch.ImageCorner, func(g *sketch.Graphics, pm *sketch.Pixmap) { g.ImageRegion(pm, 0, 0, 8, 8, 1, 0, 3, 2) },
			sketch.Rect{X2: 8, Y2: 8}, image.Rect(1, 0, 3, 2)},
		{"centered region", sketch.ImageCenter, func(g *sketch.Graphics, pm *sketch.Pixmap) { g.ImageSize(pm, 50, 50, -10, 20) },
			sketch.Rect{X1: 45, Y1: 40, X2: 55, Y2: 60}, image.Rect(0, 0, 4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGraphics(t)
			g.ImageMode(tt.mode)
			tt.draw(g, sketch.NewPixmap(4, 2, sketch.FormatARGB))
			b := bitmaps(rec)
			if len(b) != 1 {
				t.Fatalf("got %d bitmaps, want 1", len(b))
			}
			if b[0].Dst != tt.wantDst || b[0].Src != tt.wantSrc {
				t.Errorf("dst %v src %v, want %v %v", b[0].Dst, b[0].Src, tt.wantDst, tt.wantSrc)
			}
			if b[0].Paint != nil {
				t.Errorf("untinted draw has paint %+v", b[0].Paint)
			}
		})
	}
}

func TestImageEmptySkipped(t *testing.T) {
	g, rec := newTestGraphics(t)
	g.Image(sketch.NewPixmap(0, 3, sketch.FormatARGB), 0, 0)
	g.ImageSize(sketch.NewPixmap(3, 0, sketch.FormatARGB), 0, 0, 5, 5)
	if rec.Len() != 0 {
		t.Errorf("empty images recorded %d commands", rec.Len())
	}
}

func TestImageTint(t *testing.T) {
	g, rec := newTestGraphics(t)
	pm := sketch.NewPixmap(1, 1, sketch.FormatARGB)
	g.Tint(blue)
	g.Image(pm, 0, 0)
	g.NoTint()
	g.Image(pm, 0, 0)

	b := bitmaps(rec)
	if b[0].Paint == nil || b[0].Paint.Filter == nil || b[0].Paint.Filter.Multiply != blue {
		t.Errorf("tinted paint = %+v", b[0].Paint)
	}
	if b[1].Paint != nil {
		t.Errorf("NoTint paint = %+v", b[1].Paint)
	}
}

func TestImageFormats(t *testing.T) {
	tests := []struct {
		name   string
		format sketch.ImageFormat
		pixel  sketch.Color
		want   color.NRGBA
	}{
		{"argb", sketch.FormatARGB, sketch.ARGB(128, 10, 20, 30), color.NRGBA{R: 10, G: 20, B: 30, A: 128}},
		{"rgb", sketch.FormatRGB, sketch.ARGB(0, 10, 20, 30), color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{"alpha", sketch.FormatAlpha, sketch.Color(0x80), color.NRGBA{R: 255, G: 255, B: 255, A: 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGraphics(t)
			pm := sketch.NewPixmap(1, 1, tt.format)
			pm.Set(0, 0, tt.pixel)
			g.Image(pm, 0, 0)
			img := rec.Resources().GetImage(bitmaps(rec)[0].Image)
			if got := img.NRGBAAt(0, 0); got != tt.want {
				t.Errorf("uploaded pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageUploadCache(t *testing.T) {
	g, rec := newTestGraphics(t)
	pm := sketch.NewPixmap(2, 1, sketch.FormatARGB)
	pm.Set(0, 0, red)

	g.Image(pm, 0, 0)
	if pm.Modified() {
		t.Error("upload did not clear the modified flag")
	}

	// Writing without marking the image modified keeps the cached copy.
	pm.Pixels()[0] = uint32(blue)
	g.Image(pm, 0, 0)

	pm.Set(1, 0, blue)
	g.Image(pm, 0, 0)

	pm.Pixels()[1] = uint32(red)
	g.ForgetImage(pm)
	g.Image(pm, 0, 0)

	b := bitmaps(rec)
	pool := rec.Resources()
	if b[0].Image != b[1].Image {
		t.Error("unmodified image uploaded again")
	}
	tests := []struct {
		draw  int
		x     int
		color sketch.Color
	}{
		{1, 0, red},
		{2, 0, blue},
		{2, 1, blue},
		{3, 1, red},
	}
	for _, tt := range tests {
		got := sketch.FromColor(pool.GetImage(b[tt.draw].Image).At(tt.x, 0))
		if got != tt.color {
			t.Errorf("draw %d pixel %d = %#x, want %#x", tt.draw, tt.x, uint32(got), uint32(tt.color))
		}
	}
}

func TestImageResizedPixmapReuploads(t *testing.T) {
	g, rec := newTestGraphics(t)
	small := sketch.NewPixmap(1, 1, sketch.FormatARGB)
	g.Image(small, 0, 0)
	g.ForgetImage(small)
	g.Image(sketch.NewPixmap(3, 3, sketch.FormatARGB), 0, 0)

	b := bitmaps(rec)
	if got := rec.Resources().GetImage(b[1].Image).Bounds().Dx(); got != 3 {
		t.Errorf("second upload width = %d, want 3", got)
	}
}
