package sketch

import (
	"image/color"
	"testing"
)

func TestColorChannels(t *testing.T) {
	c := ARGB(0x80, 0x10, 0x20, 0x30)
	if c != 0x80102030 {
		t.Fatalf("ARGB = %#x, want 0x80102030", uint32(c))
	}
	if c.A() != 0x80 || c.R() != 0x10 || c.G() != 0x20 || c.B() != 0x30 {
		t.Errorf("channels = %d %d %d %d", c.A(), c.R(), c.G(), c.B())
	}
	if got := c.WithAlpha(0xFF); got != 0xFF102030 {
		t.Errorf("WithAlpha = %#x", uint32(got))
	}
	if got := c.NRGBA(); got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}) {
		t.Errorf("NRGBA = %v", got)
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, g, b, a := ARGB(128, 255, 0, 0).RGBA()
	if r != 0x8080 || g != 0 || b != 0 || a != 0x8080 {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestColorMultiply(t *testing.T) {
	tests := []struct {
		name string
		c, m Color
		want Color
	}{
		{"white is neutral", ARGB(10, 20, 30, 40), White, ARGB(10, 20, 30, 40)},
		{"black zeroes color", ARGB(255, 20, 30, 40), Black, ARGB(255, 0, 0, 0)},
		{"half alpha", ARGB(255, 200, 100, 0), ARGB(128, 255, 128, 0), ARGB(128, 200, 50, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Multiply(tt.m); got != tt.want {
				t.Errorf("Multiply = %#x, want %#x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"opaque", color.RGBA{R: 1, G: 2, B: 3, A: 255}, ARGB(255, 1, 2, 3)},
		{"premultiplied", color.RGBA{R: 128, A: 128}, ARGB(128, 255, 0, 0)},
		{"gray", color.Gray{Y: 7}, ARGB(255, 7, 7, 7)},
		{"transparent", color.Transparent, Transparent},
		{"self", ARGB(9, 8, 7, 6), ARGB(9, 8, 7, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor = %#x, want %#x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func nearColor(a, b Color) bool {
	d := func(x, y uint8) bool { return abs(int(x)-int(y)) <= 1 }
	return d(a.A(), b.A()) && d(a.R(), b.R()) && d(a.G(), b.G()) && d(a.B(), b.B())
}

func TestColorModelGray(t *testing.T) {
	m := defaultColorModel()
	tests := []struct {
		name        string
		gray, alpha float64
		want        Color
	}{
		{"black", 0, 255, Black},
		{"white", 255, 255, White},
		{"mid", 128, 255, ARGB(255, 128, 128, 128)},
		{"clamped", 400, 900, White},
		{"negative", -5, 255, Black},
		{"translucent", 255, 0, ARGB(0, 255, 255, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.gray(tt.gray, tt.alpha); !nearColor(got, tt.want) {
				t.Errorf("gray(%v, %v) = %#x, want %#x", tt.gray, tt.alpha, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestColorModelXYZ(t *testing.T) {
	tests := []struct {
		name       string
		model      colorModel
		x, y, z, a float64
		want       Color
	}{
		{"rgb", defaultColorModel(), 255, 0, 0, 255, ARGB(255, 255, 0, 0)},
		{"unit range", colorModel{mode: RGB, maxX: 1, maxY: 1, maxZ: 1, maxA: 1}, 0, 1, 0, 1, ARGB(255, 0, 255, 0)},
		{"custom range", colorModel{mode: RGB, maxX: 100, maxY: 100, maxZ: 100, maxA: 100}, 0, 0, 100, 100, ARGB(255, 0, 0, 255)},
		{"hsb red", colorModel{mode: HSB, maxX: 360, maxY: 100, maxZ: 100, maxA: 100}, 0, 100, 100, 100, ARGB(255, 255, 0, 0)},
		{"hsb gray", colorModel{mode: HSB, maxX: 360, maxY: 100, maxZ: 100, maxA: 100}, 200, 0, 100, 100, White},
		{"hsb black", colorModel{mode: HSB, maxX: 255, maxY: 255, maxZ: 255, maxA: 255}, 40, 255, 0, 255, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.xyz(tt.x, tt.y, tt.z, tt.a); !nearColor(got, tt.want) {
				t.Errorf("xyz = %#x, want %#x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestHSBToRGB(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b float64
	}{
		{0, 1, 0, 0},
		{0.5, 0, 1, 1},
		{1, 1, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hsbToRGB(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsbToRGB(%v, 1, 1) = %v %v %v, want %v %v %v", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorModelPacked(t *testing.T) {
	m := defaultColorModel()
	tests := []struct {
		name  string
		in    Color
		alpha float64
		want  Color
	}{
		{"small value is gray", 200, 255, ARGB(255, 200, 200, 200)},
		{"packed passes through", 0xFF00FF00, 255, 0xFF00FF00},
		{"alpha scales", 0xFF0000FF, 127.5, 0x7F0000FF},
		{"empty alpha above gray range", 0x00FF0000, 255, 0x00FF0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.packedAlpha(tt.in, tt.alpha)
			if !nearColor(got, tt.want) {
				t.Errorf("packedAlpha(%#x, %v) = %#x, want %#x", uint32(tt.in), tt.alpha, uint32(got), uint32(tt.want))
			}
		})
	}
	if got := m.packed(0xFF123456); got != 0xFF123456 {
		t.Errorf("packed = %#x", uint32(got))
	}
}
