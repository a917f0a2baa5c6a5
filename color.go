package sketch

import (
	"image/color"
	"math"
)

// Color is a packed 32-bit non-premultiplied color in 0xAARRGGBB order.
type Color uint32

// Common colors.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * a / 255
	g = uint32(c.G()) * a / 255
	b = uint32(c.B()) * a / 255
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Multiply returns the channel-wise product of c and m, the color-multiply
// filter applied to tinted images.
func (c Color) Multiply(m Color) Color {
	mul := func(x, y uint8) uint8 { return uint8(uint32(x) * uint32(y) / 255) }
	return ARGB(mul(c.A(), m.A()), mul(c.R(), m.R()), mul(c.G(), m.G()), mul(c.B(), m.B()))
}

// FromColor converts any color.Color to a packed Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ColorMode selects how color components are interpreted.
type ColorMode int

const (
	// RGB interprets components as red, green, blue.
	RGB ColorMode = iota
	// HSB interprets components as hue, saturation, brightness.
	HSB
)

// colorModel converts user color components into packed colors according to
// the current color mode and per-channel maxima.
type colorModel struct {
	mode                   ColorMode
	maxX, maxY, maxZ, maxA float64
}

func defaultColorModel() colorModel {
	return colorModel{mode: RGB, maxX: 255, maxY: 255, maxZ: 255, maxA: 255}
}

// scaled reports whether components need dividing by their maxima.
func (m colorModel) scaled() bool {
	return m.maxA != 1 || m.maxX != m.maxY || m.maxY != m.maxZ || m.maxZ != m.maxA
}

// packed interprets c either as a gray level or as a packed color. Values
// with an empty alpha byte that fit in the gray range are treated as gray.
func (m colorModel) packed(c Color) Color {
	if uint32(c)&0xFF000000 == 0 && float64(c) <= m.maxX {
		return m.gray(float64(c), m.maxA)
	}
	return c
}

// packedAlpha is packed with the alpha channel scaled by alpha/maxA.
func (m colorModel) packedAlpha(c Color, alpha float64) Color {
	if uint32(c)&0xFF000000 == 0 && float64(c) <= m.maxX {
		return m.gray(float64(c), alpha)
	}
	if alpha == m.maxA {
		return c
	}
	a := float64(c.A()) * (alpha / m.maxA)
	return c.WithAlpha(uint8(clamp(a, 0, 255)))
}

func (m colorModel) gray(gray, alpha float64) Color {
	gray = clamp(gray, 0, m.maxX)
	alpha = clamp(alpha, 0, m.maxA)
	v := gray
	a := alpha
	if m.scaled() {
		v = gray / m.maxX
		a = alpha / m.maxA
	}
	return pack(a, v, v, v)
}

func (m colorModel) xyz(x, y, z, a float64) Color {
	x = clamp(x, 0, m.maxX)
	y = clamp(y, 0, m.maxY)
	z = clamp(z, 0, m.maxZ)
	a = clamp(a, 0, m.maxA)

	if m.mode == HSB {
		x /= m.maxX
		y /= m.maxY
		z /= m.maxZ
		if m.scaled() {
			a /= m.maxA
		}
		r, g, b := hsbToRGB(x, y, z)
		return pack(a, r, g, b)
	}

	if m.scaled() {
		return pack(a/m.maxA, x/m.maxX, y/m.maxY, z/m.maxZ)
	}
	return pack(a, x, y, z)
}

// hsbToRGB converts unit hue, saturation and brightness to unit RGB.
func hsbToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	which := (h - math.Floor(h)) * 6
	f := which - math.Floor(which)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(which) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// pack converts unit channels to a Color, truncating like an int cast.
func pack(a, r, g, b float64) Color {
	return ARGB(unit8(a), unit8(r), unit8(g), unit8(b))
}

func unit8(v float64) uint8 {
	return uint8(clamp(v*255, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
