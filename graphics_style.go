package sketch

import "fmt"

// ColorMode sets how color components are interpreted. With no maxima the
// current ones are kept; one value sets all four; three set the color
// channels and keep the alpha maximum; four set every channel.
func (g *Graphics) ColorMode(mode ColorMode, max ...float64) {
	cm := &g.style.color
	switch len(max) {
	case 0:
	case 1:
		cm.maxX, cm.maxY, cm.maxZ, cm.maxA = max[0], max[0], max[0], max[0]
	case 3:
		cm.maxX, cm.maxY, cm.maxZ = max[0], max[1], max[2]
	case 4:
		cm.maxX, cm.maxY, cm.maxZ, cm.maxA = max[0], max[1], max[2], max[3]
	default:
		g.warn("colorMode", fmt.Sprintf("colorMode() takes 0, 1, 3 or 4 maximum values, got %d", len(max)))
		return
	}
	cm.mode = mode
}

// Gray returns an opaque gray in the current color mode.
func (g *Graphics) Gray(gray float64) Color {
	return g.style.color.gray(gray, g.style.color.maxA)
}

// GrayAlpha returns a gray with alpha in the current color mode.
func (g *Graphics) GrayAlpha(gray, alpha float64) Color {
	return g.style.color.gray(gray, alpha)
}

// RGB returns an opaque color from three components in the current color
// mode, red/green/blue or hue/saturation/brightness.
func (g *Graphics) RGB(x, y, z float64) Color {
	return g.style.color.xyz(x, y, z, g.style.color.maxA)
}

// RGBA is RGB with an alpha component.
func (g *Graphics) RGBA(x, y, z, a float64) Color {
	return g.style.color.xyz(x, y, z, a)
}

// Packed interprets rgb as a packed ARGB color. Values with an empty alpha
// byte that are within the gray range are taken as gray levels instead.
func (g *Graphics) Packed(rgb uint32) Color {
	return g.style.color.packed(Color(rgb))
}

// PackedAlpha is Packed with the alpha replaced relative to the current
// alpha maximum.
func (g *Graphics) PackedAlpha(rgb uint32, alpha float64) Color {
	return g.style.color.packedAlpha(Color(rgb), alpha)
}

// Red returns the red channel of c scaled to the current red maximum.
func (g *Graphics) Red(c Color) float64 {
	return float64(c.R()) / 255 * g.style.color.maxX
}

// Green returns the green channel of c scaled to the current green maximum.
func (g *Graphics) Green(c Color) float64 {
	return float64(c.G()) / 255 * g.style.color.maxY
}

// Blue returns the blue channel of c scaled to the current blue maximum.
func (g *Graphics) Blue(c Color) float64 {
	return float64(c.B()) / 255 * g.style.color.maxZ
}

// Alpha returns the alpha channel of c scaled to the current alpha maximum.
func (g *Graphics) Alpha(c Color) float64 {
	return float64(c.A()) / 255 * g.style.color.maxA
}

// Fill enables filling with c.
func (g *Graphics) Fill(c Color) {
	g.style.Paint.Fill = true
	g.style.Paint.FillColor = c
}

// NoFill disables filling.
func (g *Graphics) NoFill() {
	g.style.Paint.Fill = false
}

// Stroke enables stroking with c.
func (g *Graphics) Stroke(c Color) {
	g.style.Paint.Stroke = true
	g.style.Paint.StrokeColor = c
}

// NoStroke disables stroking.
func (g *Graphics) NoStroke() {
	g.style.Paint.Stroke = false
}

// Tint multiplies images drawn afterwards by c.
func (g *Graphics) Tint(c Color) {
	g.style.Paint.Tint = true
	g.style.Paint.TintColor = c
}

// NoTint draws images with their own colors.
func (g *Graphics) NoTint() {
	g.style.Paint.Tint = false
}

// StrokeWeight sets the stroke width. Non-positive widths are ignored.
func (g *Graphics) StrokeWeight(weight float64) {
	if weight <= 0 {
		g.warn("strokeWeight", fmt.Sprintf("strokeWeight(%g) ignored, the weight must be positive", weight))
		return
	}
	g.style.Paint.StrokeWeight = weight
}

// StrokeCap sets how stroke ends are drawn.
func (g *Graphics) StrokeCap(c CapKind) {
	g.style.Paint.StrokeCap = c
}

// StrokeJoin sets how stroke corners are drawn.
func (g *Graphics) StrokeJoin(j JoinKind) {
	g.style.Paint.StrokeJoin = j
}

// Smooth enables anti-aliasing.
func (g *Graphics) Smooth() {
	if !g.caps.SupportsAntialias {
		g.warnUnavailable("smooth")
	}
	g.style.Paint.Smooth = true
}

// NoSmooth disables anti-aliasing.
func (g *Graphics) NoSmooth() {
	g.style.Paint.Smooth = false
}

// Background replaces every pixel with c, ignoring transform and clip.
func (g *Graphics) Background(c Color) {
	g.surface.Clear(c)
}

// Clear makes every pixel fully transparent.
func (g *Graphics) Clear() {
	g.surface.Clear(Transparent)
}
