package common

// Color is a float RGBA color with channels in [0, 1]. Visual components
// store their tint as a Color; the renderer maps it onto ebiten's
// ColorScale at draw time.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// White is the neutral tint.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// MulRGB returns c with the R, G, and B channels scaled by m. Alpha is
// left untouched.
func (c Color) MulRGB(m float64) Color {
	return Color{R: c.R * m, G: c.G * m, B: c.B * m, A: c.A}
}

// LerpRGB interpolates the R, G, and B channels from a toward b by t,
// keeping a's alpha.
func LerpRGB(a, b Color, t float64) Color {
	return Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: a.A,
	}
}
