package common

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps t to the [0, 1] range.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Vec3 is a 3-component vector. Transforms carry a Vec3 scale; the 2D
// renderer only reads X and Y, Z rides along for uniform-scale consumers.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3All returns a vector with all three components set to v.
func Vec3All(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// LerpVec3 linearly interpolates each component of a and b by t.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}
