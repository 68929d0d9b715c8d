package common

import "testing"

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: -0.5, want: 0},
		{in: 0, want: 0},
		{in: 0.25, want: 0.25},
		{in: 1, want: 1},
		{in: 1.5, want: 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(2, 10, 0); got != 2 {
		t.Fatalf("Lerp t=0 = %v, want 2", got)
	}
	if got := Lerp(2, 10, 1); got != 10 {
		t.Fatalf("Lerp t=1 = %v, want 10", got)
	}
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Fatalf("Lerp t=0.5 = %v, want 6", got)
	}
}

func TestLerpVec3(t *testing.T) {
	a := Vec3All(1)
	b := Vec3All(0.95)
	if got := LerpVec3(a, b, 1); got != b {
		t.Fatalf("LerpVec3 t=1 = %v, want %v", got, b)
	}
	mid := LerpVec3(a, b, 0.5)
	if mid.X != 0.975 || mid.Y != 0.975 || mid.Z != 0.975 {
		t.Fatalf("LerpVec3 t=0.5 = %v, want 0.975 per component", mid)
	}
}

func TestMulRGBKeepsAlpha(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0.2, A: 0.6}
	got := c.MulRGB(0.85)
	if got.A != 0.6 {
		t.Fatalf("MulRGB changed alpha: %v", got.A)
	}
	if got.R != 0.85 || got.G != 0.5*0.85 || got.B != 0.2*0.85 {
		t.Fatalf("MulRGB = %v", got)
	}
}

func TestLerpRGBKeepsSourceAlpha(t *testing.T) {
	a := Color{R: 1, G: 1, B: 1, A: 0.3}
	b := Color{R: 0, G: 0, B: 0, A: 1}
	got := LerpRGB(a, b, 0.5)
	if got.A != 0.3 {
		t.Fatalf("LerpRGB alpha = %v, want 0.3", got.A)
	}
	if got.R != 0.5 || got.G != 0.5 || got.B != 0.5 {
		t.Fatalf("LerpRGB = %v", got)
	}
}
