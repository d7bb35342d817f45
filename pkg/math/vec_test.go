package math

import (
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", z)
	}
}

func TestVec3MaxClamp(t *testing.T) {
	got := Vec3{0.1, 0.7, 1.4}.Max(0.5).Clamp(0, 1)
	want := Vec3{0.5, 0.7, 1}
	if got != want {
		t.Errorf("Max(0.5).Clamp(0,1) = %v, want %v", got, want)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.in); got != tt.want {
			t.Errorf("Smoothstep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuadBezierEndpoints(t *testing.T) {
	p0 := Vec3{1, 2, 3}
	p1 := Vec3{4, 5, 6}
	p2 := Vec3{7, 8, 9}

	if got := QuadBezier(p0, p1, p2, 0); got != p0 {
		t.Errorf("QuadBezier(t=0) = %v, want %v", got, p0)
	}
	if got := QuadBezier(p0, p1, p2, 1); got != p2 {
		t.Errorf("QuadBezier(t=1) = %v, want %v", got, p2)
	}
}
