package core

import (
	"math"
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	if math.Abs(n.Length()-1.0) > 1e-9 {
		t.Fatalf("expected unit length, got %v", n.Length())
	}
}

func TestVec3ReflectSpecularRoundTrip(t *testing.T) {
	// A ray reflected off a mirror normal, then reflected again off the
	// same normal, must return parallel to the original direction.
	d := Vec3{1, -1, 0}.Normalize()
	n := Vec3{0, 1, 0}
	r1 := Reflect(d, n)
	r2 := Reflect(r1, n)
	if !r2.Equals(d) {
		t.Fatalf("expected round-trip reflection %v, got %v", d, r2)
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	// Grazing incidence from a dense to a less dense medium exceeds the
	// critical angle and must report !ok.
	uv := Vec3{0.99, -0.1411, 0}.Normalize()
	n := Vec3{0, 1, 0}
	_, ok := Refract(uv, n, 1.5)
	if ok {
		t.Fatalf("expected total internal reflection")
	}
}

func TestVec3HasNaNOrInf(t *testing.T) {
	cases := []struct {
		v    Vec3
		want bool
	}{
		{Vec3{1, 2, 3}, false},
		{Vec3{math.NaN(), 0, 0}, true},
		{Vec3{0, math.Inf(1), 0}, true},
	}
	for _, c := range cases {
		if got := c.v.HasNaNOrInf(); got != c.want {
			t.Errorf("HasNaNOrInf(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
