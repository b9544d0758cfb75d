package primitives

import (
	"math"
	"testing"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

func TestSphereIntersectFrontFace(t *testing.T) {
	s := NewSphere(core.Vec3{}, 1, nil)
	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -5}, core.Vec3{X: 0, Y: 0, Z: 1})
	arena := core.NewArena()

	isec, ok := s.Intersect(ray, arena, core.NewMailbox())
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(isec.T-4) > 1e-9 {
		t.Fatalf("expected t=4, got %v", isec.T)
	}
	if !isec.FrontFace {
		t.Fatalf("expected front face hit")
	}
	if !isec.Normal.Equals(core.Vec3{X: 0, Y: 0, Z: -1}) {
		t.Fatalf("expected normal (0,0,-1), got %v", isec.Normal)
	}
}

func TestSphereBoundingBoxClosure(t *testing.T) {
	s := NewSphere(core.Vec3{X: 1, Y: 2, Z: 3}, 2, nil)
	for _, dir := range []core.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: -1}, {Y: -1}, {Z: -1}} {
		ray := core.NewRay(s.Center.Subtract(dir.Multiply(10)), dir)
		isec, ok := s.Intersect(ray, core.NewArena(), core.NewMailbox())
		if !ok {
			t.Fatalf("expected hit along %v", dir)
		}
		b := s.Bounds()
		const eps = 1e-6
		if isec.Point.X < b.Min.X-eps || isec.Point.X > b.Max.X+eps ||
			isec.Point.Y < b.Min.Y-eps || isec.Point.Y > b.Max.Y+eps ||
			isec.Point.Z < b.Min.Z-eps || isec.Point.Z > b.Max.Z+eps {
			t.Fatalf("hit point %v outside bounding box %v", isec.Point, b)
		}
	}
}

func TestSphereOccludesMatchesIntersect(t *testing.T) {
	s := NewSphere(core.Vec3{}, 1, nil)
	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -5}, core.Vec3{X: 0, Y: 0, Z: 1})
	_, wantHit := s.Intersect(ray, core.NewArena(), core.NewMailbox())
	if got := s.Occludes(ray, core.NewMailbox()); got != wantHit {
		t.Fatalf("Occludes() = %v, want %v", got, wantHit)
	}
}
