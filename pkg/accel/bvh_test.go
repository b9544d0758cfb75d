package accel

import (
	"testing"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

type mockPrim struct {
	id     uintptr
	bounds core.AABB
	hitT   float64
	hits   bool
}

func (m mockPrim) Bounds() core.AABB { return m.bounds }
func (m mockPrim) ID() uintptr       { return m.id }

func (m mockPrim) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	if !m.hits || !ray.Contains(m.hitT) {
		return nil, false
	}
	isec := arena.NewIsec()
	isec.T = m.hitT
	isec.Point = ray.At(m.hitT)
	isec.Primitive = m
	return isec, true
}

func (m mockPrim) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	return m.hits && ray.Contains(m.hitT)
}

func TestBVHIntersectReturnsClosest(t *testing.T) {
	prims := []core.Primitive{
		mockPrim{id: 1, bounds: core.NewAABB(core.Vec3{X: -1, Y: -1, Z: 4}, core.Vec3{X: 1, Y: 1, Z: 6}), hitT: 5, hits: true},
		mockPrim{id: 2, bounds: core.NewAABB(core.Vec3{X: -1, Y: -1, Z: 1}, core.Vec3{X: 1, Y: 1, Z: 3}), hitT: 2, hits: true},
		mockPrim{id: 3, bounds: core.NewAABB(core.Vec3{X: 10, Y: 10, Z: 10}, core.Vec3{X: 11, Y: 11, Z: 11}), hits: false},
	}
	bvh := NewBVH(prims)

	ray := core.NewRay(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: 1})
	arena := core.NewArena()
	mailbox := core.NewMailbox()

	isec, ok := bvh.Intersect(ray, arena, mailbox)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if isec.T != 2 {
		t.Fatalf("expected closest hit at t=2, got t=%v", isec.T)
	}
}

func TestBVHMailboxAvoidsDoubleTest(t *testing.T) {
	calls := 0
	p := countingPrim{id: 1, bounds: core.NewAABB(core.Vec3{X: -1, Y: -1, Z: -1}, core.Vec3{X: 1, Y: 1, Z: 1}), calls: &calls}
	bvh := NewBVH([]core.Primitive{p})

	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -5}, core.Vec3{X: 0, Y: 0, Z: 1})
	mailbox := core.NewMailbox()
	arena := core.NewArena()

	bvh.Intersect(ray, arena, mailbox)
	if calls != 1 {
		t.Fatalf("expected 1 intersect call, got %d", calls)
	}
}

type countingPrim struct {
	id     uintptr
	bounds core.AABB
	calls  *int
}

func (p countingPrim) Bounds() core.AABB { return p.bounds }
func (p countingPrim) ID() uintptr       { return p.id }
func (p countingPrim) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	*p.calls++
	return nil, false
}
func (p countingPrim) Occludes(ray core.Ray, mailbox *core.Mailbox) bool { return false }
