// Package accel implements the acceleration structure used to intersect
// rays against the scene: a median-split bounding volume hierarchy that
// consults the active RenderContext's mailbox to skip re-testing a
// primitive it has already rejected for the current ray.
package accel

import (
	"sort"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// leafThreshold is the shape count at or below which a BVH node stores its
// primitives directly instead of splitting further.
const leafThreshold = 8

// node is an internal BVH tree node.
type node struct {
	bounds core.AABB
	left   *node
	right  *node
	leaves []core.Primitive // non-nil only for leaf nodes
}

// BVH is a bounding volume hierarchy over a fixed, immutable set of
// primitives, built once at scene-setup time and read-only thereafter.
type BVH struct {
	root   *node
	bounds core.AABB
}

// NewBVH builds a BVH from prims using median splitting along each node's
// longest axis: cheap to build and good enough traversal performance for a
// tile-parallel renderer where BVH build time is amortized over millions of
// rays.
func NewBVH(prims []core.Primitive) *BVH {
	if len(prims) == 0 {
		return &BVH{}
	}
	cp := make([]core.Primitive, len(prims))
	copy(cp, prims)

	root := build(cp)
	return &BVH{root: root, bounds: root.bounds}
}

func build(prims []core.Primitive) *node {
	bounds := prims[0].Bounds()
	for _, p := range prims[1:] {
		bounds = bounds.Union(p.Bounds())
	}

	if len(prims) <= leafThreshold {
		return &node{bounds: bounds, leaves: prims}
	}

	axis := bounds.LongestAxis()
	sort.Slice(prims, func(i, j int) bool {
		return componentAt(prims[i].Bounds().Centroid(), axis) < componentAt(prims[j].Bounds().Centroid(), axis)
	})

	mid := len(prims) / 2
	return &node{
		bounds: bounds,
		left:   build(prims[:mid]),
		right:  build(prims[mid:]),
	}
}

func componentAt(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Bounds returns the overall scene bounding box.
func (b *BVH) Bounds() core.AABB { return b.bounds }

// Intersect finds the closest intersection of ray with any primitive in the
// hierarchy, narrowing ray.T1 as closer hits are found. mailbox is cleared
// at the start of this query, then consulted by every leaf primitive test
// so a primitive straddling two leaf nodes (rare but possible with
// bounding-box slop) is never tested twice within this single query.
func (b *BVH) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	mailbox.Clear()
	if b.root == nil {
		return nil, false
	}
	return intersectNode(b.root, ray, arena, mailbox)
}

func intersectNode(n *node, ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	if !n.bounds.Hit(ray, ray.T0, ray.T1) {
		return nil, false
	}

	if n.leaves != nil {
		var closest *core.IsecInfo
		for _, p := range n.leaves {
			id := p.ID()
			if mailbox.Contains(id) {
				continue
			}
			mailbox.Add(id)
			if isec, ok := p.Intersect(ray, arena, mailbox); ok {
				closest = isec
				ray = ray.WithT1(isec.T)
			}
		}
		return closest, closest != nil
	}

	leftHit, leftOK := intersectNode(n.left, ray, arena, mailbox)
	if leftOK {
		ray = ray.WithT1(leftHit.T)
	}
	rightHit, rightOK := intersectNode(n.right, ray, arena, mailbox)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// Occludes reports whether any primitive blocks ray, stopping at the first
// hit found since shadow rays only need a boolean answer. mailbox is
// cleared at the start of this query, same as Intersect.
func (b *BVH) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	mailbox.Clear()
	if b.root == nil {
		return false
	}
	return occludesNode(b.root, ray, mailbox)
}

func occludesNode(n *node, ray core.Ray, mailbox *core.Mailbox) bool {
	if !n.bounds.Hit(ray, ray.T0, ray.T1) {
		return false
	}
	if n.leaves != nil {
		for _, p := range n.leaves {
			if p.Occludes(ray, mailbox) {
				return true
			}
		}
		return false
	}
	return occludesNode(n.left, ray, mailbox) || occludesNode(n.right, ray, mailbox)
}
