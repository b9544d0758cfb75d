package core

import "math/rand"

// RenderContext bundles everything a single render worker goroutine owns
// exclusively: its arena, its RNG, its intersection mailbox, a read-only
// view of the active RenderParams, and its running diagnostic counters. One
// RenderContext is created per worker and reused across every tile and
// sample that worker processes.
type RenderContext struct {
	Arena   *Arena
	Mailbox *Mailbox
	Rand    *rand.Rand
	Params  RenderParams
	Diagnostics DiagnosticCounters

	// VolumeStack tracks the nested media the active ray is currently
	// inside, pushed on refractive entry and popped on exit.
	VolumeStack *MediaStack
}

// NewRenderContext creates a worker context seeded deterministically from
// the given seed, so that identical (seed, tile partition, sample indices)
// reproduce bit-identical output across runs.
func NewRenderContext(params RenderParams, seed uint64) *RenderContext {
	return &RenderContext{
		Arena:       NewArena(),
		Mailbox:     NewMailbox(),
		Rand:        rand.New(rand.NewSource(int64(seed))),
		Params:      params,
		VolumeStack: NewMediaStack(),
	}
}

// ResetForSample clears per-sample arena contents between top-level
// eye-ray samples. The mailbox is not reset here: it is cleared once per
// intersection query, at the entry of each BVH.Intersect/Occludes call, so
// that the many queries a single path issues (primary ray, each
// BSDF-sampled shadow/continuation ray, each specular recursion) don't see
// stale entries from an earlier query on the same sample. The RNG and
// diagnostic counters are not touched here: the counters accumulate across
// the worker's whole lifetime, and the render driver replaces rc.Rand with a
// freshly seeded source before each pixel.
func (rc *RenderContext) ResetForSample() {
	rc.Arena.Reset()
}

// SeedForPixel derives a deterministic per-(tile, pixel, sample) seed from a
// base seed, so that re-rendering the same scene with the same seed
// reproduces identical samples regardless of how tiles are scheduled across
// worker goroutines.
func SeedForPixel(base uint64, tileID, pixelIndex, sampleIndex int) uint64 {
	h := base
	h = hashMix(h, uint64(tileID))
	h = hashMix(h, uint64(pixelIndex))
	h = hashMix(h, uint64(sampleIndex))
	return h
}

// hashMix is a SplitMix64-style mixing step, used only to derive
// well-distributed per-sample seeds, not for anything security sensitive.
func hashMix(h, v uint64) uint64 {
	h ^= v + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 31
	return h
}
