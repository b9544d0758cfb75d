// Package sampling builds the per-pixel SampleSet consumed by the render
// driver and integrator: named, independently-shuffled channels of
// stratified or low-discrepancy samples, decorrelated across top-level
// eye-ray samples.
package sampling

import (
	"math"
	"math/rand"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// ChannelKind distinguishes the two value shapes a channel can hold.
type ChannelKind int

const (
	FloatChannel ChannelKind = iota
	UVChannel
)

// Generator selects how raw values for a channel are produced before
// shuffling.
type Generator int

const (
	Stratified Generator = iota
	LowDiscrepancy
)

type channel struct {
	kind      ChannelKind
	subCount  int // sub-samples per top-level sample
	generator Generator
	floats    []float64 // len = numTopLevel * subCount, valid if kind == FloatChannel
	uvs       []core.Vec2 // len = numTopLevel * subCount, valid if kind == UVChannel
}

// SampleSet holds num_top_level_samples eye-ray samples, each carrying a
// fixed set of named sub-sample channels (image jitter, lens UV, per-light
// triples, per-BSDF UV, ...) registered before Generate is called.
type SampleSet struct {
	numTopLevel int
	channels    map[string]*channel
	order       []string
	rand        *rand.Rand
}

// NewSampleSet creates a set with the given number of top-level (eye-ray)
// samples, drawing its internal randomness from rnd so that regenerating
// with the same RNG state reproduces identical samples.
func NewSampleSet(numTopLevel int, rnd *rand.Rand) *SampleSet {
	return &SampleSet{
		numTopLevel: numTopLevel,
		channels:    make(map[string]*channel),
		rand:        rnd,
	}
}

// AddFloatChannel registers a named channel of scalar samples, subCount per
// top-level sample.
func (s *SampleSet) AddFloatChannel(name string, subCount int, gen Generator) {
	s.channels[name] = &channel{kind: FloatChannel, subCount: subCount, generator: gen}
	s.order = append(s.order, name)
}

// AddUVChannel registers a named channel of 2D samples, subCount per
// top-level sample.
func (s *SampleSet) AddUVChannel(name string, subCount int, gen Generator) {
	s.channels[name] = &channel{kind: UVChannel, subCount: subCount, generator: gen}
	s.order = append(s.order, name)
}

// adjustSampleCount rounds n up to the nearest perfect square, the
// stratified generator's requirement so a grid of jittered cells tiles the
// unit square exactly.
func adjustSampleCount(n int) int {
	root := int(math.Ceil(math.Sqrt(float64(n))))
	return root * root
}

// Generate fills every registered channel with values and independently
// shuffles each channel's per-top-level blocks, so that channel A's jth
// sub-sample for top-level sample i is decorrelated from channel B's jth
// sub-sample for the same i.
func (s *SampleSet) Generate() {
	for _, name := range s.order {
		ch := s.channels[name]
		n := s.numTopLevel * ch.subCount
		switch ch.kind {
		case FloatChannel:
			ch.floats = make([]float64, n)
			s.fillFloats(ch)
		case UVChannel:
			ch.uvs = make([]core.Vec2, n)
			s.fillUVs(ch)
		}
		s.shuffleChannel(ch)
	}
}

func (s *SampleSet) fillFloats(ch *channel) {
	switch ch.generator {
	case Stratified:
		count := adjustSampleCount(len(ch.floats))
		n := int(math.Sqrt(float64(count)))
		i := 0
		for gy := 0; gy < n && i < len(ch.floats); gy++ {
			for gx := 0; gx < n && i < len(ch.floats); gx++ {
				_ = gy
				cell := (float64(gx) + s.rand.Float64()) / float64(n)
				ch.floats[i] = cell
				i++
			}
		}
	case LowDiscrepancy:
		for i := range ch.floats {
			ch.floats[i] = radicalInverse(uint64(i)+1, 2)
		}
	}
}

func (s *SampleSet) fillUVs(ch *channel) {
	switch ch.generator {
	case Stratified:
		count := adjustSampleCount(len(ch.uvs))
		n := int(math.Sqrt(float64(count)))
		i := 0
		for gy := 0; gy < n && i < len(ch.uvs); gy++ {
			for gx := 0; gx < n && i < len(ch.uvs); gx++ {
				u := (float64(gx) + s.rand.Float64()) / float64(n)
				v := (float64(gy) + s.rand.Float64()) / float64(n)
				ch.uvs[i] = core.Vec2{X: u, Y: v}
				i++
			}
		}
	case LowDiscrepancy:
		for i := range ch.uvs {
			idx := uint64(i) + 1
			ch.uvs[i] = core.Vec2{X: radicalInverse(idx, 2), Y: radicalInverse(idx, 3)}
		}
	}
}

// shuffleChannel decorrelates this channel from every other channel. A
// channel with more than one sub-sample per top-level sample gets a
// per-top-level-sample Fisher-Yates shuffle of its block, so sub-sample j
// of this channel isn't paired with sub-sample j of another channel for
// the same top-level sample. A channel with exactly one sub-sample (image
// jitter, lens) has no within-block permutation to perform, so instead its
// single entry per top-level sample is shuffled across the whole array,
// breaking any correlation between top-level sample i's value here and its
// value in another such channel.
func (s *SampleSet) shuffleChannel(ch *channel) {
	if ch.subCount == 1 {
		for i := s.numTopLevel - 1; i > 0; i-- {
			j := s.rand.Intn(i + 1)
			switch ch.kind {
			case FloatChannel:
				ch.floats[i], ch.floats[j] = ch.floats[j], ch.floats[i]
			case UVChannel:
				ch.uvs[i], ch.uvs[j] = ch.uvs[j], ch.uvs[i]
			}
		}
		return
	}

	for top := 0; top < s.numTopLevel; top++ {
		base := top * ch.subCount
		for i := ch.subCount - 1; i > 0; i-- {
			j := s.rand.Intn(i + 1)
			switch ch.kind {
			case FloatChannel:
				ch.floats[base+i], ch.floats[base+j] = ch.floats[base+j], ch.floats[base+i]
			case UVChannel:
				ch.uvs[base+i], ch.uvs[base+j] = ch.uvs[base+j], ch.uvs[base+i]
			}
		}
	}
}

// radicalInverse computes the van der Corput radical inverse of n in the
// given base, the building block of Halton/Hammersley low-discrepancy
// sequences.
func radicalInverse(n uint64, base uint64) float64 {
	inv := 1.0 / float64(base)
	result := 0.0
	f := inv
	for n > 0 {
		result += float64(n%base) * f
		n /= base
		f *= inv
	}
	return result
}

// Sample is a lightweight reference to one top-level sample within a
// SampleSet: (&set, top_level_index). It is safe to copy.
type Sample struct {
	set   *SampleSet
	Index int
}

// At returns the Sample reference for the given top-level index.
func (s *SampleSet) At(index int) Sample {
	return Sample{set: s, Index: index}
}

// Float returns the sub-th scalar sub-sample from the named channel for this
// top-level sample.
func (smp Sample) Float(channelName string, sub int) float64 {
	ch := smp.set.channels[channelName]
	return ch.floats[smp.Index*ch.subCount+sub]
}

// UV returns the sub-th 2D sub-sample from the named channel for this
// top-level sample.
func (smp Sample) UV(channelName string, sub int) core.Vec2 {
	ch := smp.set.channels[channelName]
	return ch.uvs[smp.Index*ch.subCount+sub]
}
