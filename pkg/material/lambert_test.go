package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

func TestLambertSampleEvalConsistency(t *testing.T) {
	l := NewLambert(core.Color{X: 0.8, Y: 0.8, Z: 0.8})
	isec := &core.IsecInfo{Point: core.Vec3{}, Shading: core.Vec3{X: 0, Y: 0, Z: 1}}
	arena := core.NewArena()
	bsdf := l.GetBSDF(isec, arena)

	rnd := rand.New(rand.NewSource(1))
	wo := core.Vec3{X: 0, Y: 0, Z: 1}

	for i := 0; i < 64; i++ {
		u := core.Vec2{X: rnd.Float64(), Y: rnd.Float64()}
		sample, ok := bsdf.Sample(wo, u)
		if !ok {
			t.Fatalf("expected sample to succeed")
		}
		_, evalPDF := bsdf.Eval(wo, sample.Dir)
		if math.Abs(evalPDF-sample.PDF) > 1e-9 {
			t.Errorf("sample pdf %v != eval pdf %v", sample.PDF, evalPDF)
		}
	}
}

func TestLambertEnergyConservation(t *testing.T) {
	l := NewLambert(core.Color{X: 0.9, Y: 0.9, Z: 0.9})
	isec := &core.IsecInfo{Point: core.Vec3{}, Shading: core.Vec3{X: 0, Y: 0, Z: 1}}
	bsdf := l.GetBSDF(isec, core.NewArena())

	wo := core.Vec3{X: 0, Y: 0, Z: 1}
	rnd := rand.New(rand.NewSource(2))

	const n = 4096
	sum := 0.0
	for i := 0; i < n; i++ {
		u := core.Vec2{X: rnd.Float64(), Y: rnd.Float64()}
		sample, ok := bsdf.Sample(wo, u)
		if !ok || sample.PDF <= 0 {
			continue
		}
		cosTheta := core.AbsCosTheta(core.NewFrameFromNormal(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: 1}).ToLocal(sample.Dir))
		sum += sample.Value.X * cosTheta / sample.PDF
	}
	estimate := sum / n
	stdErr := 1.0 / math.Sqrt(n)
	if estimate > 1+3*stdErr {
		t.Errorf("energy estimate %v exceeds conservation bound", estimate)
	}
}
