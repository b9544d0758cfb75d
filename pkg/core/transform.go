package core

import (
	"gonum.org/v1/gonum/mat"
)

// Transform is a 4x4 affine transform plus its cached inverse, used to place
// primitives, cameras and lights into world space. The matrix work rides on
// gonum.org/v1/gonum/mat rather than a hand-rolled 4x4 so that composition,
// inversion and the handedness check are one library call each.
type Transform struct {
	m, inv      *mat.Dense
	reverses    bool // true if this transform flips handedness (det(upper-left 3x3) < 0)
}

// Identity returns the identity transform.
func Identity() Transform {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return newTransform(m)
}

func newTransform(m *mat.Dense) Transform {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		// Degenerate transforms (zero scale) fall back to identity inverse;
		// callers that build scenes validate scale factors before this point.
		inv.CloneFrom(mat.NewDense(4, 4, []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}))
	}
	upper := m.Slice(0, 3, 0, 3)
	det := mat.Det(upper)
	return Transform{m: m, inv: &inv, reverses: det < 0}
}

// Translate returns a translation transform.
func Translate(v Vec3) Transform {
	m := mat.NewDense(4, 4, []float64{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	})
	return newTransform(m)
}

// Scale returns a non-uniform scale transform.
func Scale(v Vec3) Transform {
	m := mat.NewDense(4, 4, []float64{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	})
	return newTransform(m)
}

// RotateY returns a right-handed rotation of theta radians about the Y axis.
func RotateY(sinTheta, cosTheta float64) Transform {
	m := mat.NewDense(4, 4, []float64{
		cosTheta, 0, sinTheta, 0,
		0, 1, 0, 0,
		-sinTheta, 0, cosTheta, 0,
		0, 0, 0, 1,
	})
	return newTransform(m)
}

// Compose returns the transform equivalent to applying other, then t
// (t.Compose(other) == t * other in matrix terms).
func (t Transform) Compose(other Transform) Transform {
	var m mat.Dense
	m.Mul(t.m, other.m)
	return newTransform(&m)
}

// Inverse returns the inverse transform.
func (t Transform) Inverse() Transform {
	return Transform{m: t.inv, inv: t.m, reverses: t.reverses}
}

// ReversesHandedness reports whether this transform flips the orientation of
// space (negative determinant upper-left 3x3), in which case surface normals
// and the camera's right vector must be negated after transforming.
func (t Transform) ReversesHandedness() bool { return t.reverses }

func (t Transform) transformPoint(m *mat.Dense, p Vec3) Vec3 {
	v := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(m, v)
	w := out.AtVec(3)
	if w != 0 && w != 1 {
		return Vec3{out.AtVec(0) / w, out.AtVec(1) / w, out.AtVec(2) / w}
	}
	return Vec3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

func (t Transform) transformVector(m *mat.Dense, v Vec3) Vec3 {
	in := mat.NewVecDense(4, []float64{v.X, v.Y, v.Z, 0})
	var out mat.VecDense
	out.MulVec(m, in)
	return Vec3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// Point transforms a position.
func (t Transform) Point(p Vec3) Vec3 { return t.transformPoint(t.m, p) }

// Vector transforms a direction (no translation component applied).
func (t Transform) Vector(v Vec3) Vec3 { return t.transformVector(t.m, v) }

// Normal transforms a surface normal using the inverse-transpose rule, which
// keeps normals perpendicular to the surface under non-uniform scale.
func (t Transform) Normal(n Vec3) Vec3 {
	var transInv mat.Dense
	transInv.CloneFrom(t.inv.T())
	return t.transformVector(&transInv, n).Normalize()
}

// Ray transforms a ray's origin and direction, leaving its t-interval
// unchanged (the interval is defined in the transformed space's units).
func (t Transform) Ray(r Ray) Ray {
	return Ray{Origin: t.Point(r.Origin), Direction: t.Vector(r.Direction), T0: r.T0, T1: r.T1}
}
