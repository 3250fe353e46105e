// Package bloch implements the two Bloch-equation integration kernels:
// a closed-form precession kernel for RF-off steps and a small-step
// Rodrigues-rotation excitation kernel for RF-on steps.
package bloch

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rodrigues rotates v by angle (radians) about the unit axis, using the
// standard Rodrigues rotation formula for the effective-field update.
func rodrigues(v, axis *mat.VecDense, angle float64) *mat.VecDense {
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	kDotV := mat.Dot(axis, v)

	kCrossV := cross(axis, v)

	out := mat.NewVecDense(3, nil)
	// v*cosA + (k x v)*sinA + k*(k.v)*(1-cosA)
	out.AddScaledVec(out, cosA, v)
	out.AddScaledVec(out, sinA, kCrossV)
	out.AddScaledVec(out, kDotV*(1-cosA), axis)
	return out
}

func cross(a, b *mat.VecDense) *mat.VecDense {
	ax, ay, az := a.AtVec(0), a.AtVec(1), a.AtVec(2)
	bx, by, bz := b.AtVec(0), b.AtVec(1), b.AtVec(2)
	return mat.NewVecDense(3, []float64{
		ay*bz - az*by,
		az*bx - ax*bz,
		ax*by - ay*bx,
	})
}
