package bloch

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/bloch-sim/bloch-sim/sim"
)

// DiffusionState accumulates each spin's random-walk displacement
// across the run. It is owned by the caller (sim.Simulate), not by
// Phantom (immutable) or Magnetization (spin/longitudinal state only),
// since a Brownian walk is integrator working state, not a closed-form
// motion field.
type DiffusionState struct {
	Dx, Dy, Dz []float64
}

// NewDiffusionState allocates a zeroed accumulator for n spins.
func NewDiffusionState(n int) *DiffusionState {
	return &DiffusionState{Dx: make([]float64, n), Dy: make([]float64, n), Dz: make([]float64, n)}
}

// HasDiffusion reports whether spin i carries a non-degenerate diffusion tensor.
func HasDiffusion(p *sim.Phantom, i int) bool {
	return p.DiffusionLambda1[i] > 0 || p.DiffusionLambda2[i] > 0
}

// stepDiffusion draws one Gaussian increment for spin i's random walk
// over a step of length dt, using the spin's partitioned RNG stream so
// the trajectory is reproducible regardless of goroutine scheduling.
func stepDiffusion(p *sim.Phantom, diff *DiffusionState, rng *sim.PartitionedRNG, i int, dt float64) {
	if diff == nil || !HasDiffusion(p, i) {
		return
	}
	r := rng.ForSpin(i)
	lambda1, lambda2, theta := p.DiffusionLambda1[i], p.DiffusionLambda2[i], p.DiffusionTheta[i]
	c, s := math.Cos(theta), math.Sin(theta)
	sq1 := math.Sqrt(2 * dt * math.Max(lambda1, 0))
	sq2 := math.Sqrt(2 * dt * math.Max(lambda2, 0))
	n1, n2, n3 := r.NormFloat64(), r.NormFloat64(), r.NormFloat64()
	diff.Dx[i] += c*sq1*n1 - s*sq2*n2
	diff.Dy[i] += s*sq1*n1 + c*sq2*n2
	diff.Dz[i] += math.Sqrt(dt*(lambda1+lambda2)) * n3
}

// positionAt returns spin i's effective position at time t, combining
// its deterministic motion field with any accumulated diffusion walk.
func positionAt(p *sim.Phantom, diff *DiffusionState, i int, t float64) (x, y, z float64) {
	x, y, z = p.MotionAt(i, t)
	if diff != nil {
		x += diff.Dx[i]
		y += diff.Dy[i]
		z += diff.Dz[i]
	}
	return x, y, z
}

// larmorOffset returns ω(t) = γ·(Gx·x + Gy·y + Gz·z) + Δw for spin i at
// absolute time t.
func larmorOffset(p *sim.Phantom, diff *DiffusionState, blk *sim.Block, blockStart float64, i int, t float64) float64 {
	local := t - blockStart
	x, y, z := positionAt(p, diff, i, t)
	var g float64
	if blk.Gx.IsOn() {
		g += blk.Gx.AmplitudeAt(local) * x
	}
	if blk.Gy.IsOn() {
		g += blk.Gy.AmplitudeAt(local) * y
	}
	if blk.Gz.IsOn() {
		g += blk.Gz.AmplitudeAt(local) * z
	}
	return sim.Gamma*g + p.OffResonance[i]
}

// PrecessionStep advances spins [start, end) over one RF-off step using
// the closed-form transverse decay + longitudinal recovery solution.
// stepIndex identifies the grid step, for error reporting.
func PrecessionStep(p *sim.Phantom, mag *sim.Magnetization, diff *DiffusionState, rng *sim.PartitionedRNG,
	blk *sim.Block, blockStart, t, dt float64, start, end, stepIndex int) error {
	for i := start; i < end; i++ {
		stepDiffusion(p, diff, rng, i, dt)

		omega0 := larmorOffset(p, diff, blk, blockStart, i, t)
		omega1 := larmorOffset(p, diff, blk, blockStart, i, t+dt)
		phiStep := 0.5 * (omega0 + omega1) * dt

		decayT2 := math.Exp(-dt / p.T2[i])
		phasor := complex(math.Cos(-phiStep), math.Sin(-phiStep))
		mag.Mxy[i] = mag.Mxy[i] * complex(decayT2, 0) * phasor

		decayT1 := math.Exp(-dt / p.T1[i])
		mag.Mz[i] = p.Rho[i] + (mag.Mz[i]-p.Rho[i])*decayT1

		if isBad(mag.Mxy[i]) || math.IsNaN(mag.Mz[i]) {
			return &sim.NumericalInstabilityError{StepIndex: stepIndex, SpinIndex: i, Reason: "NaN in precession step"}
		}
	}
	return nil
}

// ExcitationStep advances spins [start, end) over one RF-on step using
// a full 3x3 Rodrigues rotation about the effective field, followed by
// a post-rotation relaxation factor — full rotation rather than a
// small-tip-angle approximation, since Pulseq RF pulses routinely
// exceed 0.01·T2.
func ExcitationStep(p *sim.Phantom, mag *sim.Magnetization, diff *DiffusionState,
	blk *sim.Block, blockStart, t, dt float64, start, end, stepIndex int) error {
	local := t - blockStart
	b1 := blk.RF.AmplitudeAt(local)
	omegaX := 2 * math.Pi * real(b1)
	omegaY := 2 * math.Pi * imag(b1)

	for i := start; i < end; i++ {
		omegaOff := larmorOffset(p, diff, blk, blockStart, i, t)
		omegaZ := omegaOff - 2*math.Pi*blk.RF.FreqOffset

		mag2 := omegaX*omegaX + omegaY*omegaY + omegaZ*omegaZ
		v := mat.NewVecDense(3, []float64{real(mag.Mxy[i]), imag(mag.Mxy[i]), mag.Mz[i]})

		var rotated *mat.VecDense
		if mag2 <= 0 {
			rotated = v
		} else {
			omegaMag := math.Sqrt(mag2)
			axis := mat.NewVecDense(3, []float64{omegaX / omegaMag, omegaY / omegaMag, omegaZ / omegaMag})
			alpha := omegaMag * dt
			if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
				return &sim.NumericalInstabilityError{StepIndex: stepIndex, SpinIndex: i, Reason: "divergent rotation angle"}
			}
			rotated = rodrigues(v, axis, alpha)
		}

		decayT2 := math.Exp(-dt / p.T2[i])
		decayT1 := math.Exp(-dt / p.T1[i])
		newMxy := complex(rotated.AtVec(0), rotated.AtVec(1)) * complex(decayT2, 0)
		newMz := p.Rho[i] + (rotated.AtVec(2)-p.Rho[i])*decayT1

		if isBad(newMxy) || math.IsNaN(newMz) {
			return &sim.NumericalInstabilityError{StepIndex: stepIndex, SpinIndex: i, Reason: "NaN in excitation step"}
		}
		mag.Mxy[i] = newMxy
		mag.Mz[i] = newMz
	}
	return nil
}

func isBad(c complex128) bool {
	return math.IsNaN(real(c)) || math.IsNaN(imag(c)) || math.IsInf(real(c), 0) || math.IsInf(imag(c), 0)
}
