package sim

import "strconv"

// Phantom is a spatial cloud of M spin isochromats. Every field below
// is a parallel array of length M; Phantom is an immutable input to a
// simulation run.
type Phantom struct {
	X, Y, Z            []float64 // position, meters
	Rho                []float64 // proton density
	T1, T2, T2Star     []float64 // seconds
	OffResonance       []float64 // Δw, rad/s
	DiffusionLambda1   []float64 // m²/s, principal diffusivity
	DiffusionLambda2   []float64 // m²/s, principal diffusivity
	DiffusionTheta     []float64 // radians, in-plane rotation of the diffusion tensor
	MotionX, MotionY, MotionZ []Motion
}

// NumSpins returns M, the spin count, derived from the position arrays.
func (p *Phantom) NumSpins() int { return len(p.X) }

// Validate checks that all relaxation times are strictly positive,
// T2 ≤ T2*, and every parallel array has length M.
func (p *Phantom) Validate() error {
	m := p.NumSpins()
	check := func(name string, n int) error {
		if n != m {
			return &PhantomShapeMismatchError{Field: name, Expected: m, Got: n}
		}
		return nil
	}
	for name, arr := range map[string][]float64{
		"y": p.Y, "z": p.Z, "rho": p.Rho,
		"t1": p.T1, "t2": p.T2, "t2star": p.T2Star,
		"off_resonance": p.OffResonance,
		"diffusion_lambda1": p.DiffusionLambda1,
		"diffusion_lambda2": p.DiffusionLambda2,
		"diffusion_theta":   p.DiffusionTheta,
	} {
		if err := check(name, len(arr)); err != nil {
			return err
		}
	}
	for name, arr := range map[string][]Motion{
		"motion_x": p.MotionX, "motion_y": p.MotionY, "motion_z": p.MotionZ,
	} {
		if len(arr) != 0 {
			if err := check(name, len(arr)); err != nil {
				return err
			}
		}
	}
	for i := 0; i < m; i++ {
		if p.T1[i] <= 0 {
			return &PhantomShapeMismatchError{Field: "t1[" + strconv.Itoa(i) + "] must be > 0", Expected: 1, Got: 0}
		}
		if p.T2[i] <= 0 {
			return &PhantomShapeMismatchError{Field: "t2[" + strconv.Itoa(i) + "] must be > 0", Expected: 1, Got: 0}
		}
		if p.T2Star[i] <= 0 {
			return &PhantomShapeMismatchError{Field: "t2star[" + strconv.Itoa(i) + "] must be > 0", Expected: 1, Got: 0}
		}
		if p.T2[i] > p.T2Star[i] {
			return &PhantomShapeMismatchError{Field: "t2[" + strconv.Itoa(i) + "] must be <= t2star", Expected: 1, Got: 0}
		}
	}
	return nil
}

// MotionAt returns the displaced position of spin i at time t, applying
// its motion field (or the zero field if the phantom carries none).
func (p *Phantom) MotionAt(i int, t float64) (x, y, z float64) {
	x, y, z = p.X[i], p.Y[i], p.Z[i]
	if i < len(p.MotionX) {
		x += p.MotionX[i].At(t)
	}
	if i < len(p.MotionY) {
		y += p.MotionY[i].At(t)
	}
	if i < len(p.MotionZ) {
		z += p.MotionZ[i].At(t)
	}
	return x, y, z
}

