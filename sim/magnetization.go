package sim

// Magnetization holds the per-spin transverse and longitudinal
// magnetization buffers the integrator exclusively owns and evolves.
// Initial condition: (Mxy, Mz) = (0, ρ); equilibrium is Mz → ρ as t → ∞.
type Magnetization struct {
	Mxy []complex128
	Mz  []float64
}

// NewMagnetization initializes the state to thermal equilibrium for
// the given phantom: Mxy = 0, Mz = ρ.
func NewMagnetization(p *Phantom) *Magnetization {
	n := p.NumSpins()
	m := &Magnetization{
		Mxy: make([]complex128, n),
		Mz:  make([]float64, n),
	}
	copy(m.Mz, p.Rho)
	return m
}

// Clone returns a deep copy of the per-spin state, independent of the
// live buffers.
func (m *Magnetization) Clone() *Magnetization {
	out := &Magnetization{
		Mxy: append([]complex128(nil), m.Mxy...),
		Mz:  append([]float64(nil), m.Mz...),
	}
	return out
}
