// Package phantomio provides read-only phantom collaborators: a YAML
// tissue-table loader that expands a segmented anatomical phantom
// (class index per voxel, relaxation parameters per class) into a flat
// Phantom, plus stub readers for two external binary phantom formats.
package phantomio

import (
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/bloch-sim/bloch-sim/sim"
)

// TissueClass is one row of a tissue-parameter table: the per-class
// constants a segmented anatomical phantom assigns to every voxel
// carrying that class index.
type TissueClass struct {
	Name   string  `yaml:"name"`
	Rho    float64 `yaml:"rho"`
	T1     float64 `yaml:"t1"`
	T2     float64 `yaml:"t2"`
	T2Star float64 `yaml:"t2star"`
}

// TissueTable is the on-disk shape: a list of classes plus the voxel
// grid's class-index assignment, used to expand a segmented phantom
// into a flat Phantom. The table is data, loaded as configuration
// rather than hardcoded.
type TissueTable struct {
	Classes []TissueClass `yaml:"classes"`
	VoxelSize float64     `yaml:"voxel_size"` // meters, isotropic
	// Positions and ClassIndex are parallel arrays, one entry per voxel.
	Positions  [][3]float64 `yaml:"positions"`
	ClassIndex []int        `yaml:"class_index"`
}

// LoadTissueTable reads a TissueTable from a YAML file.
func LoadTissueTable(path string) (*TissueTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t TissueTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, sim.FormatError("tissue table: " + err.Error())
	}
	return &t, nil
}

// paramsMatrix packs the table's classes into an n_classes x 4 matrix
// (rho, t1, t2, t2star per row), mirroring how a segmented phantom's
// per-class parameter table is stored as a dense matrix rather than a
// struct-of-slices.
func (t *TissueTable) paramsMatrix() *mat.Dense {
	m := mat.NewDense(len(t.Classes), 4, nil)
	for i, c := range t.Classes {
		m.SetRow(i, []float64{c.Rho, c.T1, c.T2, c.T2Star})
	}
	return m
}

// positionsMatrix packs the voxel grid's positions into an n_voxels x 3
// matrix, one row per voxel.
func (t *TissueTable) positionsMatrix() *mat.Dense {
	m := mat.NewDense(len(t.Positions), 3, nil)
	for i, pos := range t.Positions {
		m.SetRow(i, pos[:])
	}
	return m
}

// ToPhantom expands the table into a flat Phantom: one spin per voxel,
// position taken verbatim, tissue parameters looked up by class index.
// Off-resonance, diffusion, and motion are left at their zero values —
// callers compose those in separately when the table doesn't carry them.
func (t *TissueTable) ToPhantom() (*sim.Phantom, error) {
	n := len(t.Positions)
	positions := t.positionsMatrix()
	params := t.paramsMatrix()
	numClasses, _ := params.Dims()

	p := &sim.Phantom{
		X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
		Rho: make([]float64, n), T1: make([]float64, n), T2: make([]float64, n), T2Star: make([]float64, n),
		OffResonance:     make([]float64, n),
		DiffusionLambda1: make([]float64, n),
		DiffusionLambda2: make([]float64, n),
		DiffusionTheta:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p.X[i], p.Y[i], p.Z[i] = positions.At(i, 0), positions.At(i, 1), positions.At(i, 2)
		ci := t.ClassIndex[i]
		if ci < 0 || ci >= numClasses {
			return nil, &sim.DanglingReferenceError{Kind: "tissue_class", ID: ci}
		}
		p.Rho[i], p.T1[i], p.T2[i], p.T2Star[i] = params.At(ci, 0), params.At(ci, 1), params.At(ci, 2), params.At(ci, 3)
	}
	return p, nil
}
