// Package sim provides the core Bloch-equation simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: RF/Gradient/ADC/Delay event primitives and the Block they compose into
//   - sequence.go: the Sequence container (concatenation, scaling, sub-sequencing)
//   - phantom.go: the spin-isochromat phantom and its motion model
//   - signal.go: the SimResult/Signal/RawAcquisition/DictEntry output types
//
// # Architecture
//
// The sim package defines the data model, the typed errors, and the
// extension-point interfaces; implementations live in sub-packages:
//   - sim/pulseq/: the Pulseq .seq file codec
//   - sim/scheduler/: the adaptive time-grid scheduler
//   - sim/bloch/: the precession and excitation kernels
//   - sim/backend/: CPU (and future GPU) kernel dispatch backends
//   - sim/phantomio/: tissue-table and third-party phantom file collaborators
//   - sim/engine/: the Simulate entry point and per-block run loop, sitting
//     above sim/scheduler, sim/bloch, and sim/backend so that sim itself
//     never imports a package that imports it back
//
// sim/backend registers its implementation via an init() function that
// sets the package-level NewBackendFunc factory variable, breaking the
// import cycle between sim/ (interface owner) and sim/backend
// (implementation). sim/phantomio has no such cycle (it only imports
// sim, never the reverse), so its PhantomReader implementations
// (JEMRISReader, MRiLabReader, TissueTable) are used directly by
// callers instead of through a registry.
//
// # Key interfaces
//
//   - Backend: allocate/copy/launch/synchronize kernel dispatch
//   - KernelID and Work: the kernel name and per-spin-range function a Backend launches
//   - PhantomReader: decodes a third-party phantom file into a Phantom
package sim
