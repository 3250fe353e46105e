package pulseq

import "github.com/bloch-sim/bloch-sim/sim"

// Version is the (major, minor, revision) tuple of a [VERSION] section.
type Version struct {
	Major, Minor, Revision int
}

// Pack encodes a Version as a single integer:
// major*1_000_000 + minor*1_000 + rev. Document itself keeps the
// Version struct.
func (v Version) Pack() int {
	return v.Major*1_000_000 + v.Minor*1_000 + v.Revision
}

// Supported reports whether v falls in one of the two grammar families
// this codec parses: v1.2.x and v1.4.x.
func (v Version) Supported() bool {
	return v.Major == 1 && (v.Minor == 2 || v.Minor == 4)
}

// checkVersion returns the fatal UnsupportedVersionError for v if it
// falls outside the supported grammar families.
func checkVersion(v Version) error {
	if !v.Supported() {
		return &sim.UnsupportedVersionError{Major: v.Major, Minor: v.Minor, Revision: v.Revision}
	}
	return nil
}
