// Package metadata holds the sidecar run information Optimize returns
// alongside the optimized program: per-stage timings and, when the
// lenient legacy front-end is used, the unsupported commands it
// tolerated instead of aborting on.
package metadata

// UnsupportedCommand names a command the lifter could not place into the
// IR language, recorded instead of aborting when the lenient front-end is
// used.
type UnsupportedCommand struct {
	Name  string
	Index int32
}

// RunMetadata is a sidecar record of one Optimize invocation.
type RunMetadata struct {
	LiftNanos     int64
	SaturateNanos int64
	LowerNanos    int64

	// Unsupported is populated only by the lenient legacy front-end; the
	// strict binary front-end aborts on the first unsupported command
	// instead and this stays empty.
	Unsupported []UnsupportedCommand
}

// TotalNanos returns the sum of the three stage durations.
func (m RunMetadata) TotalNanos() int64 {
	return m.LiftNanos + m.SaturateNanos + m.LowerNanos
}
