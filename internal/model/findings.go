package model

// Findings are the three read-only views the detector derives from the
// checksum and size tables.
type Findings struct {
	// Inconsistent holds, per path, the full digest-per-build mapping for
	// every path where at least two builds disagree.
	Inconsistent map[Path]map[BuildID]Checksum

	// Missing holds, per path, the ascending-sorted build ids the path is
	// absent from, relative to the union of build ids observed across the
	// whole checksum table.
	Missing map[Path][]BuildID

	// SizeDiffs holds the size-per-build mapping for every inconsistent path
	// whose sizes also disagree. Always a subset of Inconsistent: a size
	// difference implies a checksum difference, never the other way round.
	SizeDiffs map[Path]map[BuildID]int64
}

// Empty reports whether no inconsistency of any kind was found.
func (f Findings) Empty() bool {
	return len(f.Inconsistent) == 0 && len(f.Missing) == 0 && len(f.SizeDiffs) == 0
}
