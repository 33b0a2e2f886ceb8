package domain

import (
	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// Detect cross-references the two tables and derives the three findings.
// It is a pure function of its inputs: the tables are only read, and running
// it twice over the same tables yields identical findings.
//
// The set of builds a path can be "missing" from is the union of build ids
// observed anywhere in the checksum table. A build that produced zero files
// in every watched output directory contributes no id to that union and is
// therefore invisible to the missing-files check.
func Detect(checksums m.ChecksumTable, sizes m.SizeTable) m.Findings {
	findings := m.Findings{
		Inconsistent: make(map[m.Path]map[m.BuildID]m.Checksum),
		Missing:      make(map[m.Path][]m.BuildID),
		SizeDiffs:    make(map[m.Path]map[m.BuildID]int64),
	}

	allIDs := checksums.BuildIDs()

	for path, row := range checksums {
		if len(row) < len(allIDs) {
			// allIDs is sorted, so the absent list comes out sorted too.
			absent := make([]m.BuildID, 0, len(allIDs)-len(row))
			for _, id := range allIDs {
				if _, ok := row[id]; !ok {
					absent = append(absent, id)
				}
			}

			findings.Missing[path] = absent
		}

		if checksums.Distinct(path) > 1 {
			findings.Inconsistent[path] = row

			// Size differences are reported only for paths whose checksums
			// already diverge; an equal-size content change stays out.
			if sizes.Distinct(path) > 1 {
				findings.SizeDiffs[path] = sizes[path]
			}
		}
	}

	return findings
}
