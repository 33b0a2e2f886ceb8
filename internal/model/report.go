package model

// Section is one finding category in the structured report: its file count
// and the per-file detail.
type Section[T any] struct {
	Count int        `json:"count" yaml:"count"`
	Files map[Path]T `json:"files" yaml:"files"`
}

// Report is the structured document written for --output. The field names
// form the wire shape and are stable across runs for the same input.
type Report struct {
	BuildsAnalyzed    []BuildID                     `json:"builds_analyzed" yaml:"builds_analyzed"`
	TotalBuilds       int                           `json:"total_builds" yaml:"total_builds"`
	InconsistentFiles Section[map[BuildID]Checksum] `json:"inconsistent_files" yaml:"inconsistent_files"`
	MissingFiles      Section[[]BuildID]            `json:"missing_files" yaml:"missing_files"`
	SizeDifferences   Section[map[BuildID]int64]    `json:"size_differences" yaml:"size_differences"`
}

// NewReport renders findings for the given builds into the wire shape. It is
// pure packaging; all values were computed by the detector.
func NewReport(builds []Build, findings Findings) *Report {
	ids := make([]BuildID, 0, len(builds))
	for _, build := range builds {
		ids = append(ids, build.ID)
	}

	return &Report{
		BuildsAnalyzed: ids,
		TotalBuilds:    len(ids),
		InconsistentFiles: Section[map[BuildID]Checksum]{
			Count: len(findings.Inconsistent),
			Files: findings.Inconsistent,
		},
		MissingFiles: Section[[]BuildID]{
			Count: len(findings.Missing),
			Files: findings.Missing,
		},
		SizeDifferences: Section[map[BuildID]int64]{
			Count: len(findings.SizeDiffs),
			Files: findings.SizeDiffs,
		},
	}
}
