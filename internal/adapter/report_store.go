package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// Report file formats accepted by the --format flag.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportStore persists the structured comparison report.
type ReportStore interface {
	Save(path m.Path, format string, report *m.Report) error
}

// FileReportStore writes reports to the local filesystem.
type FileReportStore struct{}

// NewFileReportStore creates a FileReportStore.
func NewFileReportStore() *FileReportStore {
	return &FileReportStore{}
}

// Save encodes report in the requested format and writes it to path. An
// unwritable destination is an error for the whole run, not a warning.
func (s *FileReportStore) Save(path m.Path, format string, report *m.Report) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(report, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
