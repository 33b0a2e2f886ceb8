package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"reprocheck.dev/pkg/reprocheck/internal/adapter"
	"reprocheck.dev/pkg/reprocheck/internal/controller"
	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// ErrNoBuilds is returned when the records tree has no build directories for
// the requested version. It is the one expected failure a caller may want to
// distinguish from environment problems.
var ErrNoBuilds = errors.New("no builds found")

// CompareArgs carries the inputs for one comparison run.
type CompareArgs struct {
	RecordsRoot m.Path
	Version     string
	OutputDirs  []string
	ReportPath  m.Path // optional; empty means console summary only
	Format      string
	Workers     int
}

// ListArgs carries the inputs for listing the builds of a version.
type ListArgs struct {
	RecordsRoot m.Path
	Version     string
}

// Workflow drives the pipeline end to end.
type Workflow interface {
	Compare(ctx context.Context, args CompareArgs) error
	ListBuilds(ctx context.Context, args ListArgs) error
}

type workflow struct {
	fs    adapter.BuildFS
	store adapter.ReportStore
	ui    controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fs adapter.BuildFS, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{fs: fs, store: store, ui: ui}
}

// Compare locates the builds of a version, collects checksums and sizes,
// detects inconsistencies, prints the summary and optionally writes the
// structured report.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	builds, err := w.locate(args.RecordsRoot, args.Version)
	if err != nil {
		return err
	}

	w.ui.DisplayBuilds(ctx, args.Version, builds)

	checksums, sizes, err := NewCollector(w.fs).Collect(builds, args.OutputDirs, args.Workers)
	if err != nil {
		return fmt.Errorf("collect checksums: %w", err)
	}

	findings := Detect(checksums, sizes)

	w.ui.DisplaySummary(ctx, builds, findings)

	if args.ReportPath == "" {
		return nil
	}

	reportPath := args.ReportPath
	if !filepath.IsAbs(string(reportPath)) {
		// Relative report paths resolve against the working directory, not
		// the records root.
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve report path: %w", err)
		}

		reportPath = m.Path(filepath.Join(cwd, string(reportPath)))
	}

	if err := w.store.Save(reportPath, args.Format, m.NewReport(builds, findings)); err != nil {
		return err
	}

	w.ui.DisplayReportSaved(ctx, reportPath)

	return nil
}

// ListBuilds prints the builds recorded for a version without hashing.
func (w *workflow) ListBuilds(ctx context.Context, args ListArgs) error {
	builds, err := w.locate(args.RecordsRoot, args.Version)
	if err != nil {
		return err
	}

	w.ui.DisplayBuilds(ctx, args.Version, builds)

	return nil
}

func (w *workflow) locate(recordsRoot m.Path, version string) ([]m.Build, error) {
	builds, err := w.fs.ListBuilds(recordsRoot, version)
	if err != nil {
		return nil, fmt.Errorf("locate builds: %w", err)
	}

	if len(builds) == 0 {
		return nil, fmt.Errorf("%w for version %s under %s", ErrNoBuilds, version, recordsRoot)
	}

	slog.Info("located builds", "version", version, "count", len(builds))

	return builds, nil
}
