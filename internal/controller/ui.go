// Package controller provides output renderers for comparison results.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// UI renders pipeline output. It performs no computation of its own; every
// value it receives was derived by the detector.
type UI interface {
	DisplayBuilds(ctx context.Context, version string, builds []m.Build)
	DisplaySummary(ctx context.Context, builds []m.Build, findings m.Findings)
	DisplayReportSaved(ctx context.Context, path m.Path)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
