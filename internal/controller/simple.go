package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// SimpleUI prints plain-text results through the cobra command's stdout.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool

	heading lipgloss.Style
	alert   lipgloss.Style
	ok      lipgloss.Style
}

// NewSimpleUI creates a SimpleUI. When styled is false all lipgloss styling
// is skipped so the output stays pipeable.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		styled:  styled,
		heading: lipgloss.NewStyle().Bold(true),
		alert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// DisplayBuilds prints the builds the locator found for a version.
func (s *SimpleUI) DisplayBuilds(ctx context.Context, version string, builds []m.Build) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d builds for version %s\n", len(builds), version)

	for _, build := range builds {
		s.printf("  - build-%s\n", build.ID)
	}
}

// DisplaySummary prints the comparison report: overall counts followed by an
// itemized listing of every inconsistent file and its per-build digests.
func (s *SimpleUI) DisplaySummary(ctx context.Context, builds []m.Build, findings m.Findings) {
	if err := ctx.Err(); err != nil {
		return
	}

	ids := make([]string, 0, len(builds))
	for _, build := range builds {
		ids = append(ids, string(build.ID))
	}

	s.printf("\n%s\n", s.style(s.heading, "Checksum Comparison Report"))
	s.printf("==========================\n")
	s.printf("Builds analyzed: %s\n", strings.Join(ids, ", "))
	s.printf("Total builds: %d\n", len(builds))
	s.printf("\n%s", renderSummaryTable(findings))

	if findings.Empty() {
		s.printf("\n%s\n", s.style(s.ok, "All builds produced identical artifacts."))
		return
	}

	if len(findings.Inconsistent) == 0 {
		return
	}

	s.printf("\n%s\n", s.style(s.alert, "Inconsistent Files:"))

	for _, path := range sortedPaths(findings.Inconsistent) {
		s.printf("\n  %s:\n", path)

		row := findings.Inconsistent[path]
		for _, id := range sortedIDs(row) {
			s.printf("    Build %s: %s\n", id, row[id])
		}
	}
}

// DisplayReportSaved confirms where the structured report was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nDetailed report saved to %s\n", path)
}

func renderSummaryTable(findings m.Findings) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Finding", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Inconsistent checksums", fmt.Sprintf("%d", len(findings.Inconsistent))})
	table.Append([]string{"Missing in some builds", fmt.Sprintf("%d", len(findings.Missing))})
	table.Append([]string{"Size differences", fmt.Sprintf("%d", len(findings.SizeDiffs))})

	table.Render()

	return buf.String()
}

func sortedPaths[T any](files map[m.Path]T) []m.Path {
	paths := make([]m.Path, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

func sortedIDs[T any](row map[m.BuildID]T) []m.BuildID {
	ids := make([]m.BuildID, 0, len(row))
	for id := range row {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func (s *SimpleUI) style(st lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return st.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
