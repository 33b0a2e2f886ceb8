package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// writeRecords lays out a records tree with the given builds and files.
func writeRecords(t *testing.T, version string, builds map[string]map[string]string) string {
	t.Helper()

	records := t.TempDir()
	for build, files := range builds {
		for rel, content := range files {
			path := filepath.Join(records, version, build, filepath.FromSlash(rel))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		}
	}

	return records
}

// execRoot runs the shared root command with args and captures its output.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag state is shared across Execute calls; reset what would otherwise
	// leak between tests.
	compareOutputFlag = ""

	if f := compareCmd.Flags().Lookup(formatFlagName); f != nil {
		require.NoError(t, f.Value.Set(defaultFormat))
		f.Changed = false
	}

	logFile := filepath.Join(t.TempDir(), "test.log")
	args = append(args, "--log-file", logFile)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestCompareCmd_DivergentBuilds(t *testing.T) {
	records := writeRecords(t, "1.0", map[string]map[string]string{
		"build-001": {"dist-zip/app.bin": "A"},
		"build-002": {"dist-zip/app.bin": "BB"},
	})

	reportPath := filepath.Join(t.TempDir(), "report.json")

	output, err := execRoot(t,
		"compare", "1.0",
		"--records", records,
		"--output", reportPath,
	)
	require.NoError(t, err)

	assert.Contains(t, output, "Found 2 builds for version 1.0")
	assert.Contains(t, output, "Checksum Comparison Report")
	assert.Contains(t, output, "Inconsistent Files:")
	assert.Contains(t, output, "dist-zip/app.bin")
	assert.Contains(t, output, "Detailed report saved to "+reportPath)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report m.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.TotalBuilds)
	assert.Equal(t, 1, report.InconsistentFiles.Count)
	assert.Equal(t, 1, report.SizeDifferences.Count)
	assert.Equal(t, 0, report.MissingFiles.Count)
}

func TestCompareCmd_YAMLReport(t *testing.T) {
	records := writeRecords(t, "1.0", map[string]map[string]string{
		"build-001": {"dist-zip/app.bin": "same"},
		"build-002": {"dist-zip/app.bin": "same"},
	})

	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	_, err := execRoot(t,
		"compare", "1.0",
		"--records", records,
		"--output", reportPath,
		"--format", "yaml",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "builds_analyzed:")
	assert.Contains(t, string(data), "total_builds: 2")
}

func TestCompareCmd_UnknownVersionFails(t *testing.T) {
	records := writeRecords(t, "1.0", map[string]map[string]string{
		"build-001": {"dist-zip/app.bin": "A"},
	})

	_, err := execRoot(t, "compare", "9.9", "--records", records)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no builds found")
}

func TestCompareCmd_FlagDefaults(t *testing.T) {
	cmd := newCompareCmd()

	format := cmd.Flags().Lookup(formatFlagName)
	require.NotNil(t, format)
	assert.Equal(t, defaultFormat, format.DefValue)

	parallel := cmd.Flags().Lookup(parallelFlagName)
	require.NotNil(t, parallel)
	assert.Equal(t, "1", parallel.DefValue)
}

func TestCompareCmd_RequiresVersionArg(t *testing.T) {
	cmd := newCompareCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}
