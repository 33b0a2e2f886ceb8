package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

func identicalTables() (m.ChecksumTable, m.SizeTable) {
	checksums := m.NewChecksumTable()
	sizes := m.NewSizeTable()

	for _, id := range []m.BuildID{"001", "002", "003"} {
		checksums.Put("dist-zip/app.bin", id, "aaa")
		sizes.Put("dist-zip/app.bin", id, 100)
		checksums.Put("dist-chrome/app.bin", id, "bbb")
		sizes.Put("dist-chrome/app.bin", id, 200)
	}

	return checksums, sizes
}

func TestDetect_IdenticalBuilds(t *testing.T) {
	checksums, sizes := identicalTables()

	findings := Detect(checksums, sizes)

	assert.Empty(t, findings.Inconsistent)
	assert.Empty(t, findings.Missing)
	assert.Empty(t, findings.SizeDiffs)
	assert.True(t, findings.Empty())
}

func TestDetect_ChecksumDiffSameSize(t *testing.T) {
	checksums, sizes := identicalTables()

	// Same length, different bytes: checksum finding only.
	checksums.Put("dist-zip/app.bin", "002", "ccc")

	findings := Detect(checksums, sizes)

	require.Contains(t, findings.Inconsistent, m.Path("dist-zip/app.bin"))
	assert.Equal(t, m.Checksum("aaa"), findings.Inconsistent["dist-zip/app.bin"]["001"])
	assert.Equal(t, m.Checksum("ccc"), findings.Inconsistent["dist-zip/app.bin"]["002"])

	assert.NotContains(t, findings.SizeDiffs, m.Path("dist-zip/app.bin"))
	assert.Empty(t, findings.Missing)
}

func TestDetect_ChecksumAndSizeDiff(t *testing.T) {
	checksums, sizes := identicalTables()

	checksums.Put("dist-zip/app.bin", "002", "ccc")
	sizes.Put("dist-zip/app.bin", "002", 101)

	findings := Detect(checksums, sizes)

	require.Contains(t, findings.Inconsistent, m.Path("dist-zip/app.bin"))
	require.Contains(t, findings.SizeDiffs, m.Path("dist-zip/app.bin"))
	assert.Equal(t, int64(100), findings.SizeDiffs["dist-zip/app.bin"]["001"])
	assert.Equal(t, int64(101), findings.SizeDiffs["dist-zip/app.bin"]["002"])
}

func TestDetect_SizeDiffWithoutChecksumDiffNotReported(t *testing.T) {
	checksums, sizes := identicalTables()

	// Inconsistent sizes for a path whose checksums agree cannot happen with
	// a real digest; the detector must not promote it on its own.
	sizes.Put("dist-chrome/app.bin", "002", 999)

	findings := Detect(checksums, sizes)

	assert.Empty(t, findings.SizeDiffs)
	assert.Empty(t, findings.Inconsistent)
}

func TestDetect_MissingFile(t *testing.T) {
	checksums, sizes := identicalTables()

	delete(checksums["dist-chrome/app.bin"], "002")
	delete(sizes["dist-chrome/app.bin"], "002")

	findings := Detect(checksums, sizes)

	require.Contains(t, findings.Missing, m.Path("dist-chrome/app.bin"))
	assert.Equal(t, []m.BuildID{"002"}, findings.Missing["dist-chrome/app.bin"])
	assert.Empty(t, findings.Inconsistent)
}

func TestDetect_MissingList_Sorted(t *testing.T) {
	checksums := m.NewChecksumTable()
	sizes := m.NewSizeTable()

	for _, id := range []m.BuildID{"001", "002", "003", "004"} {
		checksums.Put("dist-zip/common.bin", id, "aaa")
		sizes.Put("dist-zip/common.bin", id, 1)
	}

	checksums.Put("dist-zip/rare.bin", "002", "bbb")
	sizes.Put("dist-zip/rare.bin", "002", 2)

	findings := Detect(checksums, sizes)

	assert.Equal(t, []m.BuildID{"001", "003", "004"}, findings.Missing["dist-zip/rare.bin"])
}

func TestDetect_EmptyBuildInvisibleToMissingCheck(t *testing.T) {
	// A build that produced zero files contributes no id to the observed
	// union, so nothing is flagged missing on its account.
	checksums := m.NewChecksumTable()
	sizes := m.NewSizeTable()

	checksums.Put("dist-zip/app.bin", "001", "aaa")
	checksums.Put("dist-zip/app.bin", "002", "aaa")
	sizes.Put("dist-zip/app.bin", "001", 1)
	sizes.Put("dist-zip/app.bin", "002", 1)

	findings := Detect(checksums, sizes)

	assert.Empty(t, findings.Missing)
}

func TestDetect_Idempotent(t *testing.T) {
	checksums, sizes := identicalTables()
	checksums.Put("dist-zip/app.bin", "002", "ccc")
	sizes.Put("dist-zip/app.bin", "002", 101)
	delete(checksums["dist-chrome/app.bin"], "003")
	delete(sizes["dist-chrome/app.bin"], "003")

	first := Detect(checksums, sizes)
	second := Detect(checksums, sizes)

	assert.Equal(t, first, second)
}
