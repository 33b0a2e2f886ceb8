// Package domain implements the locate → collect → detect → report pipeline.
package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"reprocheck.dev/pkg/reprocheck/internal/adapter"
	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// Collector walks each build's output directories and fills the checksum and
// size tables.
type Collector struct {
	fs adapter.BuildFS
}

// NewCollector creates a Collector backed by the given filesystem adapter.
func NewCollector(fs adapter.BuildFS) *Collector {
	return &Collector{fs: fs}
}

// Collect hashes every regular file under each build's output directories
// and returns the filled tables. Up to workers builds are processed
// concurrently; each build accumulates into its own tables which are merged
// afterwards, so the result is identical to a sequential run. The first I/O
// error aborts the whole collection — a partial table would silently turn
// unread files into "missing" findings.
func (c *Collector) Collect(builds []m.Build, outputDirs []string, workers int) (m.ChecksumTable, m.SizeTable, error) {
	if workers < 1 {
		workers = 1
	}

	checksums := m.NewChecksumTable()
	sizes := m.NewSizeTable()

	var mu sync.Mutex

	var group errgroup.Group

	group.SetLimit(workers)

	for _, build := range builds {
		group.Go(func() error {
			buildChecksums, buildSizes, err := c.collectBuild(build, outputDirs)
			if err != nil {
				return err
			}

			mu.Lock()
			checksums.Merge(buildChecksums)
			sizes.Merge(buildSizes)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return checksums, sizes, nil
}

// collectBuild scans one build. Keys are paths relative to the build root,
// so the output-directory name is part of the key and same-named files in
// different packaging trees stay distinct entries.
func (c *Collector) collectBuild(build m.Build, outputDirs []string) (m.ChecksumTable, m.SizeTable, error) {
	checksums := m.NewChecksumTable()
	sizes := m.NewSizeTable()

	for _, dir := range outputDirs {
		outputDir := m.Path(filepath.Join(string(build.Root), dir))
		if !c.fs.DirExists(outputDir) {
			// An output tree the build never produced is a data point for
			// the missing-files finding, not an error.
			slog.Debug("output directory absent", "build", build.ID, "dir", dir)
			continue
		}

		err := c.fs.WalkFiles(outputDir, func(path m.Path) error {
			rel, err := filepath.Rel(string(build.Root), string(path))
			if err != nil {
				return fmt.Errorf("relativize %s: %w", path, err)
			}

			checksum, err := c.fs.HashFile(path)
			if err != nil {
				return err
			}

			size, err := c.fs.FileSize(path)
			if err != nil {
				return err
			}

			relPath := m.Path(filepath.ToSlash(rel))
			checksums.Put(relPath, build.ID, checksum)
			sizes.Put(relPath, build.ID, size)

			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("collect build %s: %w", build.ID, err)
		}
	}

	slog.Debug("collected build", "build", build.ID, "files", len(checksums))

	return checksums, sizes, nil
}
