// Package adapter contains filesystem and report-output adapters for the
// reprocheck CLI.
package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// buildDirPrefix marks the children of a version directory that hold one
// build's artifacts.
const buildDirPrefix = "build-"

// hashChunkSize is the read size used when streaming file contents through
// the hash. Files are never loaded whole, whatever their size.
const hashChunkSize = 64 * 1024

// BuildFS abstracts the filesystem operations the domain layer relies on when
// scanning build records. It hides direct `os` access so the workflow logic
// can be tested without a real records tree.
type BuildFS interface {
	// ListBuilds returns the builds recorded for version under recordsRoot,
	// sorted by directory name so ordering is deterministic regardless of
	// filesystem listing order. A missing version directory yields an empty
	// list and no error; the caller decides what zero builds means.
	ListBuilds(recordsRoot m.Path, version string) ([]m.Build, error)

	// WalkFiles calls fn for every regular file beneath root, exactly once
	// each. Traversal order is not significant.
	WalkFiles(root m.Path, fn func(path m.Path) error) error

	// HashFile returns the streamed SHA-256 digest of the file at path.
	HashFile(path m.Path) (m.Checksum, error)

	// FileSize returns the byte size reported by filesystem metadata.
	FileSize(path m.Path) (int64, error)

	// DirExists reports whether path exists and is a directory.
	DirExists(path m.Path) bool
}

// LocalBuildFS implements BuildFS against the local filesystem.
type LocalBuildFS struct{}

// NewLocalBuildFS constructs a LocalBuildFS ready to be wired into the
// workflow.
func NewLocalBuildFS() *LocalBuildFS {
	return &LocalBuildFS{}
}

// ListBuilds lists the build directories recorded for version.
func (a *LocalBuildFS) ListBuilds(recordsRoot m.Path, version string) ([]m.Build, error) {
	versionDir := filepath.Join(string(recordsRoot), version)

	entries, err := os.ReadDir(versionDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("list version directory %s: %w", versionDir, err)
	}

	var builds []m.Build

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), buildDirPrefix) {
			continue
		}

		builds = append(builds, m.Build{
			ID:   m.BuildID(strings.TrimPrefix(entry.Name(), buildDirPrefix)),
			Root: m.Path(filepath.Join(versionDir, entry.Name())),
		})
	}

	sort.Slice(builds, func(i, j int) bool { return builds[i].Root < builds[j].Root })

	return builds, nil
}

// WalkFiles visits every regular file beneath root.
func (a *LocalBuildFS) WalkFiles(root m.Path, fn func(path m.Path) error) error {
	return filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(m.Path(path))
	})
}

// HashFile returns the SHA-256 digest of the file at path, streamed through
// the hash in fixed-size chunks.
func (a *LocalBuildFS) HashFile(path m.Path) (m.Checksum, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()

	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return m.Checksum(hex.EncodeToString(h.Sum(nil))), nil
}

// FileSize returns the file's size from metadata, not from hashed bytes.
func (a *LocalBuildFS) FileSize(path m.Path) (int64, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	return info.Size(), nil
}

// DirExists reports whether path exists and is a directory.
func (a *LocalBuildFS) DirExists(path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && info.IsDir()
}
