// Package model holds the data types shared across the reprocheck pipeline.
package model

// Path represents a file system path.
type Path string

// BuildID identifies one build attempt for a version. It is the build
// directory name with the "build-" prefix stripped, e.g. "001".
type BuildID string

// Checksum is the lowercase hex SHA-256 digest of a file's full content.
type Checksum string

// Build is one discovered build: its identifier and root directory. Builds
// are discovered under the records tree, never created by this tool.
type Build struct {
	ID   BuildID
	Root Path
}
