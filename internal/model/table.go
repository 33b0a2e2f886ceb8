package model

import "sort"

// Table records one value per (relative path, build id) pair. The collector
// owns a table while filling it; once handed to the detector it is read-only.
type Table[V comparable] map[Path]map[BuildID]V

// ChecksumTable maps relative path → build id → content digest.
type ChecksumTable = Table[Checksum]

// SizeTable maps relative path → build id → size in bytes.
type SizeTable = Table[int64]

// NewChecksumTable returns an empty checksum table.
func NewChecksumTable() ChecksumTable {
	return make(ChecksumTable)
}

// NewSizeTable returns an empty size table.
func NewSizeTable() SizeTable {
	return make(SizeTable)
}

// Put records the value observed for path in the given build.
func (t Table[V]) Put(path Path, id BuildID, value V) {
	row, ok := t[path]
	if !ok {
		row = make(map[BuildID]V)
		t[path] = row
	}

	row[id] = value
}

// Merge copies every entry of other into t.
func (t Table[V]) Merge(other Table[V]) {
	for path, row := range other {
		for id, value := range row {
			t.Put(path, id, value)
		}
	}
}

// Paths returns the table's keys in ascending order.
func (t Table[V]) Paths() []Path {
	paths := make([]Path, 0, len(t))
	for path := range t {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// BuildIDs returns the sorted union of build identifiers across every row.
// A build that contributed no entries does not appear here.
func (t Table[V]) BuildIDs() []BuildID {
	seen := make(map[BuildID]struct{})
	for _, row := range t {
		for id := range row {
			seen[id] = struct{}{}
		}
	}

	ids := make([]BuildID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Distinct returns the number of distinct values recorded for path.
func (t Table[V]) Distinct(path Path) int {
	values := make(map[V]struct{}, len(t[path]))
	for _, value := range t[path] {
		values[value] = struct{}{}
	}

	return len(values)
}
