package scan

import (
	"fmt"
	"maps"
	"slices"
)

// NoExtension is the histogram key used for files without an extension.
const NoExtension = "<no-ext>"

// Record holds the metadata extracted from a single file.
type Record struct {
	// Path is the full path to the file.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Extension is the file extension, or NoExtension when absent.
	Extension string `json:"extension"`
	// Modified is the last-modified timestamp at second resolution.
	Modified string `json:"modified"`
}

// Summary is an independent snapshot of the aggregates accumulated by a
// scan. Mutating a returned Summary has no effect on the Scanner.
type Summary struct {
	// Discovered is the number of files seen during traversal.
	Discovered int64 `json:"discovered"`
	// Processed is the number of files whose metadata was extracted.
	Processed int64 `json:"processed"`
	// Failed is the number of files whose extraction failed.
	Failed int64 `json:"failed"`
	// ExtensionCounts maps extensions to the number of files carrying them.
	ExtensionCounts map[string]int `json:"extension_counts"`
	// LargeFiles lists paths exceeding the size threshold, in discovery order.
	LargeFiles []string `json:"large_files"`
	// Duplicates maps base filenames to every path recorded under that name.
	Duplicates map[string][]string `json:"duplicates"`
}

// aggregates is the running state mutated once per discovered file. It is
// owned by the Scanner and only read by snapshotting operations.
type aggregates struct {
	discovered int64
	processed  int64
	failed     int64
	extCounts  map[string]int
	largeFiles []string
	duplicates map[string][]string
}

func newAggregates() aggregates {
	return aggregates{
		extCounts:  make(map[string]int),
		largeFiles: make([]string, 0),
		duplicates: make(map[string][]string),
	}
}

// verify checks the invariant tying the three counters together. It holds
// at every yield point, so a violation signals a bug in the engine itself.
func (a *aggregates) verify() error {
	if a.discovered != a.processed+a.failed {
		return fmt.Errorf(
			"counter mismatch: discovered=%d, processed=%d, failed=%d",
			a.discovered, a.processed, a.failed,
		)
	}

	return nil
}

// snapshot produces a deep copy of the current aggregates.
func (a *aggregates) snapshot() *Summary {
	duplicates := make(map[string][]string, len(a.duplicates))
	for name, paths := range a.duplicates {
		duplicates[name] = slices.Clone(paths)
	}

	return &Summary{
		Discovered:      a.discovered,
		Processed:       a.processed,
		Failed:          a.failed,
		ExtensionCounts: maps.Clone(a.extCounts),
		LargeFiles:      slices.Clone(a.largeFiles),
		Duplicates:      duplicates,
	}
}
