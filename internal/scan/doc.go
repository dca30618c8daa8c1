// Package scan walks a directory tree, extracts per-file metadata, and
// tracks running statistics: discovered/processed/failed counters, an
// extension histogram, oversized files, and filenames recorded under more
// than one path.
package scan
