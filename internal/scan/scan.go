package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// bytesPerMB converts the configured megabyte threshold to bytes.
const bytesPerMB = 1024 * 1024

// modifiedLayout is the timestamp format used for Record.Modified.
const modifiedLayout = "2006-01-02 15:04:05"

// errStop aborts the walk when the consumer stops ranging.
var errStop = errors.New("scan: consumer stopped")

// Scanner walks a directory tree and accumulates per-file statistics.
//
// A Scanner is single-threaded: the sequence returned by Scan must be
// consumed by one goroutine, and the aggregates are only touched while
// that consumer drives the iteration.
type Scanner struct {
	root      string
	threshold int64
	logger    *zap.Logger
	agg       aggregates
	err       error
}

// New creates a Scanner rooted at root. Files strictly larger than
// thresholdMB megabytes are flagged as large. The root is assumed to have
// been validated by the caller; a missing or empty root yields zero files.
func New(root string, thresholdMB int, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scanner{
		root:      root,
		threshold: int64(thresholdMB) * bytesPerMB,
		logger:    logger,
		agg:       newAggregates(),
	}
}

// Scan returns a lazy sequence of per-file results in traversal order.
// Successful extractions yield a Record; failures yield a nil Record and
// the cause, after the failure has been counted and logged. A single
// file's failure never aborts the traversal of the remaining tree.
//
// The sequence is meant to be consumed once. The consumer may stop early,
// in which case the counters reflect the partial run. After the sequence
// is exhausted, Err reports whether the accounting invariant was violated.
func (s *Scanner) Scan() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Nothing was discovered for an unreadable entry; skip it
				// and keep walking.
				s.logger.Debug("inaccessible path", zap.String("path", path), zap.Error(err))

				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			s.agg.discovered++

			rec, extractErr := s.extractMetadata(path)
			if extractErr != nil {
				s.agg.failed++
				s.logger.Error("extraction failed",
					zap.String("path", path),
					zap.Error(extractErr),
				)

				if !yield(nil, extractErr) {
					return errStop
				}

				return nil
			}

			s.agg.processed++

			if !yield(rec, nil) {
				return errStop
			}

			return nil
		})
		if walkErr != nil && !errors.Is(walkErr, errStop) {
			s.err = walkErr

			return
		}

		if err := s.agg.verify(); err != nil {
			s.err = fmt.Errorf("accounting invariant violated: %w", err)
		}
	}
}

// Err returns the terminal error of the last Scan, if any. Per-file
// extraction failures are never reported here; only an accounting
// invariant violation is.
func (s *Scanner) Err() error { return s.err }

// Summary verifies the accounting invariant and returns an independent
// snapshot of the aggregates accumulated so far. It may be called at any
// point, including mid-traversal.
func (s *Scanner) Summary() (*Summary, error) {
	if err := s.agg.verify(); err != nil {
		return nil, fmt.Errorf("accounting invariant violated: %w", err)
	}

	return s.agg.snapshot(), nil
}

// ReportSummary logs the counters and the extension histogram.
func (s *Scanner) ReportSummary() {
	s.logger.Info("scan summary",
		zap.Int64("discovered", s.agg.discovered),
		zap.Int64("processed", s.agg.processed),
		zap.Int64("failed", s.agg.failed),
	)

	for ext, count := range s.agg.extCounts {
		s.logger.Info("extension", zap.String("ext", ext), zap.Int("count", count))
	}

	s.logger.Info("large files", zap.Int("count", len(s.agg.largeFiles)))
}

// ReportDuplicates logs every base name recorded under more than one path.
func (s *Scanner) ReportDuplicates() {
	for name, paths := range s.agg.duplicates {
		if len(paths) > 1 {
			s.logger.Info("duplicate name",
				zap.String("name", name),
				zap.Strings("paths", paths),
			)
		}
	}
}

// extractMetadata stats a single file and folds it into the aggregates.
// Base names containing "fail" (any case) trigger a simulated failure so
// callers can exercise the partial-failure path deterministically. Side
// effects on the aggregates happen only when extraction succeeds.
func (s *Scanner) extractMetadata(path string) (*Record, error) {
	base := filepath.Base(path)
	if strings.Contains(strings.ToLower(base), "fail") {
		return nil, fmt.Errorf("simulated failure: filename %q contains 'fail'", base)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	size := info.Size()
	ext := extensionOf(base)

	s.agg.extCounts[ext]++

	switch {
	case size == 0:
		s.logger.Warn("zero-byte file", zap.String("path", path))
	case size > s.threshold:
		s.agg.largeFiles = append(s.agg.largeFiles, path)
		s.logger.Warn("large file",
			zap.String("path", path),
			zap.Int64("size", size),
			zap.Int64("threshold", s.threshold),
		)
	}

	s.agg.duplicates[base] = append(s.agg.duplicates[base], path)

	return &Record{
		Path:      path,
		Size:      size,
		Extension: ext,
		Modified:  info.ModTime().Format(modifiedLayout),
	}, nil
}

// extensionOf returns the extension of a base name, or NoExtension when
// the name has none. A leading dot marks a hidden name rather than an
// extension, so ".gitignore" has no extension while "archive.tar.gz"
// has ".gz".
func extensionOf(base string) string {
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return NoExtension
	}

	return ext
}
