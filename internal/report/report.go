// Package report renders scan summaries as Markdown files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirscan/internal/scan"
)

// Writer renders scan summaries into a report directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer that writes into outputDir, creating the
// directory if needed.
func NewWriter(outputDir string) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	return &Writer{outputDir: outputDir}, nil
}

// Write renders summary as a Markdown report and returns the path of the
// generated file. thresholdMB is only used for display.
func (w *Writer) Write(summary *scan.Summary, filename string, thresholdMB int) (string, error) {
	var sb strings.Builder

	sb.WriteString("# File System Scan Report\n\n")

	sb.WriteString("## Scan Counters\n\n")
	fmt.Fprintf(&sb, "- **Total Discovered**: %d\n", summary.Discovered)
	fmt.Fprintf(&sb, "- **Total Processed**: %d\n", summary.Processed)
	fmt.Fprintf(&sb, "- **Total Failed**: %d\n\n", summary.Failed)

	sb.WriteString("## File Extensions Count\n\n")

	if len(summary.ExtensionCounts) > 0 {
		for _, ext := range sortedByCount(summary.ExtensionCounts) {
			fmt.Fprintf(&sb, "- **%s**: %d\n", ext, summary.ExtensionCounts[ext])
		}
	} else {
		sb.WriteString("_None found._\n")
	}

	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## Large Files (> %s)\n\n", humanize.IBytes(uint64(thresholdMB)*1024*1024))

	if len(summary.LargeFiles) > 0 {
		for _, path := range summary.LargeFiles {
			fmt.Fprintf(&sb, "- `%s`\n", path)
		}
	} else {
		sb.WriteString("_None detected._\n")
	}

	sb.WriteString("\n")

	sb.WriteString("## Duplicate File Names\n\n")

	names := duplicateNames(summary.Duplicates)
	if len(names) > 0 {
		for _, name := range names {
			fmt.Fprintf(&sb, "### `%s`\n", name)

			for _, path := range summary.Duplicates[name] {
				fmt.Fprintf(&sb, "- `%s`\n", path)
			}

			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("_No duplicates found._\n")
	}

	reportPath := filepath.Join(w.outputDir, filename)
	if err := os.WriteFile(reportPath, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return reportPath, nil
}

// sortedByCount orders extensions by descending count, then by name so
// the output is stable.
func sortedByCount(counts map[string]int) []string {
	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}

	sort.Slice(exts, func(i, j int) bool {
		if counts[exts[i]] != counts[exts[j]] {
			return counts[exts[i]] > counts[exts[j]]
		}

		return exts[i] < exts[j]
	})

	return exts
}

// duplicateNames returns the base names recorded under more than one
// path, sorted for stable output.
func duplicateNames(duplicates map[string][]string) []string {
	names := make([]string, 0, len(duplicates))

	for name, paths := range duplicates {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}
