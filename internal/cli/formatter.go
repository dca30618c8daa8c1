package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirscan/internal/scan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// bytesPerMB converts the display threshold to bytes.
	bytesPerMB = 1024 * 1024
)

// PrintJSON outputs the scan summary in JSON format.
func PrintJSON(summary *scan.Summary, writer io.Writer) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan summary in human-readable table format.
func PrintTable(summary *scan.Summary, thresholdMB int, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nCounters:\t\t")
	fmt.Fprintf(w, "  Discovered:\t%d\n", summary.Discovered)
	fmt.Fprintf(w, "  Processed:\t%d\n", summary.Processed)
	fmt.Fprintf(w, "  Failed:\t%d\n", summary.Failed)

	fmt.Fprintln(w, "\nExtensions:\t\t")

	exts := make([]string, 0, len(summary.ExtensionCounts))
	for ext := range summary.ExtensionCounts {
		exts = append(exts, ext)
	}

	sort.Slice(exts, func(i, j int) bool {
		ci, cj := summary.ExtensionCounts[exts[i]], summary.ExtensionCounts[exts[j]]
		if ci != cj {
			return ci > cj
		}

		return exts[i] < exts[j]
	})

	for _, ext := range exts {
		fmt.Fprintf(w, "  %s:\t%d file(s)\n", ext, summary.ExtensionCounts[ext])
	}

	fmt.Fprintf(w, "\nLarge files (> %s):\t\t\n", humanize.IBytes(uint64(thresholdMB)*bytesPerMB))

	if len(summary.LargeFiles) == 0 {
		fmt.Fprintln(w, "  none\t")
	}

	for _, path := range summary.LargeFiles {
		fmt.Fprintf(w, "  '%s'\t\n", path)
	}

	fmt.Fprintln(w, "\nDuplicate names:\t\t")

	names := make([]string, 0, len(summary.Duplicates))

	for name, paths := range summary.Duplicates {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	if len(names) == 0 {
		fmt.Fprintln(w, "  none\t")
	}

	for _, name := range names {
		fmt.Fprintf(w, "  %s:\t%d occurrence(s)\n", name, len(summary.Duplicates[name]))
	}

	return w.Flush()
}
