// Package cli wires the command-line surface of dirscan.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options collects the flag values for a run.
type options struct {
	Root        string
	Folder      string
	ThresholdMB int
	LogLevel    string
	Report      string
	Output      string
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opts options

	cmd := &cobra.Command{
		Use:     "dirscan [flags]",
		Short:   "Scan a directory tree and report file statistics",
		Version: c.version,
		Long: heredoc.Doc(`
			dirscan walks a directory tree, collects per-file metadata, and
			reports oversized files and duplicate filenames.

			Settings come from an optional dirscan.yaml/json file under the
			project root, from DIRSCAN_* environment variables, and from
			defaults. Flags override both.

			The default output is a Markdown report written under
			<root>/reports; use --output to print a table or JSON to stdout
			instead.
		`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", ".", "Project root; config, logs, and reports live under it")
	cmd.Flags().StringVar(&opts.Folder, "folder", "", "Target folder to scan, overriding the configured one")
	cmd.Flags().IntVar(&opts.ThresholdMB, "threshold-mb", 0, "Large-file threshold in MB, overriding the configured one")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level: DEBUG, INFO, WARNING or ERROR")
	cmd.Flags().StringVar(&opts.Report, "report", "scan_report.md", "Report filename")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "markdown", "Summary output: markdown, table or json")

	cmd.Flags().SortFlags = false

	return cmd.Execute()
}
