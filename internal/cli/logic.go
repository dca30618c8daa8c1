package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/dirscan/internal/config"
	"github.com/idelchi/dirscan/internal/logging"
	"github.com/idelchi/dirscan/internal/paths"
	"github.com/idelchi/dirscan/internal/report"
	"github.com/idelchi/dirscan/internal/scan"
)

// allowedOutputs lists the supported summary output formats.
var allowedOutputs = []string{"markdown", "table", "json"}

func run(cmd *cobra.Command, opts options) error {
	if !slices.Contains(allowedOutputs, strings.ToLower(opts.Output)) {
		return fmt.Errorf("invalid output format %q: must be one of %v", opts.Output, allowedOutputs)
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	settings, err := config.Load(root)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("folder") {
		settings.TargetFolder = opts.Folder
	}

	if cmd.Flags().Changed("threshold-mb") {
		settings.LargeFileThresholdMB = opts.ThresholdMB
	}

	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = strings.ToUpper(opts.LogLevel)
	}

	logger, closeLogger, err := logging.New(root, logging.ParseLevel(settings.LogLevel))
	if err != nil {
		return err
	}
	defer closeLogger()

	logger.Debug("project root", zap.String("path", root))

	target, err := paths.Resolve(root, settings.TargetFolder)
	if err != nil {
		return err
	}

	if err := paths.EnsureExists(target, paths.KindDir, true); err != nil {
		return err
	}

	logger.Debug("target folder", zap.String("path", target))

	scanner := scan.New(target, settings.LargeFileThresholdMB, logger)

	for rec, err := range scanner.Scan() {
		if err != nil {
			// Already counted and logged by the engine.
			continue
		}

		logger.Info("file",
			zap.String("path", rec.Path),
			zap.Int64("size", rec.Size),
			zap.String("extension", rec.Extension),
			zap.String("modified", rec.Modified),
		)
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	scanner.ReportDuplicates()
	scanner.ReportSummary()

	summary, err := scanner.Summary()
	if err != nil {
		return err
	}

	switch strings.ToLower(opts.Output) {
	case "json":
		return PrintJSON(summary, os.Stdout)
	case "table":
		return PrintTable(summary, settings.LargeFileThresholdMB, os.Stdout)
	default:
		writer, err := report.NewWriter(filepath.Join(root, "reports"))
		if err != nil {
			return err
		}

		path, err := writer.Write(summary, opts.Report, settings.LargeFileThresholdMB)
		if err != nil {
			return err
		}

		logger.Info("report saved", zap.String("path", path))

		return nil
	}
}
