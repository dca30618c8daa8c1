// Package config loads the scanner settings from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the recognized configuration fields.
type Settings struct {
	// TargetFolder is the folder to scan, relative to the project root.
	TargetFolder string `mapstructure:"target_folder"`
	// LargeFileThresholdMB is the large-file threshold in megabytes.
	LargeFileThresholdMB int `mapstructure:"large_file_threshold_mb"`
	// LogLevel is one of DEBUG, INFO, WARNING, ERROR.
	LogLevel string `mapstructure:"log_level"`
}

// validLevels lists the accepted log_level values.
var validLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR"}

// Load reads settings from an optional "dirscan" config file under dir
// (yaml or json), from DIRSCAN_* environment variables, and from defaults.
// An unsupported log_level falls back to INFO with a warning on stderr,
// since logging itself is not configured yet at this point.
func Load(dir string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("target_folder", "data")
	v.SetDefault("large_file_threshold_mb", 10)
	v.SetDefault("log_level", "DEBUG")

	v.SetEnvPrefix("DIRSCAN")
	v.AutomaticEnv()

	v.SetConfigName("dirscan")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Missing file is fine: defaults and environment apply.
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if settings.TargetFolder == "" {
		return nil, errors.New("target_folder must not be empty")
	}

	if settings.LargeFileThresholdMB < 0 {
		return nil, fmt.Errorf(
			"large_file_threshold_mb must be non-negative, got %d",
			settings.LargeFileThresholdMB,
		)
	}

	settings.LogLevel = strings.ToUpper(strings.TrimSpace(settings.LogLevel))
	if !slices.Contains(validLevels, settings.LogLevel) {
		fmt.Fprintf(os.Stderr, "unsupported log_level %q, falling back to INFO\n", settings.LogLevel)
		settings.LogLevel = "INFO"
	}

	return &settings, nil
}
