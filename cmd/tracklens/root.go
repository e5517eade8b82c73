package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt/tracklens/internal/config"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tracklens",
	Short: "Extract structured metadata from tracker listing pages",
	Long: `tracklens - tracker listing metadata extraction

Parses saved tracker listing pages into structured, sortable records:
grouped hierarchies, classified descriptors and split titles.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tracklens {{.Version}}\n")
}

// newLogger builds the CLI logger. Diagnostics go to stderr so stdout
// stays parseable.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the effective configuration: an explicit --config
// path must exist, a discovered file is used when present, and built-in
// defaults cover the rest.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return config.Default(), nil
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// wrapConfigError prints aggregated config errors on their own and
// returns a bare failure, avoiding cobra's usage dump.
func wrapConfigError(err error) error {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(os.Stderr, cfgErr.Error())
		return fmt.Errorf("invalid configuration: %s", cfgErr.Path)
	}
	return err
}
