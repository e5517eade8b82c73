package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt/tracklens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tracklens configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented example config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the active config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			discovered, err := config.Discover()
			if err != nil {
				return err
			}
			path = discovered
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if errs := cfg.Validate(); len(errs) > 0 {
			return wrapConfigError(&config.ConfigError{Path: path, Errors: errs})
		}
		fmt.Printf("%s: OK\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
}
