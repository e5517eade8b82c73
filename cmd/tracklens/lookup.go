package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt/tracklens/internal/resultcache"
	"github.com/veldt/tracklens/pkg/descriptor"
	"github.com/veldt/tracklens/pkg/listing"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [flags] <title>",
	Short: "Fuzzy-find cached records by title",
	Long: `Look a title up in a cache built with 'extract --cache'. Matching is
fuzzy: close-enough spellings and sequel numbering are tolerated.

Examples:
  tracklens lookup "cowboy bebop"
  tracklens lookup --cache ./tracklens.db --json "akira"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().String("cache", "", "Cache database path (overrides config)")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cachePath, _ := cmd.Flags().GetString("cache")

	cfg, err := loadConfig()
	if err != nil {
		return wrapConfigError(err)
	}
	if cachePath == "" {
		cachePath = cfg.Cache.Path
	}

	store, err := resultcache.Open(cachePath)
	if err != nil {
		return err
	}
	defer store.Close()

	query := strings.Join(args, " ")
	title, recs, err := store.LookupTitle(cmd.Context(), query)
	if errors.Is(err, resultcache.ErrNotFound) {
		return fmt.Errorf("no cached title matches %q", query)
	}
	if err != nil {
		return err
	}

	category := descriptor.CategoryUnknown
	if len(recs) > 0 {
		category = recs[0].Category
	}
	result := listing.GroupedResult{
		Category: category,
		Entries: []listing.Entry{{
			Node:    &listing.SectionNode{Kind: listing.NodeGroup, Title: title},
			Records: recs,
		}},
	}
	return printResult(result)
}
