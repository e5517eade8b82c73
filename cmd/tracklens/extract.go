package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/veldt/tracklens/internal/config"
	"github.com/veldt/tracklens/internal/resultcache"
	"github.com/veldt/tracklens/internal/rowsource"
	"github.com/veldt/tracklens/pkg/descriptor"
	"github.com/veldt/tracklens/pkg/listing"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <page.html>...",
	Short: "Extract structured records from saved listing pages",
	Long: `Extract parses one or more saved tracker listing pages and prints
the grouped, classified records.

Examples:
  tracklens extract listing.html
  tracklens extract --sort seeders --desc listing.html
  tracklens extract --category music --json *.html
  tracklens extract --cache ./tracklens.db listing.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().String("sort", "", "Sort column (overrides config)")
	extractCmd.Flags().Bool("desc", false, "Sort descending")
	extractCmd.Flags().String("category", "", "Force a category: video, printed, game, music")
	extractCmd.Flags().String("cache", "", "Also store records in this cache database")
}

// categoryOverrides maps the --category flag values.
var categoryOverrides = map[string]descriptor.MediaCategory{
	"video":   descriptor.CategoryVideo,
	"printed": descriptor.CategoryPrintedMedia,
	"game":    descriptor.CategoryGame,
	"music":   descriptor.CategoryMusic,
}

func runExtract(cmd *cobra.Command, args []string) error {
	sortColumn, _ := cmd.Flags().GetString("sort")
	sortDesc, _ := cmd.Flags().GetBool("desc")
	category, _ := cmd.Flags().GetString("category")
	cachePath, _ := cmd.Flags().GetString("cache")

	cfg, err := loadConfig()
	if err != nil {
		return wrapConfigError(err)
	}
	logger := newLogger()

	if category != "" {
		if _, ok := categoryOverrides[category]; !ok {
			return fmt.Errorf("unknown category %q (video, printed, game, music)", category)
		}
	}
	if sortColumn == "" {
		sortColumn = cfg.Sort.Column
		sortDesc = sortDesc || cfg.Sort.Direction == "desc"
	}
	if sortColumn != "" && !listing.ValidColumn(sortColumn) {
		return fmt.Errorf("unknown sort column %q", sortColumn)
	}

	results, err := extractAll(args, cfg, category, logger)
	if err != nil {
		return err
	}

	if sortColumn != "" {
		direction := listing.Ascending
		if sortDesc {
			direction = listing.Descending
		}
		for i := range results {
			results[i] = listing.Sort(results[i], listing.Column(sortColumn), direction)
		}
	}

	if cachePath != "" {
		if err := storeResults(cmd.Context(), cachePath, results); err != nil {
			return err
		}
	}

	for i, result := range results {
		if i > 0 && !jsonOutput {
			fmt.Println()
		}
		if err := printResult(result); err != nil {
			return err
		}
	}
	return nil
}

// extractAll parses the pages concurrently, preserving argument order.
func extractAll(paths []string, cfg *config.Config, category string, logger *slog.Logger) ([]listing.GroupedResult, error) {
	sel := rowsource.Selectors{
		Table: cfg.Source.TableSelector,
		Row:   cfg.Source.RowSelector,
	}

	results := make([]listing.GroupedResult, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			table, err := rowsource.Parse(string(data), sel)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			hints := table.Hints()
			if category != "" {
				hints.Context = categoryOverrides[category]
				hints.TableID = ""
				hints.Heading = ""
			}

			result := listing.Extract(table.Rows(), hints, logger)
			logger.Debug("extracted page",
				"path", path,
				"category", result.Category.String(),
				"records", len(result.Records()))
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func storeResults(ctx context.Context, path string, results []listing.GroupedResult) error {
	store, err := resultcache.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, result := range results {
		if err := store.PutAll(ctx, result.Records()); err != nil {
			return err
		}
	}
	return nil
}
