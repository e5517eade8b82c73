package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt/tracklens/pkg/descriptor"
)

var titleCmd = &cobra.Command{
	Use:   "title <group-title>...",
	Short: "Split group titles into title, subtype and year",
	Long: `Split raw group titles of the form "Title - Subtype [Year]".

Examples:
  tracklens title "Cowboy Bebop - TV Series [1998]"
  tracklens title --json "Akira [1988]" "Perfect Blue - Movie [1997]"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
}

func runTitle(cmd *cobra.Command, args []string) error {
	parts := make([]descriptor.TitleParts, len(args))
	for i, arg := range args {
		parts[i] = descriptor.SplitTitle(arg)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(parts) == 1 {
			return enc.Encode(parts[0])
		}
		return enc.Encode(parts)
	}

	for i, p := range parts {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Title:    %s\n", p.Title)
		if p.Subtype != "" {
			fmt.Printf("Subtype:  %s\n", p.Subtype)
		}
		if p.Year != "" {
			fmt.Printf("Year:     %s\n", p.Year)
		}
	}
	return nil
}
