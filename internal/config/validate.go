package config

import (
	"fmt"

	"github.com/veldt/tracklens/pkg/listing"
)

var validFormats = map[string]bool{
	"table": true, "json": true,
}

var validDirections = map[string]bool{
	"asc": true, "desc": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validFormats[c.Output.Format] {
		errs = append(errs, fmt.Sprintf("output.format: must be table or json; got %q", c.Output.Format))
	}
	if !validDirections[c.Sort.Direction] {
		errs = append(errs, fmt.Sprintf("sort.direction: must be asc or desc; got %q", c.Sort.Direction))
	}
	if c.Sort.Column != "" && !listing.ValidColumn(c.Sort.Column) {
		errs = append(errs, fmt.Sprintf("sort.column: unknown column %q", c.Sort.Column))
	}
	if c.Cache.Path == "" {
		errs = append(errs, "cache.path: required")
	}
	if c.Source.TableSelector == "" {
		errs = append(errs, "source.table_selector: required")
	}
	if c.Source.RowSelector == "" {
		errs = append(errs, "source.row_selector: required")
	}

	return errs
}
