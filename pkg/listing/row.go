// Package listing turns a tracker's flat row sequence into a grouped,
// sortable tree of parsed records.
//
// The package consumes rows through the narrow Row interface: ordered,
// immutable handles exposing cell text, structural tags and raw content
// blocks. It never touches a DOM. One extraction pass is a pure,
// synchronous computation over a row snapshot; re-running a pass on
// unchanged input yields a structurally equal result.
package listing

import "github.com/veldt/tracklens/pkg/descriptor"

// Structural tags a row source attaches to rows. The hierarchy builder
// keys off the first three; the rest feed the freeleech and recommendation
// fallback chains.
const (
	TagGroupHeader   = "row-group"
	TagSectionHeader = "row-section"
	TagLeaf          = "row-leaf"

	TagFreeleech = "freeleech"
	TagRecBest   = "rec-best"
	TagRecAlt    = "rec-alt"
)

// Inline marker element names, the second tier of the status fallback
// chains. A collaborator may inject these instead of (or before) tags.
const (
	MarkerRec       = "rec-marker"
	MarkerFreeleech = "freeleech-marker"
)

// Row is an opaque handle to one input row, owned by the row source.
//
// Cell returns positional cell text ("" when out of range). RawHTML is the
// row's nested raw content, stored and forwarded verbatim, never parsed.
// MarkerText returns the text or title of a named inline marker element,
// "" when absent.
type Row interface {
	ID() string
	GroupID() string
	Tags() []string
	HasTag(tag string) bool
	Cell(i int) string
	Descriptor() string
	FlagFragments() []string
	RawHTML() string
	MarkerText(name string) string
}

// Hints carry the table-type signals and the fixed positions of the
// auxiliary counter cells.
type Hints struct {
	// TableID is a row-source-provided identifier, e.g. a table element id.
	TableID string
	// Context is a deterministic page-level category hint; CategoryUnknown
	// means no hint.
	Context descriptor.MediaCategory
	// Heading is free heading text near the table.
	Heading string

	SizeCell   int
	SnatchCell int
	SeedCell   int
	LeechCell  int
}

// DefaultHints returns the conventional cell layout:
// name, size, snatches, seeders, leechers.
func DefaultHints() Hints {
	return Hints{
		SizeCell:   1,
		SnatchCell: 2,
		SeedCell:   3,
		LeechCell:  4,
	}
}

// RowSource is the ordered row snapshot an extraction pass runs over.
type RowSource interface {
	Rows() []Row
	Hints() Hints
}

// Sink receives the structured output, exactly once per completed pass.
type Sink interface {
	HandleResult(GroupedResult) error
}
