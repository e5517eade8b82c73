package listing_test

import (
	"io"
	"log/slog"
	"slices"

	"github.com/veldt/tracklens/pkg/listing"
)

// fakeRow is a minimal in-memory Row for tests.
type fakeRow struct {
	id      string
	groupID string
	tags    []string
	cells   []string
	desc    string
	raw     string
	flags   []string
	markers map[string]string
}

func (r fakeRow) ID() string            { return r.id }
func (r fakeRow) GroupID() string       { return r.groupID }
func (r fakeRow) Tags() []string        { return r.tags }
func (r fakeRow) HasTag(tag string) bool { return slices.Contains(r.tags, tag) }
func (r fakeRow) Descriptor() string    { return r.desc }
func (r fakeRow) RawHTML() string       { return r.raw }
func (r fakeRow) FlagFragments() []string { return r.flags }

func (r fakeRow) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r fakeRow) MarkerText(name string) string {
	return r.markers[name]
}

func leafRow(id, desc string) fakeRow {
	return fakeRow{
		id:    id,
		tags:  []string{listing.TagLeaf},
		cells: []string{desc, "1.4 GiB", "120", "35", "2"},
		desc:  desc,
	}
}

func sectionRow(title string) fakeRow {
	return fakeRow{
		tags:  []string{listing.TagSectionHeader},
		cells: []string{title},
	}
}

func groupRow(title, raw string) fakeRow {
	return fakeRow{
		tags:  []string{listing.TagGroupHeader},
		cells: []string{title},
		raw:   raw,
	}
}

func asRows(rows ...fakeRow) []listing.Row {
	out := make([]listing.Row, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
