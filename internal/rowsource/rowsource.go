// Package rowsource adapts static tracker HTML into listing rows.
//
// It is the read-only half of the host-page boundary: CSS classes become
// structural tags, cell text becomes positional cells, and nested markup is
// carried verbatim. The engine itself never sees a DOM.
package rowsource

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/veldt/tracklens/pkg/descriptor"
	"github.com/veldt/tracklens/pkg/listing"
)

// Selectors locate the listing table and its rows.
type Selectors struct {
	Table string
	Row   string
}

// DefaultSelectors match the conventional tracker markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Table: "table.torrent_table",
		Row:   "tr",
	}
}

// classTags maps source CSS classes (and their tracker synonyms) to
// structural tags. Status classes pass through under their own names.
var classTags = map[string]string{
	"group":        listing.TagGroupHeader,
	"group_header": listing.TagGroupHeader,
	"edition":      listing.TagSectionHeader,
	"edition_row":  listing.TagSectionHeader,
	"colhead":      listing.TagSectionHeader,
	"torrent":      listing.TagLeaf,
	"torrent_row":  listing.TagLeaf,
	"freeleech":    listing.TagFreeleech,
	"rec-best":     listing.TagRecBest,
	"rec-alt":      listing.TagRecAlt,
}

// Table is a parsed listing: an ordered row snapshot plus table-type hints.
// It implements listing.RowSource.
type Table struct {
	rows  []listing.Row
	hints listing.Hints
}

func (t *Table) Rows() []listing.Row  { return t.rows }
func (t *Table) Hints() listing.Hints { return t.hints }

// Parse reads tracker HTML and builds the row snapshot for one extraction
// pass. Only a completely unreadable document is an error; rows that turn
// out malformed surface as rows and are skipped later by the builder.
func Parse(html string, sel Selectors) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find(sel.Table).First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}

	hints := listing.DefaultHints()
	hints.TableID = table.AttrOr("id", "")
	hints.Heading = findHeading(table)
	hints.Context = descriptor.CategoryFromHint(doc.Find("body").AttrOr("data-page", ""))

	var rows []listing.Row
	table.Find(sel.Row).Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, newRow(tr))
	})

	return &Table{rows: rows, hints: hints}, nil
}

// findHeading prefers the table's own caption, then the nearest preceding
// h2/h3.
func findHeading(table *goquery.Selection) string {
	if caption := table.Find("caption").First(); caption.Length() > 0 {
		return strings.TrimSpace(caption.Text())
	}
	if h := table.PrevAllFiltered("h2, h3").First(); h.Length() > 0 {
		return strings.TrimSpace(h.Text())
	}
	return ""
}

// row implements listing.Row over one tr element. Everything cheap is
// captured eagerly so the handle stays immutable; marker lookups keep the
// selection because collaborators may have injected markers anywhere in
// the row.
type row struct {
	id      string
	groupID string
	tags    []string
	cells   []string
	desc    string
	flags   []string
	raw     string
	sel     *goquery.Selection
}

func newRow(tr *goquery.Selection) *row {
	r := &row{sel: tr}

	for _, class := range strings.Fields(tr.AttrOr("class", "")) {
		if tag, ok := classTags[strings.ToLower(class)]; ok {
			r.tags = append(r.tags, tag)
		}
	}

	r.id = idSuffix(tr.AttrOr("id", ""))
	r.groupID = tr.AttrOr("data-group", "")

	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		r.cells = append(r.cells, strings.TrimSpace(td.Text()))
	})

	// The descriptor is the main cell's link text when present, else the
	// cell text itself.
	nameCell := tr.Find("td").First()
	if link := nameCell.Find("a").First(); link.Length() > 0 {
		r.desc = strings.TrimSpace(link.Text())
	} else if len(r.cells) > 0 {
		r.desc = r.cells[0]
	}

	// Badge/icon fragments ride along verbatim.
	nameCell.Find("img, .flag").Each(func(_ int, frag *goquery.Selection) {
		if html, err := goquery.OuterHtml(frag); err == nil {
			r.flags = append(r.flags, strings.TrimSpace(html))
		}
	})

	if html, err := tr.Html(); err == nil {
		r.raw = html
	}
	return r
}

// idSuffix strips the conventional "torrent_" style prefix from an element
// id, keeping the trailing identifier.
func idSuffix(id string) string {
	if idx := strings.LastIndexByte(id, '_'); idx >= 0 {
		return id[idx+1:]
	}
	return id
}

func (r *row) ID() string      { return r.id }
func (r *row) GroupID() string { return r.groupID }
func (r *row) Tags() []string  { return r.tags }

func (r *row) HasTag(tag string) bool {
	for _, t := range r.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (r *row) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r *row) Descriptor() string      { return r.desc }
func (r *row) FlagFragments() []string { return r.flags }
func (r *row) RawHTML() string         { return r.raw }

// MarkerText returns the text (or title attribute) of the first element
// carrying the marker's class, "" when absent.
func (r *row) MarkerText(name string) string {
	marker := r.sel.Find("." + name).First()
	if marker.Length() == 0 {
		return ""
	}
	if text := strings.TrimSpace(marker.Text()); text != "" {
		return text
	}
	return strings.TrimSpace(marker.AttrOr("title", ""))
}
