package listing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/veldt/tracklens/pkg/descriptor"
)

// Extract runs one extraction pass: detect the table type, rebuild the
// header/leaf hierarchy and classify every leaf row. It is a total
// function over arbitrary input; malformed rows are skipped, never fatal.
func Extract(rows []Row, hints Hints, logger *slog.Logger) GroupedResult {
	if logger == nil {
		logger = slog.Default()
	}
	b := &builder{
		category: descriptor.DetectCategory(hints.TableID, hints.Context, hints.Heading),
		hints:    hints,
		logger:   logger,
	}
	for _, row := range rows {
		b.feed(row)
	}
	return b.finish()
}

// builder is the hierarchy state machine. Pending section titles
// accumulate until the next non-continuation row commits them as a single
// merged Section node.
type builder struct {
	category descriptor.MediaCategory
	hints    Hints
	logger   *slog.Logger

	pending []string     // uncommitted section title fragments
	open    *SectionNode // node owning subsequent leaves, nil before any header
	records []*descriptor.Record
	entries []Entry
	seq     int
}

func (b *builder) feed(row Row) {
	if row.HasTag(TagSectionHeader) {
		if title := strings.TrimSpace(row.Cell(0)); title != "" {
			b.pending = append(b.pending, title)
		}
		return
	}

	b.commitPending()

	switch {
	case row.HasTag(TagGroupHeader):
		b.flush()
		b.seq++
		b.open = &SectionNode{
			ID:      fmt.Sprintf("g%d", b.seq),
			Kind:    NodeGroup,
			Title:   strings.TrimSpace(row.Cell(0)),
			RawHTML: row.RawHTML(),
		}

	case row.HasTag(TagLeaf):
		rec, ok := b.classifyRow(row)
		if !ok {
			return
		}
		b.records = append(b.records, rec)
	}
	// Rows carrying no structural tag are not part of the listing.
}

// commitPending turns accumulated continuation titles into a new Section
// node. Consecutive section headers therefore merge into one node; a
// Section never directly contains another Section.
func (b *builder) commitPending() {
	if len(b.pending) == 0 {
		return
	}
	title := strings.Join(b.pending, "\n")
	b.pending = nil
	b.flush()
	b.seq++
	b.open = &SectionNode{
		ID:    fmt.Sprintf("s%d", b.seq),
		Kind:  NodeSection,
		Title: title,
	}
}

// flush pushes the open node and its accumulated leaves to the output.
func (b *builder) flush() {
	if b.open == nil && len(b.records) == 0 {
		return
	}
	b.entries = append(b.entries, Entry{Node: b.open, Records: b.records})
	b.open = nil
	b.records = nil
}

func (b *builder) finish() GroupedResult {
	b.commitPending()
	b.flush()
	return GroupedResult{Category: b.category, Entries: b.entries}
}

// classifyRow builds the record for one leaf row. Any panic during a
// single row's classification is caught here and the row is treated as
// malformed: the input is author-uncontrolled page markup, and one bad row
// must not abort the pass.
func (b *builder) classifyRow(row Row) (rec *descriptor.Record, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("row classification panicked, skipping row",
				"row", row.ID(), "panic", r)
			rec, ok = nil, false
		}
	}()

	if row.ID() == "" {
		// No identifying link; the row cannot be referenced.
		b.logger.Debug("skipping malformed row without id")
		return nil, false
	}

	rec = &descriptor.Record{
		ID:       row.ID(),
		GroupID:  row.GroupID(),
		Size:     row.Cell(b.hints.SizeCell),
		Snatches: row.Cell(b.hints.SnatchCell),
		Seeders:  row.Cell(b.hints.SeedCell),
		Leechers: row.Cell(b.hints.LeechCell),
		Flags:    row.FlagFragments(),
		Details:  row.RawHTML(),
	}
	rec.Freeleech = freeleechStatus(row)
	rec.Rec = recStatus(row)

	descriptor.Classify(b.category, row.Descriptor(), rec)

	if b.open != nil {
		rec.SectionID = b.open.ID
		// Domain rule: for printed media the section title doubles as the
		// published work's display group.
		if b.open.Kind == NodeSection && b.category == descriptor.CategoryPrintedMedia {
			rec.Group = b.open.Title
		}
	}
	return rec, true
}

// recStatus resolves the recommendation status through the three-tier
// fallback: structural tag, then inline marker, then raw-content search.
// The curation collaborator may inject the status as a tag or as markup
// depending on timing, so all three must be tolerated; first match wins.
func recStatus(row Row) descriptor.RecStatus {
	switch {
	case row.HasTag(TagRecBest):
		return descriptor.RecBest
	case row.HasTag(TagRecAlt):
		return descriptor.RecAlt
	}

	if m := strings.ToLower(row.MarkerText(MarkerRec)); m != "" {
		switch {
		case strings.Contains(m, "best"):
			return descriptor.RecBest
		case strings.Contains(m, "alt"):
			return descriptor.RecAlt
		}
	}

	raw := strings.ToLower(row.RawHTML())
	switch {
	case strings.Contains(raw, TagRecBest):
		return descriptor.RecBest
	case strings.Contains(raw, TagRecAlt):
		return descriptor.RecAlt
	}
	return descriptor.RecNone
}

// freeleechStatus uses the same tag → marker → raw-content fallback chain
// as recStatus.
func freeleechStatus(row Row) bool {
	if row.HasTag(TagFreeleech) {
		return true
	}
	if row.MarkerText(MarkerFreeleech) != "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.RawHTML()), TagFreeleech)
}
