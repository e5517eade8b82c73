package listing

import "github.com/veldt/tracklens/pkg/descriptor"

// NodeKind distinguishes the two header node flavors.
type NodeKind int

const (
	// NodeSection is a merged run of consecutive section-header titles,
	// newline-joined.
	NodeSection NodeKind = iota
	// NodeGroup is a single group-header row carrying a title and the
	// header's full raw content.
	NodeGroup
)

func (k NodeKind) String() string {
	if k == NodeGroup {
		return "group"
	}
	return "section"
}

// SectionNode is one header node of the reconstructed hierarchy. IDs are
// stable across passes over unchanged input.
type SectionNode struct {
	ID    string   `json:"id"`
	Kind  NodeKind `json:"-"`
	Title string   `json:"title"`
	// RawHTML is the group header's verbatim content; empty for sections.
	RawHTML string `json:"-"`
}

// Entry pairs an optional header node with the leaf records it owns.
// Node is nil for records preceding any header.
type Entry struct {
	Node    *SectionNode         `json:"node,omitempty"`
	Records []*descriptor.Record `json:"records"`
}

// GroupedResult is the ordered output of one extraction pass. Entry order
// preserves the original row sequence: concatenating all records, in
// order, reproduces the original leaf-row order when no sort was applied.
type GroupedResult struct {
	Category descriptor.MediaCategory `json:"category"`
	Entries  []Entry                  `json:"entries"`
}

// Records returns all leaf records in listing order.
func (g GroupedResult) Records() []*descriptor.Record {
	var recs []*descriptor.Record
	for _, e := range g.Entries {
		recs = append(recs, e.Records...)
	}
	return recs
}
