package descriptor

import "strings"

// identifierKeywords map fragments of a row-source identifier (a table id
// or page slug) to a category. Checked in order; first containment wins.
var identifierKeywords = []struct {
	words    []string
	category MediaCategory
}{
	{[]string{"music", "album", "discography"}, CategoryMusic},
	{[]string{"manga", "printed", "novel", "book", "artbook"}, CategoryPrintedMedia},
	{[]string{"game", "application"}, CategoryGame},
	{[]string{"video", "anime", "live_action"}, CategoryVideo},
}

// Heading keyword sets, consulted only when neither an identifier nor a
// page-context hint matched. Printed media is checked first.
var (
	printedHeadingWords = []string{"manga", "novel", "artbook", "anthology", "oneshot"}
	gameHeadingWords    = []string{"game", "visual novel", "application"}
)

// CategoryFromHint matches an identifier string against the keyword table.
// Returns CategoryUnknown when nothing matches.
func CategoryFromHint(identifier string) MediaCategory {
	id := strings.ToLower(identifier)
	if id == "" {
		return CategoryUnknown
	}
	for _, entry := range identifierKeywords {
		for _, w := range entry.words {
			if strings.Contains(id, w) {
				return entry.category
			}
		}
	}
	return CategoryUnknown
}

// DetectCategory picks the classifier variant for a listing. Precedence:
//
//  1. the row-source identifier, matched against the keyword table
//  2. an explicit page-context hint
//  3. the heading text, checked against the printed-media then game sets
//
// Anything else defaults to video. Pure function; no side effects.
func DetectCategory(identifier string, context MediaCategory, heading string) MediaCategory {
	if c := CategoryFromHint(identifier); c != CategoryUnknown {
		return c
	}
	if context != CategoryUnknown {
		return context
	}
	h := strings.ToLower(heading)
	for _, w := range printedHeadingWords {
		if strings.Contains(h, w) {
			return CategoryPrintedMedia
		}
	}
	for _, w := range gameHeadingWords {
		if strings.Contains(h, w) {
			return CategoryGame
		}
	}
	return CategoryVideo
}
