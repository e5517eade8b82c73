package descriptor

import "strings"

// classifyPrinted handles printed-media descriptors, e.g.
// "Translated (GroupY) | Digital | EPUB | Ongoing". The translator rides in
// a parenthetical suffix on the type token.
func classifyPrinted(tokens []string, rec *Record) {
	p := &PrintedInfo{}
	rec.Category = CategoryPrintedMedia
	rec.Printed = p

	for _, tok := range tokens {
		switch {
		case strings.EqualFold(tok, "Digital"):
			p.Digital = true

		case strings.EqualFold(tok, "Ongoing"):
			p.Ongoing = true

		case matchVocab(printedFormats, tok) != "":
			p.Format = matchVocab(printedFormats, tok)

		case isPrintedType(tok):
			clean, translator := ExtractGroup(tok)
			p.Type = clean
			if translator != "" {
				p.Translator = translator
			}
		}
	}
}

// isPrintedType matches a type token with or without a parenthetical
// translator suffix.
func isPrintedType(tok string) bool {
	clean, _ := ExtractGroup(tok)
	return matchVocab(printedTypes, clean) != ""
}
