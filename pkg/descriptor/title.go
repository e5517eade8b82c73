package descriptor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TitleParts is a compound title split into its components.
type TitleParts struct {
	Title   string `json:"title"`
	Subtype string `json:"subtype,omitempty"`
	Year    string `json:"year,omitempty"`
}

var yearSuffixRegex = regexp.MustCompile(`\s*\[(\d{4})\]\s*$`)

// subtypeVocab lists known release subtypes, most specific first. The
// splitter picks the latest-ending occurrence among all entries; entry
// order only breaks exact ties.
var subtypeVocab = []string{
	"Live Action TV Series",
	"Live Action Movie",
	"TV Series",
	"TV Special",
	"DVD Special",
	"BD Special",
	"OVA",
	"ONA",
	"Movie",
	"Light Novel",
	"Artbook",
	"Manga",
	"Oneshot",
	"Anthology",
}

// maxFallbackSubtype bounds the free-form subtype accepted by the
// last-separator fallback; longer candidates are treated as part of the title.
const maxFallbackSubtype = 20

// SplitTitle splits a compound title like
// "Carnival Phantasm - DVD Special [2011]" into {title, subtype, year}.
//
// Without a trailing [YYYY] the whole string is the title. The subtype is
// located by trying every vocabulary entry as a " - <subtype>" pattern and
// keeping the rightmost (latest-ending) match. When no entry matches, the
// text after the last " - " separator is accepted as a subtype only if it
// is short.
func SplitTitle(s string) TitleParts {
	m := yearSuffixRegex.FindStringSubmatchIndex(s)
	if m == nil {
		return TitleParts{Title: strings.TrimSpace(s)}
	}
	year := s[m[2]:m[3]]
	head := strings.TrimSpace(s[:m[0]])

	bestStart, bestEnd := -1, -1
	bestSub := ""
	for _, sub := range subtypeVocab {
		idx := strings.LastIndex(head, " - "+sub)
		if idx < 0 {
			continue
		}
		end := idx + len(" - ") + len(sub)
		if end > bestEnd || (end == bestEnd && len(sub) > len(bestSub)) {
			bestStart, bestEnd, bestSub = idx, end, sub
		}
	}
	if bestStart >= 0 {
		return TitleParts{
			Title:   strings.TrimSpace(head[:bestStart]),
			Subtype: bestSub,
			Year:    year,
		}
	}

	if idx := strings.LastIndex(head, " - "); idx >= 0 {
		candidate := strings.TrimSpace(head[idx+len(" - "):])
		if candidate != "" && utf8.RuneCountInString(candidate) <= maxFallbackSubtype {
			return TitleParts{
				Title:   strings.TrimSpace(head[:idx]),
				Subtype: candidate,
				Year:    year,
			}
		}
	}

	return TitleParts{Title: head, Year: year}
}
