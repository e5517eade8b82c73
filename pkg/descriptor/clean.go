package descriptor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanRegex matches Roman numerals II-IX preceded by a space. Standalone
// "I" and "X" are excluded (too many real titles contain them), as are
// numerals at the start of the string.
var romanRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

func normalizeRomanNumerals(s string) string {
	return romanRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.TrimSpace(match)
		if arabic, ok := romanArabic[strings.ToUpper(roman)]; ok {
			return " " + arabic
		}
		return match
	})
}

// CleanTitle normalizes a split title for fuzzy matching: lowercase, Roman
// numerals to Arabic, accents stripped, punctuation folded, leading
// articles removed from each colon-separated part, whitespace collapsed.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = normalizeRomanNumerals(s)
	s = foldAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Titles with a subtitle ("Léon: The Professional") get the article
	// stripped from each part independently.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

var leadingArticles = []string{"the ", "a ", "an "}

func stripArticle(s string) string {
	for _, art := range leadingArticles {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
