package descriptor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	dimensionsRegex = regexp.MustCompile(`^(\d+)x(\d+)$`)
	scanLabelRegex  = regexp.MustCompile(`^(?i)(\d{3,4})[pi]$`)
	ratioTokenRegex = regexp.MustCompile(`^\d+(?:\.\d+)?:\d+(?:\.\d+)?$`)
)

// scanLabels maps shorthand resolution tokens to their canonical label.
// Unknown values pass through unchanged.
var scanLabels = map[string]string{
	"4k":    "2160p",
	"2160p": "2160p",
	"1080p": "1080p",
	"1080i": "1080i",
	"720p":  "720p",
	"576p":  "576p",
	"576i":  "576i",
	"480p":  "480p",
	"480i":  "480i",
}

// ParseDimensions parses a WIDTHxHEIGHT token. ok is false when the token
// is not a pixel-dimension pair.
func ParseDimensions(tok string) (width, height int, ok bool) {
	m := dimensionsRegex.FindStringSubmatch(tok)
	if m == nil {
		return 0, 0, false
	}
	width, _ = strconv.Atoi(m[1])
	height, _ = strconv.Atoi(m[2])
	return width, height, true
}

// CanonicalScanLabel maps tokens like "1080p", "480i" or "4K" through the
// fixed label table. ok reports whether the token is a resolution shorthand
// at all; shorthands missing from the table pass through unchanged.
func CanonicalScanLabel(tok string) (string, bool) {
	if !scanLabelRegex.MatchString(tok) && !strings.EqualFold(tok, "4K") {
		return "", false
	}
	if canon, ok := scanLabels[strings.ToLower(tok)]; ok {
		return canon, true
	}
	return tok, true
}

// snapRatios are common display ratios, snapped to when the computed ratio
// is within tolerance. NTSC DVD dimensions (720x480 = 1.50) deliberately
// miss the table so they surface as the computed "1.50:1".
var snapRatios = []struct {
	label string
	value float64
}{
	{"16:9", 16.0 / 9.0},
	{"4:3", 4.0 / 3.0},
	{"5:4", 1.25},
	{"1.85:1", 1.85},
	{"2.35:1", 2.35},
}

const ratioTolerance = 0.01

// AspectRatio derives a display ratio from pixel dimensions, snapping to
// the nearest common ratio within tolerance, else formatting the computed
// value as "R:1" with two decimals.
func AspectRatio(width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	ratio := float64(width) / float64(height)
	for _, snap := range snapRatios {
		if math.Abs(ratio-snap.value) < ratioTolerance {
			return snap.label
		}
	}
	return fmt.Sprintf("%.2f:1", ratio)
}

// RatioValue parses an aspect-ratio string ("16:9", "1.85:1") back into a
// float. ok is false for empty or malformed input.
func RatioValue(s string) (float64, bool) {
	num, den, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
	d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// codecNames maps informal codec spellings to canonical names. Unmapped
// values pass through unchanged.
var codecNames = map[string]string{
	"h264":        "AVC",
	"h264 10-bit": "AVC-10b",
	"h265":        "HEVC",
	"h265 10-bit": "HEVC-10b",
}

// CanonicalCodec normalizes an informal codec name. The lookup is
// case-insensitive; unknown names are returned as-is.
func CanonicalCodec(name string) string {
	if canon, ok := codecNames[strings.ToLower(name)]; ok {
		return canon
	}
	return name
}

// ExtractGroup finds the last balanced "(...)" pair in s. The text before
// it (trimmed) is the clean value and the inner text is the extracted
// group/translator. Without a balanced pair the whole string is clean and
// the group is empty.
func ExtractGroup(s string) (clean, group string) {
	close := strings.LastIndexByte(s, ')')
	if close < 0 {
		return strings.TrimSpace(s), ""
	}
	depth := 0
	for i := close; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[:i]), s[i+1 : close]
			}
		}
	}
	return strings.TrimSpace(s), ""
}

var (
	channelDotRegex = regexp.MustCompile(`\b\d+\.\d+\b`)
	channelChRegex  = regexp.MustCompile(`(?i)\b\d+\s*ch\b`)
)

// ParseAudio splits an audio token like "FLAC 5.1" or "MP3 2 ch" into a
// codec and a channel descriptor. The channel part is located first and
// stripped; the remainder is matched case-insensitively against the audio
// codec vocabulary (first containment match wins). When no vocabulary entry
// matches, the stripped remainder itself becomes the codec value.
func ParseAudio(tok string) (codec, channels string) {
	rest := tok
	if m := channelDotRegex.FindString(rest); m != "" {
		channels = m
		rest = strings.Replace(rest, m, "", 1)
	} else if m := channelChRegex.FindString(rest); m != "" {
		channels = m
		rest = strings.Replace(rest, m, "", 1)
	}
	rest = strings.TrimSpace(rest)
	lower := strings.ToLower(rest)
	for _, c := range audioCodecs {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c, channels
		}
	}
	return rest, channels
}
