package listing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/veldt/tracklens/pkg/descriptor"
)

// Column names a sortable record attribute.
type Column string

const (
	ColumnGroup      Column = "group"
	ColumnSize       Column = "size"
	ColumnSnatches   Column = "snatches"
	ColumnSeeders    Column = "seeders"
	ColumnLeechers   Column = "leechers"
	ColumnFlags      Column = "flags"
	ColumnFormat     Column = "format"
	ColumnContainer  Column = "container"
	ColumnCodec      Column = "codec"
	ColumnResolution Column = "resolution"
	ColumnAudio      Column = "audio"
	ColumnChannels   Column = "channels"
	ColumnSubtitles  Column = "subtitles"
	ColumnRegion     Column = "region"
	ColumnType       Column = "type"
	ColumnPlatform   Column = "platform"
	ColumnTranslator Column = "translator"
	ColumnBitrate    Column = "bitrate"
	ColumnMedia      Column = "media"
	ColumnDualAudio  Column = "dualaudio"
	ColumnDigital    Column = "digital"
	ColumnOngoing    Column = "ongoing"
	ColumnArchived   Column = "archived"
	ColumnLog        Column = "log"
	ColumnCue        Column = "cue"
)

var knownColumns = map[Column]bool{
	ColumnGroup: true, ColumnSize: true, ColumnSnatches: true,
	ColumnSeeders: true, ColumnLeechers: true, ColumnFlags: true,
	ColumnFormat: true, ColumnContainer: true, ColumnCodec: true,
	ColumnResolution: true, ColumnAudio: true, ColumnChannels: true,
	ColumnSubtitles: true, ColumnRegion: true, ColumnType: true,
	ColumnPlatform: true, ColumnTranslator: true, ColumnBitrate: true,
	ColumnMedia: true, ColumnDualAudio: true, ColumnDigital: true,
	ColumnOngoing: true, ColumnArchived: true, ColumnLog: true,
	ColumnCue: true,
}

// ValidColumn reports whether name is a sortable column.
func ValidColumn(name string) bool {
	return knownColumns[Column(name)]
}

// Direction of a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort reorders leaf records within each entry of result, stable, by the
// given column. Section order is never changed. Descending negates the
// comparator's sign uniformly; ties keep their original order in both
// directions. The input is left untouched; a new result is returned.
func Sort(result GroupedResult, column Column, dir Direction) GroupedResult {
	cmp := comparator(column)
	out := GroupedResult{
		Category: result.Category,
		Entries:  make([]Entry, len(result.Entries)),
	}
	for i, e := range result.Entries {
		recs := make([]*descriptor.Record, len(e.Records))
		copy(recs, e.Records)
		sort.SliceStable(recs, func(a, b int) bool {
			c := cmp(recs[a], recs[b])
			if dir == Descending {
				c = -c
			}
			return c < 0
		})
		out.Entries[i] = Entry{Node: e.Node, Records: recs}
	}
	return out
}

type compareFunc func(a, b *descriptor.Record) int

func comparator(column Column) compareFunc {
	switch column {
	case ColumnSize:
		return numericCompare(sizeBytes)
	case ColumnSnatches, ColumnSeeders, ColumnLeechers:
		return numericCompare(func(r *descriptor.Record) float64 {
			return counterValue(counterField(r, column))
		})
	case ColumnChannels:
		return numericCompare(func(r *descriptor.Record) float64 {
			return channelCount(textField(r, ColumnChannels))
		})
	case ColumnResolution:
		return compareResolution
	case ColumnFlags:
		return compareFlags
	case ColumnDualAudio, ColumnDigital, ColumnOngoing, ColumnArchived, ColumnLog, ColumnCue:
		return boolCompare(column)
	default:
		coll := collate.New(language.Und)
		return func(a, b *descriptor.Record) int {
			return compareText(coll, textField(a, column), textField(b, column))
		}
	}
}

// compareText orders strings with the collator, except that an empty
// string sorts after any non-empty string.
func compareText(coll *collate.Collator, a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return coll.CompareString(a, b)
}

func numericCompare(value func(*descriptor.Record) float64) compareFunc {
	return func(a, b *descriptor.Record) int {
		va, vb := value(a), value(b)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	}
}

// sizeBytes parses a "<number><unit>" display string to a byte count.
// Unparsable strings compare as zero.
func sizeBytes(r *descriptor.Record) float64 {
	n, err := humanize.ParseBytes(strings.TrimSpace(r.Size))
	if err != nil {
		return 0
	}
	return float64(n)
}

// counterValue parses a plain counter, tolerating thousands separators.
func counterValue(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return float64(n)
}

var channelNumberRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// channelCount parses "5.1" or "2 ch" to a float; unparsable as zero.
func channelCount(s string) float64 {
	m := channelNumberRegex.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return n
}

// compareResolution orders by height, then width, then progressive after
// interlaced.
func compareResolution(a, b *descriptor.Record) int {
	wa, ha, ia := resolutionKey(a)
	wb, hb, ib := resolutionKey(b)
	switch {
	case ha != hb:
		return intCompare(ha, hb)
	case wa != wb:
		return intCompare(wa, wb)
	case ia != ib:
		if ia {
			return -1
		}
		return 1
	}
	return 0
}

// resolutionKey derives (width, height, interlaced) for a record. A direct
// WxH value is parsed as-is; an NNNp/NNNi label derives the width from the
// record's aspect ratio, assuming 16:9 when none is set.
func resolutionKey(r *descriptor.Record) (width, height int, interlaced bool) {
	res := textField(r, ColumnResolution)
	if res == "" {
		return 0, 0, false
	}
	if w, h, ok := descriptor.ParseDimensions(res); ok {
		return w, h, false
	}

	label := strings.ToLower(res)
	interlaced = strings.HasSuffix(label, "i")
	digits := strings.TrimRight(label, "pi")
	h, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, false
	}

	ratio := 16.0 / 9.0
	if r.Video != nil {
		if v, ok := descriptor.RatioValue(r.Video.AspectRatio); ok {
			ratio = v
		}
	}
	return int(float64(h)*ratio + 0.5), h, interlaced
}

// Weighted score increments for the flags column. The highest-value
// indicator present contributes the largest increment.
const (
	flagScoreBest      = 8
	flagScoreAlt       = 4
	flagScoreFreeleech = 2
	flagScoreRemaster  = 1
)

// compareFlags orders by weighted indicator score, ties broken by the raw
// flag fragment count.
func compareFlags(a, b *descriptor.Record) int {
	sa, sb := flagScore(a), flagScore(b)
	if sa != sb {
		return intCompare(sa, sb)
	}
	return intCompare(len(a.Flags), len(b.Flags))
}

func flagScore(r *descriptor.Record) int {
	score := 0
	switch r.Rec {
	case descriptor.RecBest:
		score += flagScoreBest
	case descriptor.RecAlt:
		score += flagScoreAlt
	}
	if r.Freeleech {
		score += flagScoreFreeleech
	}
	for _, f := range r.Flags {
		if strings.Contains(strings.ToLower(f), "remaster") {
			score += flagScoreRemaster
			break
		}
	}
	return score
}

func boolCompare(column Column) compareFunc {
	return func(a, b *descriptor.Record) int {
		va, vb := boolField(a, column), boolField(b, column)
		switch {
		case va == vb:
			return 0
		case va:
			return -1 // true sorts before false
		}
		return 1
	}
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func counterField(r *descriptor.Record, column Column) string {
	switch column {
	case ColumnSnatches:
		return r.Snatches
	case ColumnSeeders:
		return r.Seeders
	case ColumnLeechers:
		return r.Leechers
	}
	return ""
}

// textField pulls the display string for a column from whichever category
// field set the record carries. Columns foreign to the record's category
// yield "".
func textField(r *descriptor.Record, column Column) string {
	switch column {
	case ColumnGroup:
		return r.Group
	case ColumnSize:
		return r.Size
	case ColumnSnatches, ColumnSeeders, ColumnLeechers:
		return counterField(r, column)
	}

	switch {
	case r.Video != nil:
		switch column {
		case ColumnFormat:
			return r.Video.Format
		case ColumnContainer:
			return r.Video.Container
		case ColumnCodec:
			return r.Video.Codec
		case ColumnResolution:
			return r.Video.Resolution
		case ColumnAudio:
			return r.Video.Audio
		case ColumnChannels:
			return r.Video.AudioChannels
		case ColumnSubtitles:
			return r.Video.Subtitles
		case ColumnRegion:
			return r.Video.Region
		}
	case r.Printed != nil:
		switch column {
		case ColumnType:
			return r.Printed.Type
		case ColumnTranslator:
			return r.Printed.Translator
		case ColumnFormat:
			return r.Printed.Format
		}
	case r.Game != nil:
		switch column {
		case ColumnType:
			return r.Game.Type
		case ColumnPlatform:
			return r.Game.Platform
		case ColumnRegion:
			return r.Game.Region
		}
	case r.Music != nil:
		switch column {
		case ColumnCodec:
			return r.Music.Codec
		case ColumnBitrate:
			return r.Music.Bitrate
		case ColumnMedia:
			return r.Music.Media
		}
	}
	return ""
}

func boolField(r *descriptor.Record, column Column) bool {
	switch column {
	case ColumnDualAudio:
		return r.Video != nil && r.Video.DualAudio
	case ColumnDigital:
		return r.Printed != nil && r.Printed.Digital
	case ColumnOngoing:
		return r.Printed != nil && r.Printed.Ongoing
	case ColumnArchived:
		return r.Game != nil && r.Game.Archived
	case ColumnLog:
		return r.Music != nil && r.Music.Log
	case ColumnCue:
		return r.Music != nil && r.Music.Cue
	}
	return false
}
