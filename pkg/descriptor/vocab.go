package descriptor

import "strings"

// Closed per-category vocabularies. These are data, not logic: the
// classifiers consult them in a fixed precedence order, so entries here can
// be extended without touching the rule batteries.

// Video.
var (
	videoFormats = []string{
		"TV", "DVD", "Blu-ray", "UHD Blu-ray", "HD DVD", "Web", "VHS", "VCD", "LD", "Camera",
	}

	videoContainers = []string{
		"MKV", "MP4", "AVI", "OGM", "RMVB", "WMV", "MPG", "ISO", "VOB IFO", "VOB", "TS", "M2TS", "FLV",
	}

	videoCodecs = []string{
		"h264 10-bit", "h264", "h265 10-bit", "h265", "XviD", "DivX", "MPEG2", "MPEG-TS", "VC-1", "AV1", "RealVideo",
	}

	videoRegions = []string{"R1", "R2", "NTSC", "PAL"}

	// Subtitle tokens start with one of these; a trailing parenthetical
	// carries the release group.
	subtitlePrefixes = []string{"Softsubs", "Hardsubs", "RAW"}
)

// Audio codecs shared by the video classifier's audio parser. Order matters:
// the first containment match wins, so EAC3 must precede AC3 and DTS-ES
// must precede DTS.
var audioCodecs = []string{
	"TrueHD", "DTS-ES", "DTS", "EAC3", "AC3", "FLAC", "AAC", "MP3", "PCM", "Opus", "Vorbis", "RealAudio",
}

// Printed media.
var (
	printedTypes   = []string{"Raw", "Translated"}
	printedFormats = []string{"EPUB", "PDF", "Archived Scans"}
)

// Games.
var (
	gameTypes = []string{"Game", "Patch", "DLC"}

	gamePlatforms = []string{
		"PC", "PS2", "PS3", "PSP", "PSX", "PS Vita", "GameCube", "Wii", "N64",
		"SNES", "NES", "GBA", "NDS", "3DS", "Switch", "Dreamcast", "Mac", "Linux",
		"Xbox 360", "Xbox",
	}

	gameRegions = []string{"Region Free", "NTSC-J", "NTSC-U", "PAL", "JPN", "ENG", "USA"}
)

// Music.
var (
	musicCodecs = []string{"MP3", "FLAC", "AAC"}

	musicBitrates = []string{
		"192", "V2 (VBR)", "V0 (VBR)", "256", "320", "Lossless 24-bit", "Lossless",
	}

	musicMedia = []string{"CD", "DVD", "Blu-ray", "Vinyl", "Soundtrack", "Web", "Cassette"}
)

// matchVocab returns the canonical vocabulary entry equal to tok
// (case-insensitive), or "" when tok is not in the vocabulary.
func matchVocab(vocab []string, tok string) string {
	for _, entry := range vocab {
		if strings.EqualFold(entry, tok) {
			return entry
		}
	}
	return ""
}
