package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          string
	}{
		{"full hd snaps to 16:9", 1920, 1080, "16:9"},
		{"sd snaps to 4:3", 640, 480, "4:3"},
		{"ntsc dvd stays computed", 720, 480, "1.50:1"},
		{"scope", 1920, 817, "2.35:1"},
		{"odd ratio computed", 1000, 437, "2.29:1"},
		{"zero height", 100, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AspectRatio(tt.width, tt.height))
		})
	}
}

func TestParseDimensions(t *testing.T) {
	w, h, ok := ParseDimensions("1920x1080")
	assert.True(t, ok)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	_, _, ok = ParseDimensions("1080p")
	assert.False(t, ok)
	_, _, ok = ParseDimensions("axb")
	assert.False(t, ok)
}

func TestCanonicalScanLabel(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"4K", "2160p", true},
		{"1080p", "1080p", true},
		{"480i", "480i", true},
		{"540p", "540p", true}, // not in the table, passes through
		{"MKV", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalScanLabel(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalCodec(t *testing.T) {
	assert.Equal(t, "AVC", CanonicalCodec("h264"))
	assert.Equal(t, "AVC-10b", CanonicalCodec("h264 10-bit"))
	assert.Equal(t, "HEVC", CanonicalCodec("H265"))
	assert.Equal(t, "HEVC-10b", CanonicalCodec("h265 10-bit"))
	assert.Equal(t, "XviD", CanonicalCodec("XviD"), "unmapped values pass through")
	assert.Equal(t, "", CanonicalCodec(""))
}

func TestExtractGroup(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantClean string
		wantGroup string
	}{
		{"simple", "Softsubs (GroupX)", "Softsubs", "GroupX"},
		{"no parens", "Hardsubs", "Hardsubs", ""},
		{"last pair wins", "Softsubs (A) (B)", "Softsubs (A)", "B"},
		{"nested", "Name ((inner))", "Name", "(inner)"},
		{"unbalanced", "Name )oops", "Name )oops", ""},
		{"empty group", "Name ()", "Name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, group := ExtractGroup(tt.input)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantGroup, group)
		})
	}
}

func TestParseAudio(t *testing.T) {
	tests := []struct {
		input        string
		wantCodec    string
		wantChannels string
	}{
		{"FLAC 5.1", "FLAC", "5.1"},
		{"MP3 2 ch", "MP3", "2 ch"},
		{"TrueHD 7.1", "TrueHD", "7.1"},
		{"EAC3 5.1", "EAC3", "5.1"},
		{"AC3", "AC3", ""},
		{"Mystery 2.0", "Mystery", "2.0"}, // unknown codec: stripped remainder kept
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			codec, channels := ParseAudio(tt.input)
			assert.Equal(t, tt.wantCodec, codec)
			assert.Equal(t, tt.wantChannels, channels)
		})
	}
}
