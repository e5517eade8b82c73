package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPrinted(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want PrintedInfo
	}{
		{
			name: "translated with translator",
			desc: "Translated (GroupY) | Digital | EPUB | Ongoing",
			want: PrintedInfo{Type: "Translated", Translator: "GroupY", Digital: true, Format: "EPUB", Ongoing: true},
		},
		{
			name: "raw scan",
			desc: "Raw | Archived Scans",
			want: PrintedInfo{Type: "Raw", Format: "Archived Scans"},
		},
		{
			name: "unknown tokens ignored",
			desc: "Sparkly | PDF",
			want: PrintedInfo{Format: "PDF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Record{}
			Classify(CategoryPrintedMedia, tt.desc, rec)
			require.NotNil(t, rec.Printed)
			assert.Equal(t, tt.want, *rec.Printed)
			assert.Nil(t, rec.Video)
			assert.Equal(t, CategoryPrintedMedia, rec.Category)
		})
	}
}

func TestClassifyGame(t *testing.T) {
	rec := &Record{}
	Classify(CategoryGame, "Game | PC | Region Free | Archived", rec)

	require.NotNil(t, rec.Game)
	assert.Equal(t, GameInfo{Type: "Game", Platform: "PC", Region: "Region Free", Archived: true}, *rec.Game)
}

func TestClassifyGame_PatchForHandheld(t *testing.T) {
	rec := &Record{}
	Classify(CategoryGame, "Patch | NDS | NTSC-J", rec)

	require.NotNil(t, rec.Game)
	assert.Equal(t, "Patch", rec.Game.Type)
	assert.Equal(t, "NDS", rec.Game.Platform)
	assert.Equal(t, "NTSC-J", rec.Game.Region)
	assert.False(t, rec.Game.Archived)
}

func TestClassifyMusic(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want MusicInfo
	}{
		{
			name: "cd rip with log and cue",
			desc: "FLAC / Lossless / CD / Log / Cue",
			want: MusicInfo{Codec: "FLAC", Bitrate: "Lossless", Media: "CD", Log: true, Cue: true},
		},
		{
			name: "vbr mp3",
			desc: "MP3 / V0 (VBR) / Web",
			want: MusicInfo{Codec: "MP3", Bitrate: "V0 (VBR)", Media: "Web"},
		},
		{
			name: "24 bit lossless",
			desc: "FLAC / Lossless 24-bit / Vinyl",
			want: MusicInfo{Codec: "FLAC", Bitrate: "Lossless 24-bit", Media: "Vinyl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Record{}
			Classify(CategoryMusic, tt.desc, rec)
			require.NotNil(t, rec.Music)
			assert.Equal(t, tt.want, *rec.Music)
		})
	}
}

func TestMediaCategoryString(t *testing.T) {
	assert.Equal(t, "video", CategoryVideo.String())
	assert.Equal(t, "printed-media", CategoryPrintedMedia.String())
	assert.Equal(t, "game", CategoryGame.String())
	assert.Equal(t, "music", CategoryMusic.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestRecStatusString(t *testing.T) {
	assert.Equal(t, "best", RecBest.String())
	assert.Equal(t, "alt", RecAlt.String())
	assert.Equal(t, "none", RecNone.String())
}
