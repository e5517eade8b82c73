package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldt/tracklens/pkg/descriptor"
)

func TestDetailSummary_Video(t *testing.T) {
	rec := &descriptor.Record{
		Video: &descriptor.VideoInfo{
			Format:     "Blu-ray",
			Container:  "MKV",
			Codec:      "AVC",
			Resolution: "1920x1080",
			DualAudio:  true,
		},
	}

	assert.Equal(t, "Blu-ray / MKV / AVC / 1920x1080 / Dual Audio", detailSummary(rec))
}

func TestDetailSummary_Printed(t *testing.T) {
	rec := &descriptor.Record{
		Printed: &descriptor.PrintedInfo{
			Type:       "Translated",
			Translator: "GroupY",
			Digital:    true,
			Format:     "EPUB",
		},
	}

	assert.Equal(t, "Translated / EPUB / (GroupY) / Digital", detailSummary(rec))
}

func TestDetailSummary_Music(t *testing.T) {
	rec := &descriptor.Record{
		Music: &descriptor.MusicInfo{Codec: "FLAC", Bitrate: "Lossless", Media: "CD", Log: true, Cue: true},
	}

	assert.Equal(t, "FLAC / Lossless / CD / Log / Cue", detailSummary(rec))
}

func TestDetailSummary_EmptyRecord(t *testing.T) {
	assert.Equal(t, "", detailSummary(&descriptor.Record{}))
}

func TestStatusSummary(t *testing.T) {
	assert.Equal(t, "", statusSummary(&descriptor.Record{}))
	assert.Equal(t, "FL", statusSummary(&descriptor.Record{Freeleech: true}))
	assert.Equal(t, "best", statusSummary(&descriptor.Record{Rec: descriptor.RecBest}))
	assert.Equal(t, "alt FL", statusSummary(&descriptor.Record{Rec: descriptor.RecAlt, Freeleech: true}))
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Size"},
		[][]string{{"1", "700 MiB"}, {"2"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 4, "header, rows and borders")
	assert.Contains(t, out, "700 MiB")
	assert.Contains(t, out, "ID")
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Equal(t, "", renderTable(nil, nil, nil))
}
