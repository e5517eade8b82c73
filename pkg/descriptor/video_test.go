package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyVideoString(t *testing.T, desc string) *Record {
	t.Helper()
	rec := &Record{}
	Classify(CategoryVideo, desc, rec)
	require.NotNil(t, rec.Video)
	assert.Nil(t, rec.Printed)
	assert.Nil(t, rec.Game)
	assert.Nil(t, rec.Music)
	return rec
}

func TestClassifyVideo_FullDescriptor(t *testing.T) {
	rec := classifyVideoString(t, "TV | Blu-ray | MKV | h264 10-bit | 1920x1080 | FLAC 5.1 | Softsubs (GroupX)")

	v := rec.Video
	assert.Equal(t, "Blu-ray", v.Format)
	assert.Equal(t, "MKV", v.Container)
	assert.Equal(t, "AVC-10b", v.Codec)
	assert.Equal(t, "1920x1080", v.Resolution)
	assert.Equal(t, "16:9", v.AspectRatio)
	assert.Equal(t, "FLAC", v.Audio)
	assert.Equal(t, "5.1", v.AudioChannels)
	assert.Equal(t, "Softsubs", v.Subtitles)
	assert.Equal(t, "GroupX", rec.Group)
	assert.False(t, v.DualAudio)
}

func TestClassifyVideo_DVD5Precedence(t *testing.T) {
	rec := classifyVideoString(t, "DVD5")

	assert.Equal(t, "DVD", rec.Video.Format)
	assert.Equal(t, "DVD5", rec.Video.Codec)
}

func TestClassifyVideo_FallbackFormat(t *testing.T) {
	// An unrecognized token becomes the format only while it is unset;
	// a later explicit match still wins.
	rec := classifyVideoString(t, "Mystery Source | MKV")
	assert.Equal(t, "Mystery Source", rec.Video.Format)
	assert.Equal(t, "MKV", rec.Video.Container)

	rec = classifyVideoString(t, "Mystery Source | DVD")
	assert.Equal(t, "DVD", rec.Video.Format, "explicit format overwrites the fallback")
}

func TestClassifyVideo_ScanLabelResolution(t *testing.T) {
	rec := classifyVideoString(t, "Web | MP4 | h264 | 4K | AAC 2.0")

	v := rec.Video
	assert.Equal(t, "2160p", v.Resolution)
	assert.Empty(t, v.AspectRatio, "no aspect ratio without pixel dimensions")
	assert.Equal(t, "AVC", v.Codec)
	assert.Equal(t, "AAC", v.Audio)
	assert.Equal(t, "2.0", v.AudioChannels)
}

func TestClassifyVideo_ExplicitAspectRatioWins(t *testing.T) {
	rec := classifyVideoString(t, "DVD | 4:3 | 720x480")

	assert.Equal(t, "720x480", rec.Video.Resolution)
	assert.Equal(t, "4:3", rec.Video.AspectRatio, "explicit ratio is not overwritten by the derived one")
}

func TestClassifyVideo_DualAudioAndRegion(t *testing.T) {
	rec := classifyVideoString(t, "DVD | R2 | Dual Audio | MPEG2")

	v := rec.Video
	assert.True(t, v.DualAudio)
	assert.Equal(t, "R2", v.Region)
	assert.Equal(t, "MPEG2", v.Codec)
	assert.Equal(t, "DVD", v.Format)
}

func TestClassifyVideo_RawSubtitles(t *testing.T) {
	rec := classifyVideoString(t, "TV | MKV | h264 | RAW")

	assert.Equal(t, "RAW", rec.Video.Subtitles)
	assert.Empty(t, rec.Group)
}

func TestClassifyVideo_EmptyDescriptor(t *testing.T) {
	rec := classifyVideoString(t, "")
	assert.Equal(t, &VideoInfo{}, rec.Video)
}
