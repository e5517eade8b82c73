package descriptor

import "strings"

// classifyMusic handles music descriptors, which use "/" as the delimiter,
// e.g. "MP3 / 320 / CD / Log / Cue".
func classifyMusic(tokens []string, rec *Record) {
	m := &MusicInfo{}
	rec.Category = CategoryMusic
	rec.Music = m

	for _, tok := range tokens {
		switch {
		case strings.EqualFold(tok, "Log"):
			m.Log = true

		case strings.EqualFold(tok, "Cue"):
			m.Cue = true

		case matchVocab(musicCodecs, tok) != "":
			m.Codec = matchVocab(musicCodecs, tok)

		case matchVocab(musicBitrates, tok) != "":
			m.Bitrate = matchVocab(musicBitrates, tok)

		case matchVocab(musicMedia, tok) != "":
			m.Media = matchVocab(musicMedia, tok)
		}
	}
}
