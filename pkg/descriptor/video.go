package descriptor

import "strings"

// classifyVideo applies the video rule battery to each token. Rules are
// tried in order and a token is consumed by the first that matches. The
// bare DVD5/DVD9 special case runs ahead of the generic vocabulary tests
// because such a token simultaneously implies format=DVD and codec=token.
// A token matching no rule becomes the format, but only while the format
// is still unset; an explicit format match always assigns.
func classifyVideo(tokens []string, rec *Record) {
	v := &VideoInfo{}
	rec.Category = CategoryVideo
	rec.Video = v

	for _, tok := range tokens {
		switch {
		case strings.EqualFold(tok, "Dual Audio"):
			v.DualAudio = true

		case strings.EqualFold(tok, "DVD5") || strings.EqualFold(tok, "DVD9"):
			v.Format = "DVD"
			v.Codec = tok

		case assignResolution(tok, v):

		case ratioTokenRegex.MatchString(tok):
			v.AspectRatio = tok

		case matchVocab(videoRegions, tok) != "":
			v.Region = matchVocab(videoRegions, tok)

		case matchVocab(videoFormats, tok) != "":
			v.Format = matchVocab(videoFormats, tok)

		case matchVocab(videoContainers, tok) != "":
			v.Container = matchVocab(videoContainers, tok)

		case matchVocab(videoCodecs, tok) != "":
			v.Codec = tok

		case isSubtitleToken(tok):
			clean, group := ExtractGroup(tok)
			v.Subtitles = clean
			if group != "" {
				rec.Group = group
			}

		case isAudioToken(tok):
			v.Audio, v.AudioChannels = ParseAudio(tok)

		default:
			if v.Format == "" {
				v.Format = tok
			}
		}
	}

	v.Codec = CanonicalCodec(v.Codec)
}

// assignResolution consumes a resolution token (WIDTHxHEIGHT, NNNp/NNNi or
// 4K), deriving the aspect ratio from pixel dimensions when none is set yet.
func assignResolution(tok string, v *VideoInfo) bool {
	if w, h, ok := ParseDimensions(tok); ok {
		v.Resolution = tok
		if v.AspectRatio == "" {
			v.AspectRatio = AspectRatio(w, h)
		}
		return true
	}
	if canon, ok := CanonicalScanLabel(tok); ok {
		v.Resolution = canon
		return true
	}
	return false
}

func isSubtitleToken(tok string) bool {
	for _, prefix := range subtitlePrefixes {
		if len(tok) >= len(prefix) && strings.EqualFold(tok[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// isAudioToken reports whether tok carries a channel descriptor or names a
// known audio codec.
func isAudioToken(tok string) bool {
	if channelDotRegex.MatchString(tok) || channelChRegex.MatchString(tok) {
		return true
	}
	lower := strings.ToLower(tok)
	for _, c := range audioCodecs {
		if strings.Contains(lower, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
