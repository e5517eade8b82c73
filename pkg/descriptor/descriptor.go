// Package descriptor parses tracker descriptor strings into typed records.
//
// A descriptor is the compact, delimiter-separated text a tracker uses to
// summarize a release, e.g.
//
//	TV | Blu-ray | MKV | h264 10-bit | 1920x1080 | FLAC 5.1 | Softsubs (GroupX)
//
// Tokens may appear in any order and carry optional parenthetical sub-fields.
// Each media category (video, printed media, games, music) has its own
// vocabulary and precedence rules; the category is chosen once per table by
// DetectCategory and never re-decided mid-row.
package descriptor

import "encoding/json"

// MediaCategory selects the classifier variant and the record's field set.
type MediaCategory int

const (
	CategoryUnknown MediaCategory = iota
	CategoryVideo
	CategoryPrintedMedia
	CategoryGame
	CategoryMusic
)

func (c MediaCategory) String() string {
	switch c {
	case CategoryVideo:
		return "video"
	case CategoryPrintedMedia:
		return "printed-media"
	case CategoryGame:
		return "game"
	case CategoryMusic:
		return "music"
	default:
		return "unknown"
	}
}

// MediaCategory marshals as its string form.
func (c MediaCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *MediaCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "video":
		*c = CategoryVideo
	case "printed-media":
		*c = CategoryPrintedMedia
	case "game":
		*c = CategoryGame
	case "music":
		*c = CategoryMusic
	default:
		*c = CategoryUnknown
	}
	return nil
}

// RecStatus is the best/alternate recommendation attached to a record by an
// external curation collaborator.
type RecStatus int

const (
	RecNone RecStatus = iota
	RecAlt
	RecBest
)

func (r RecStatus) String() string {
	switch r {
	case RecBest:
		return "best"
	case RecAlt:
		return "alt"
	default:
		return "none"
	}
}

func (r RecStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RecStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "best":
		*r = RecBest
	case "alt":
		*r = RecAlt
	default:
		*r = RecNone
	}
	return nil
}

// VideoInfo holds the video-category fields of a record.
type VideoInfo struct {
	Format        string `json:"format,omitempty"`
	Container     string `json:"container,omitempty"`
	Codec         string `json:"codec,omitempty"`
	Resolution    string `json:"resolution,omitempty"`
	AspectRatio   string `json:"aspectRatio,omitempty"`
	Audio         string `json:"audio,omitempty"`
	AudioChannels string `json:"audioChannels,omitempty"`
	DualAudio     bool   `json:"dualAudio,omitempty"`
	Region        string `json:"region,omitempty"`
	Subtitles     string `json:"subtitles,omitempty"`
}

// PrintedInfo holds the printed-media fields of a record.
type PrintedInfo struct {
	Type       string `json:"type,omitempty"`
	Translator string `json:"translator,omitempty"`
	Digital    bool   `json:"digital,omitempty"`
	Format     string `json:"format,omitempty"`
	Ongoing    bool   `json:"ongoing,omitempty"`
}

// GameInfo holds the game fields of a record.
type GameInfo struct {
	Type     string `json:"type,omitempty"`
	Platform string `json:"platform,omitempty"`
	Region   string `json:"region,omitempty"`
	Archived bool   `json:"archived,omitempty"`
}

// MusicInfo holds the music fields of a record.
type MusicInfo struct {
	Codec   string `json:"codec,omitempty"`
	Bitrate string `json:"bitrate,omitempty"`
	Media   string `json:"media,omitempty"`
	Log     bool   `json:"log,omitempty"`
	Cue     bool   `json:"cue,omitempty"`
}

// Record is the parsed form of one leaf row. Counters are kept as display
// strings; the sort engine parses them on demand. Exactly one of the
// category field sets (Video, Printed, Game, Music) is non-nil.
type Record struct {
	ID        string        `json:"id"`
	GroupID   string        `json:"groupId,omitempty"`
	SectionID string        `json:"sectionId,omitempty"`
	Category  MediaCategory `json:"category"`

	// Group is the release group for video (extracted from a parenthetical
	// suffix) or the published-work display group for printed media (taken
	// from the owning section title).
	Group string `json:"group,omitempty"`

	Size     string `json:"size,omitempty"`
	Snatches string `json:"snatches,omitempty"`
	Seeders  string `json:"seeders,omitempty"`
	Leechers string `json:"leechers,omitempty"`

	// Flags are opaque badge/icon fragments, passed through verbatim.
	Flags     []string  `json:"flags,omitempty"`
	Freeleech bool      `json:"freeleech,omitempty"`
	Rec       RecStatus `json:"rec,omitempty"`

	// Details is the row's raw content blob, stored verbatim and never parsed.
	Details string `json:"-"`

	Video   *VideoInfo   `json:"video,omitempty"`
	Printed *PrintedInfo `json:"printed,omitempty"`
	Game    *GameInfo    `json:"game,omitempty"`
	Music   *MusicInfo   `json:"music,omitempty"`
}

// Classify tokenizes the descriptor and populates rec's category fields.
// It never fails: unrecognized tokens are ignored or fall back to the least
// specific applicable field.
func Classify(category MediaCategory, desc string, rec *Record) {
	tokens := Tokenize(desc, Delimiter(category))
	switch category {
	case CategoryPrintedMedia:
		classifyPrinted(tokens, rec)
	case CategoryGame:
		classifyGame(tokens, rec)
	case CategoryMusic:
		classifyMusic(tokens, rec)
	default:
		classifyVideo(tokens, rec)
	}
}
