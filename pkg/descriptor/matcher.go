package descriptor

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var sequenceNumberRegex = regexp.MustCompile(`\b(\d+)\b`)

// MatchConfidence buckets a fuzzy match score.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // score < 0.70
	ConfidenceLow                           // score >= 0.70
	ConfidenceMedium                        // score >= 0.85
	ConfidenceHigh                          // score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of matching a title against candidates.
type MatchResult struct {
	Title      string
	Score      float64
	Confidence MatchConfidence
}

// MatchTitle finds the best candidate for a split title. Jaro-Winkler
// similarity favors shared prefixes, which suits media titles; a small
// bonus/penalty is applied when sequence numbers ("Title 2") agree or
// disagree between the two sides.
func MatchTitle(title string, candidates []string) MatchResult {
	if len(candidates) == 0 {
		return MatchResult{Confidence: ConfidenceNone}
	}

	cleaned := CleanTitle(title)
	numbers := sequenceNumbers(cleaned)

	best := MatchResult{}
	for _, candidate := range candidates {
		cleanedCandidate := CleanTitle(candidate)
		score := float64(edlib.JaroWinklerSimilarity(cleaned, cleanedCandidate))
		score = adjustForSequence(score, numbers, sequenceNumbers(cleanedCandidate))
		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Title = ""
	}
	return best
}

func sequenceNumbers(title string) []string {
	return sequenceNumberRegex.FindAllString(title, -1)
}

// adjustForSequence nudges the similarity score using sequence numbers:
// a shared number earns a bonus, a mismatched or missing one a penalty.
// Titles without numbers are left alone.
func adjustForSequence(score float64, parsed, candidate []string) float64 {
	if len(parsed) == 0 {
		return score
	}
	if len(candidate) == 0 {
		return score * 0.85
	}

	seen := make(map[string]bool, len(candidate))
	for _, n := range candidate {
		seen[n] = true
	}
	for _, n := range parsed {
		if seen[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
