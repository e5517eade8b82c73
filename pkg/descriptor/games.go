package descriptor

import "strings"

// classifyGame handles game descriptors, e.g. "Game | PC | Region Free | Archived".
func classifyGame(tokens []string, rec *Record) {
	g := &GameInfo{}
	rec.Category = CategoryGame
	rec.Game = g

	for _, tok := range tokens {
		switch {
		case strings.EqualFold(tok, "Archived"):
			g.Archived = true

		case matchVocab(gameTypes, tok) != "":
			g.Type = matchVocab(gameTypes, tok)

		case matchVocab(gamePlatforms, tok) != "":
			g.Platform = matchVocab(gamePlatforms, tok)

		case matchVocab(gameRegions, tok) != "":
			g.Region = matchVocab(gameRegions, tok)
		}
	}
}
