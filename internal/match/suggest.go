package match

import (
	"sort"
)

// MinSuggestionScore is the lowest similarity reported as a suggestion.
const MinSuggestionScore = 0.6

// Suggestion is a declared name ranked against an unresolved token.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every name against token, best first. Ties keep the order of
// names.
func Rank(token string, names []string) []Suggestion {
	out := make([]Suggestion, 0, len(names))
	for _, name := range names {
		out = append(out, Suggestion{Name: name, Score: NormalizedLevenshteinScore(token, name)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Suggest returns up to limit names at least MinSuggestionScore similar to
// token, best first.
func Suggest(token string, names []string, limit int) []string {
	var out []string

	for _, s := range Rank(token, names) {
		if len(out) == limit || s.Score < MinSuggestionScore {
			break
		}

		out = append(out, s.Name)
	}

	return out
}
