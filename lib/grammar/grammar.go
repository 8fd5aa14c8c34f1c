package grammar

import (
	"context"
	"sort"
)

// Match is a single issue reported by a grammar checker. Offset and Length
// are measured in characters (runes) of the checked text; checkers convert
// from whatever unit their service reports.
type Match struct {
	Message      string   `json:"message"`
	RuleID       string   `json:"rule_id"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
}

type Checker interface {
	Check(ctx context.Context, text string) ([]Match, error)
}

// Correct applies the first suggested replacement of every match to text.
// Matches without replacements are ignored, as are matches whose span no longer
// holds the original characters because an earlier replacement overlapped it.
func Correct(text string, matches []Match) string {
	runes := []rune(text)

	applicable := make([]Match, 0, len(matches))
	for _, match := range matches {
		if len(match.Replacements) == 0 || match.Length < 0 {
			continue
		}
		if match.Offset < 0 || match.Offset+match.Length > len(runes) {
			continue
		}
		applicable = append(applicable, match)
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Offset < applicable[j].Offset
	})

	// the characters each match originally covered, so overlaps can be detected
	originals := make([]string, len(applicable))
	for i, match := range applicable {
		originals[i] = string(runes[match.Offset : match.Offset+match.Length])
	}

	shift := 0
	for i, match := range applicable {
		from, to := match.Offset+shift, match.Offset+match.Length+shift
		if from < 0 || to > len(runes) || string(runes[from:to]) != originals[i] {
			continue
		}
		replacement := []rune(match.Replacements[0])

		corrected := make([]rune, 0, len(runes)+len(replacement)-match.Length)
		corrected = append(corrected, runes[:from]...)
		corrected = append(corrected, replacement...)
		corrected = append(corrected, runes[to:]...)
		runes = corrected

		shift += len(replacement) - match.Length
	}

	return string(runes)
}
