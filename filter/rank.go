// Package filter provides scored fuzzy matching over string lists and
// an interactive filter prompt built on top of it.
package filter

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Match is a single ranked result.
type Match struct {
	Str          string // the matched item
	Index        int    // position in the items slice passed to Rank
	MatchedRunes []int  // rune offsets that matched the pattern
	Score        int
}

// Rank scores items against pattern and returns the matches ordered
// best first; ties keep input order. An empty pattern matches every
// item in input order with zero score.
func Rank(pattern string, items []string) []Match {
	if pattern == "" {
		matches := make([]Match, len(items))
		for i, item := range items {
			matches[i] = Match{Str: item, Index: i}
		}
		return matches
	}

	found := fuzzy.Find(pattern, items)

	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{
			Str:          m.Str,
			Index:        m.Index,
			MatchedRunes: m.MatchedIndexes,
			Score:        m.Score,
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})
	return matches
}

// Highlight renders a match with its matched runes in the matched
// style and everything else in the unmatched style.
func Highlight(m Match, matched, unmatched lipgloss.Style) string {
	if len(m.MatchedRunes) == 0 {
		return unmatched.Render(m.Str)
	}
	return lipgloss.StyleRunes(m.Str, m.MatchedRunes, matched, unmatched)
}
