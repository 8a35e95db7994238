// Package wordcount tallies word frequencies in free text.
package wordcount

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// WordCount is a single entry of a frequency ranking.
type WordCount struct {
	Word  string
	Count int
}

// Count splits text on whitespace, lowercases each token and strips
// everything except letters, digits and apostrophes. Tokens that end up
// empty are skipped.
func Count(text string) map[string]int {
	counts := make(map[string]int)
	for _, field := range strings.Fields(text) {
		word := clean(field)
		if word == "" {
			continue
		}
		counts[word]++
	}
	return counts
}

func clean(token string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' {
			return r
		}
		return -1
	}, strings.ToLower(token))
}

// Top returns at most n entries ordered by count descending, then word
// ascending.
func Top(counts map[string]int, n int) []WordCount {
	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(ranked, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})

	if n < 0 {
		n = 0
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Totals returns the total number of words and the number of distinct words.
func Totals(counts map[string]int) (total, unique int) {
	for _, c := range counts {
		total += c
	}
	return total, len(counts)
}
