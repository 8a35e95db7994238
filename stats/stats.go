// Package stats filters, orders and summarizes an account's repositories.
package stats

import (
	"cmp"
	"slices"
	"strings"

	"toolbelt/model"
)

// TopLanguagesCount is the number of languages reported in a Summary.
const TopLanguagesCount = 5

type SortKey string

const (
	SortStars SortKey = "stars"
	SortName  SortKey = "name"
)

// ParseSortKey maps user input to a SortKey. Unrecognized values sort by stars.
func ParseSortKey(s string) SortKey {
	switch SortKey(Normalize(strings.TrimSpace(s))) {
	case SortName:
		return SortName
	default:
		return SortStars
	}
}

// Normalize is the single case-folding used for every case-insensitive
// comparison in this package.
func Normalize(s string) string {
	return strings.ToLower(s)
}

type Options struct {
	// Limit is the maximum number of repositories to display.
	Limit int
	Sort  SortKey
	// Language, when non-empty, keeps only repositories in that language.
	Language string
}

type LanguageCount struct {
	Language string `json:"language" yaml:"language"`
	Count    int    `json:"count" yaml:"count"`
}

type Summary struct {
	TotalStars   uint
	Languages    map[string]int
	TopLanguages []LanguageCount
	// MostStarred is nil when no repository matched.
	MostStarred *model.Repository
}

type Result struct {
	// Displayed is the sorted, truncated selection.
	Displayed []model.Repository
	// Matched is the size of the filtered set before truncation.
	Matched int
	Sort    SortKey
	Summary Summary
}

// Run drops forks, applies the language filter, sorts, truncates to
// opts.Limit and summarizes the full filtered set.
func Run(repos []model.Repository, opts Options) Result {
	filtered := FilterLanguage(WithoutForks(repos), opts.Language)
	sortKey := ParseSortKey(string(opts.Sort))
	sorted := Sort(filtered, sortKey)

	return Result{
		Displayed: Truncate(sorted, opts.Limit),
		Matched:   len(filtered),
		Sort:      sortKey,
		Summary:   Summarize(filtered),
	}
}

// WithoutForks returns the repositories that are not forks, in input order.
func WithoutForks(repos []model.Repository) []model.Repository {
	out := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			out = append(out, r)
		}
	}
	return out
}

// FilterLanguage keeps repositories whose language equals language, ignoring
// case. Repositories without a language never match. An empty language keeps
// everything.
func FilterLanguage(repos []model.Repository, language string) []model.Repository {
	if language == "" {
		return repos
	}
	want := Normalize(language)
	out := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r.HasLanguage() && Normalize(*r.Language) == want {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a sorted copy of repos. The sort is stable.
func Sort(repos []model.Repository, key SortKey) []model.Repository {
	sorted := slices.Clone(repos)
	switch key {
	case SortName:
		slices.SortStableFunc(sorted, func(a, b model.Repository) int {
			return strings.Compare(Normalize(a.Name), Normalize(b.Name))
		})
	default:
		slices.SortStableFunc(sorted, func(a, b model.Repository) int {
			return cmp.Compare(b.Stars, a.Stars)
		})
	}
	return sorted
}

// Truncate returns at most limit repositories.
func Truncate(repos []model.Repository, limit int) []model.Repository {
	if limit < 0 {
		limit = 0
	}
	if limit >= len(repos) {
		return repos
	}
	return repos[:limit]
}

// Summarize computes aggregate statistics over repos. The result does not
// depend on the order of repos except for ties in MostStarred, which go to the
// earliest repository.
func Summarize(repos []model.Repository) Summary {
	summary := Summary{Languages: map[string]int{}}

	for i := range repos {
		r := repos[i]
		summary.TotalStars += r.Stars
		if r.HasLanguage() {
			summary.Languages[*r.Language]++
		}
		if summary.MostStarred == nil || r.Stars > summary.MostStarred.Stars {
			summary.MostStarred = &repos[i]
		}
	}

	summary.TopLanguages = topLanguages(summary.Languages, TopLanguagesCount)
	return summary
}

// topLanguages orders languages by count descending, then by name.
func topLanguages(counts map[string]int, n int) []LanguageCount {
	tally := make([]LanguageCount, 0, len(counts))
	for lang, count := range counts {
		tally = append(tally, LanguageCount{Language: lang, Count: count})
	}
	slices.SortFunc(tally, func(a, b LanguageCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Language, b.Language)
	})
	if len(tally) > n {
		tally = tally[:n]
	}
	return tally
}
