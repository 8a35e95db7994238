// Package display renders repository statistics for humans and machines.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"toolbelt/helpers"
	"toolbelt/model"
	"toolbelt/stats"
)

// NoRepositoriesMessage is printed instead of the table when nothing matched.
const NoRepositoriesMessage = "No repositories found."

const (
	nameWidth     = 28
	starsWidth    = 10
	languageWidth = 15
)

// Table writes the header, the ranked table and the summary block.
func Table(w io.Writer, account string, result stats.Result) error {
	p := &printer{w: w}

	p.printf("\n%s\n", helpers.Bold(account))
	p.printf("%s\n", strings.Repeat("=", len(account)))

	if result.Matched == 0 {
		p.printf("\n%s\n", NoRepositoriesMessage)
		return p.err
	}

	p.printf(
		"Public repos: %d (showing top %d by %s)\n\n",
		result.Matched, len(result.Displayed), result.Sort,
	)

	p.printf("  %-*s %-*s %-*s\n", nameWidth, "Repository", starsWidth, "Stars", languageWidth, "Language")
	p.printf("  %s\n", strings.Repeat("-", nameWidth+starsWidth+languageWidth+2))
	for _, repo := range result.Displayed {
		p.printf("  %-*s %-*d %-*s\n", nameWidth, repo.Name, starsWidth, repo.Stars, languageWidth, repo.LanguageOrNone())
	}

	summary := result.Summary
	p.printf("\n%s\n", helpers.Bold("Summary:"))
	p.printf("  Total stars:  %s\n", helpers.Accent(humanize.Comma(int64(summary.TotalStars))))
	if langs := FormatLanguages(summary.TopLanguages); langs != "" {
		p.printf("  Languages:    %s\n", langs)
	}
	if top := summary.MostStarred; top != nil {
		p.printf("  Most starred: %s (%s stars)\n", top.Name, humanize.Comma(int64(top.Stars)))
	}

	return p.err
}

// FormatLanguages renders a language tally as "Go (3), Rust (1)".
func FormatLanguages(langs []stats.LanguageCount) string {
	parts := make([]string, len(langs))
	for i, l := range langs {
		parts[i] = fmt.Sprintf("%s (%d)", l.Language, l.Count)
	}
	return strings.Join(parts, ", ")
}

// printer remembers the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Report is the machine-readable form of a stats.Result.
type Report struct {
	Account      string                `json:"account" yaml:"account"`
	Sort         stats.SortKey         `json:"sort" yaml:"sort"`
	Language     string                `json:"language,omitempty" yaml:"language,omitempty"`
	Matched      int                   `json:"matched" yaml:"matched"`
	Repositories []model.Repository    `json:"repositories" yaml:"repositories"`
	TotalStars   uint                  `json:"total_stars" yaml:"total_stars"`
	TopLanguages []stats.LanguageCount `json:"top_languages" yaml:"top_languages"`
	MostStarred  *model.Repository     `json:"most_starred,omitempty" yaml:"most_starred,omitempty"`
}

func NewReport(account, language string, result stats.Result) Report {
	repos := result.Displayed
	if repos == nil {
		repos = []model.Repository{}
	}
	langs := result.Summary.TopLanguages
	if langs == nil {
		langs = []stats.LanguageCount{}
	}
	return Report{
		Account:      account,
		Sort:         result.Sort,
		Language:     language,
		Matched:      result.Matched,
		Repositories: repos,
		TotalStars:   result.Summary.TotalStars,
		TopLanguages: langs,
		MostStarred:  result.Summary.MostStarred,
	}
}
