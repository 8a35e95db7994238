package display_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"toolbelt/display"
	"toolbelt/helpers"
	"toolbelt/model"
	"toolbelt/stats"
)

func TestMain(m *testing.M) {
	helpers.SetColorEnabled(false)
	os.Exit(m.Run())
}

func lang(s string) *string { return &s }

func sampleRepos() []model.Repository {
	return []model.Repository{
		{Name: "ten", Stars: 10, Language: lang("Go")},
		{Name: "fifty", Stars: 50, Language: lang("Rust")},
		{Name: "five", Stars: 5},
		{Name: "forked", Stars: 1000, Language: lang("C"), Fork: true},
	}
}

func TestTable(t *testing.T) {
	result := stats.Run(sampleRepos(), stats.Options{Limit: 2, Sort: stats.SortStars})

	var buf bytes.Buffer
	require.NoError(t, display.Table(&buf, "octocat", result))

	expected := strings.Join([]string{
		"",
		"octocat",
		"=======",
		"Public repos: 3 (showing top 2 by stars)",
		"",
		"  Repository                   Stars      Language       ",
		"  -----------------------------------------------------",
		"  fifty                        50         Rust           ",
		"  ten                          10         Go             ",
		"",
		"Summary:",
		"  Total stars:  65",
		"  Languages:    Go (1), Rust (1)",
		"  Most starred: fifty (50 stars)",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestTableMissingLanguagePlaceholder(t *testing.T) {
	result := stats.Run([]model.Repository{{Name: "plain", Stars: 1}}, stats.Options{Limit: 10})

	var buf bytes.Buffer
	require.NoError(t, display.Table(&buf, "octocat", result))

	assert.Contains(t, buf.String(), "(none)")
	assert.NotContains(t, buf.String(), "Languages:", "no language line without known languages")
}

func TestTableNoRepositories(t *testing.T) {
	result := stats.Run(sampleRepos(), stats.Options{Limit: 10, Language: "Zig"})

	var buf bytes.Buffer
	require.NoError(t, display.Table(&buf, "octocat", result))

	assert.Equal(t, "\noctocat\n=======\n\nNo repositories found.\n", buf.String())
}

func TestTableLargeNumbers(t *testing.T) {
	result := stats.Run([]model.Repository{{Name: "huge", Stars: 1234567}}, stats.Options{Limit: 10})

	var buf bytes.Buffer
	require.NoError(t, display.Table(&buf, "octocat", result))
	assert.Contains(t, buf.String(), "Total stars:  1,234,567")
	assert.Contains(t, buf.String(), "Most starred: huge (1,234,567 stars)")
}

func TestFormatLanguages(t *testing.T) {
	assert.Equal(t, "", display.FormatLanguages(nil))
	assert.Equal(t, "Go (3), Rust (1)", display.FormatLanguages([]stats.LanguageCount{
		{Language: "Go", Count: 3},
		{Language: "Rust", Count: 1},
	}))
}

func TestJSONReport(t *testing.T) {
	result := stats.Run(sampleRepos(), stats.Options{Limit: 1, Sort: stats.SortStars})

	var buf bytes.Buffer
	require.NoError(t, display.Write(&buf, display.FormatJSON, "octocat", "", result))

	var report map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "octocat", report["account"])
	assert.Equal(t, float64(65), report["total_stars"])
	assert.Equal(t, float64(3), report["matched"])
	assert.Len(t, report["repositories"], 1)
	assert.NotContains(t, report, "language")
}

func TestJSONReportEmpty(t *testing.T) {
	result := stats.Run(nil, stats.Options{Limit: 10, Language: "Zig"})

	var buf bytes.Buffer
	require.NoError(t, display.Write(&buf, display.FormatJSON, "octocat", "Zig", result))
	assert.Contains(t, buf.String(), `"repositories": []`)
	assert.NotContains(t, buf.String(), "most_starred")
}

func TestYAMLReport(t *testing.T) {
	result := stats.Run(sampleRepos(), stats.Options{Limit: 5, Sort: stats.SortName, Language: "go"})

	var buf bytes.Buffer
	require.NoError(t, display.Write(&buf, display.FormatYAML, "octocat", "go", result))

	var report display.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "octocat", report.Account)
	assert.Equal(t, stats.SortName, report.Sort)
	assert.Equal(t, "go", report.Language)
	require.Len(t, report.Repositories, 1)
	assert.Equal(t, "ten", report.Repositories[0].Name)
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]display.Format{
		"table": display.FormatTable,
		"JSON":  display.FormatJSON,
		"yaml":  display.FormatYAML,
		"yml":   display.FormatYAML,
	} {
		got, err := display.ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := display.ParseFormat("csv")
	assert.Error(t, err)
}
