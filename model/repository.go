package model

// NoneLabel is rendered in place of an absent optional field.
const NoneLabel = "(none)"

// Repository is a repository summary as returned by the GitHub REST API.
type Repository struct {
	Name        string  `json:"name" yaml:"name"`
	Stars       uint    `json:"stargazers_count" yaml:"stars"`
	Language    *string `json:"language" yaml:"language,omitempty"`
	Description *string `json:"description" yaml:"description,omitempty"`
	Fork        bool    `json:"fork" yaml:"fork"`
	URL         string  `json:"html_url" yaml:"url"`
}

// HasLanguage reports whether GitHub detected a primary language.
func (r Repository) HasLanguage() bool {
	return r.Language != nil && *r.Language != ""
}

// LanguageOrNone returns the repository language or NoneLabel.
func (r Repository) LanguageOrNone() string {
	if !r.HasLanguage() {
		return NoneLabel
	}
	return *r.Language
}
