package gh

import (
	"fmt"
	"net/http"
	"strings"
)

// NotFoundError is returned when the account does not exist (HTTP 404).
type NotFoundError struct {
	Account string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Account)
}

// StatusError is returned for any other non-success HTTP status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = "unknown error"
	}
	return fmt.Sprintf("GitHub API error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), body)
}

// PageLimitError is returned when the API keeps returning non-empty pages past
// the configured maximum.
type PageLimitError struct {
	Account  string
	MaxPages int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf(
		"repository listing for %q did not end after %d pages (raise github.max_pages if this is expected)",
		e.Account, e.MaxPages,
	)
}
