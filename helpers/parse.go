package helpers

import (
	"net/url"
	"regexp"
	"strings"

	"emperror.dev/errors"
)

// GitHub handles are alphanumeric with single inner hyphens, at most 39 chars.
var handleRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)

// ParseAccount accepts a bare handle, an @handle or a github.com profile URL
// and returns the account handle.
func ParseAccount(input string) (string, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "@")

	if strings.Contains(s, "/") {
		handle, err := parseProfileURL(s)
		if err != nil {
			return "", err
		}
		s = handle
	}

	if !handleRegex.MatchString(s) {
		return "", errors.Errorf("invalid GitHub account: %q", input)
	}
	return s, nil
}

func parseProfileURL(s string) (string, error) {
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	parsedURL, err := url.Parse(s)
	if err != nil {
		return "", errors.Errorf("invalid URL: %s", s)
	}

	host := strings.ToLower(parsedURL.Host)
	if host != "github.com" && host != "www.github.com" {
		return "", errors.Errorf("unsupported host: %s\nSupported: github.com", host)
	}

	parts := strings.Split(strings.Trim(parsedURL.Path, "/"), "/")
	if len(parts) != 1 || parts[0] == "" {
		return "", errors.Errorf(
			"invalid GitHub profile URL: %s\nExpected format: https://github.com/<account>",
			s,
		)
	}
	return parts[0], nil
}
