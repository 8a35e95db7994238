package gh

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// API configuration.
const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultUserAgent = "toolbelt-github-stats"
	AcceptHeader     = "application/vnd.github+json"
	APIVersion       = "2022-11-28"
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	// MaxPages caps pagination. Zero or negative disables the cap.
	MaxPages int
}

// Client issues unauthenticated requests against the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxPages   int
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxPages:   opts.MaxPages,
	}
}

// get makes a GET request to endpoint (e.g., /users/:account/repos) and
// returns the status code and the full response body. Non-2xx statuses are not
// treated as errors here; that is up to the caller.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (int, []byte, error) {
	if endpoint == "" || endpoint[0] != '/' {
		return 0, nil, errors.Errorf("malformed REST endpoint %q", endpoint)
	}

	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	log := logrus.WithField("url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create request")
	}
	setAPIHeaders(req, c.userAgent)

	log.Debug("executing GitHub API request...")
	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to read response body")
	}

	log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(startTime),
	}).Debug("GitHub API request completed")

	return resp.StatusCode, body, nil
}

// setAPIHeaders sets the standard GitHub API headers on a request.
func setAPIHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
}
