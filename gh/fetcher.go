package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	"toolbelt/model"
)

// PageSize is the number of repositories requested per page (the API maximum).
const PageSize = 100

// FetchOptions holds optional hooks for FetchRepos.
type FetchOptions struct {
	// OnPage is called after every non-empty page with the page number and the
	// number of records it contained.
	OnPage func(page, count int)
}

// FetchRepos returns every repository owned by account, following pagination
// until the API returns an empty page. Pages are requested one at a time,
// sorted by star count descending. Any failure aborts the whole fetch.
func (c *Client) FetchRepos(ctx context.Context, account string, opts FetchOptions) ([]model.Repository, error) {
	var repos []model.Repository

	for page := 1; ; page++ {
		batch, err := c.fetchReposPage(ctx, account, page)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			logrus.WithFields(logrus.Fields{
				"account": account,
				"pages":   page - 1,
				"repos":   len(repos),
			}).Debug("pagination complete")
			break
		}
		if c.maxPages > 0 && page > c.maxPages {
			return nil, errors.WithStack(&PageLimitError{Account: account, MaxPages: c.maxPages})
		}

		repos = append(repos, batch...)
		if opts.OnPage != nil {
			opts.OnPage(page, len(batch))
		}
	}

	return repos, nil
}

func (c *Client) fetchReposPage(ctx context.Context, account string, page int) ([]model.Repository, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(PageSize))
	query.Set("page", strconv.Itoa(page))
	query.Set("sort", "stars")
	query.Set("direction", "desc")

	status, body, err := c.get(ctx, fmt.Sprintf("/users/%s/repos", url.PathEscape(account)), query)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, errors.WithStack(&NotFoundError{Account: account})
	case status < 200 || status >= 300:
		return nil, errors.WithStack(&StatusError{StatusCode: status, Body: string(body)})
	}

	var repos []model.Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, errors.WrapIff(err, "failed to parse response for page %d", page)
	}
	return repos, nil
}
