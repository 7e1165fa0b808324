package hensei

import (
	"context"
	"net/http"

	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
)

// paginationLimit bounds how many search pages are read regardless of
// what the service reports, to keep worst-case latency bounded.
const paginationLimit = 3

type searchParams struct {
	Query  string       `json:"query"`
	Locale party.Locale `json:"locale"`
	Job    string       `json:"job,omitempty"`
	Page   int          `json:"page,omitempty"`
}

type searchPage struct {
	Meta struct {
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
	Results []SearchHit `json:"results"`
}

func (c *client) Search(ctx context.Context, kind SearchKind, query *SearchQuery) ([]SearchHit, error) {
	if query == nil {
		return nil, errors.InvalidArgument("query is required")
	}

	params := searchParams{
		Query:  query.Query,
		Locale: query.Locale,
		Job:    query.JobID,
	}

	var hits []SearchHit
	pages := 1
	for page := 1; page <= pages; page++ {
		if page > 1 {
			params.Page = page
		}

		var result searchPage
		err := c.do(ctx, http.MethodPost, "search/"+string(kind), map[string]any{"search": params}, &result)
		if err != nil {
			return nil, errors.Wrapf(err, "search %s %q failed", kind, query.Query)
		}

		hits = append(hits, result.Results...)

		if page == 1 {
			pages = min(result.Meta.TotalPages, paginationLimit)
		}
	}

	return hits, nil
}
