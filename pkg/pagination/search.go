package pagination

import (
	"context"
	"encoding/json"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// ErrTotalUnavailable is returned by SearchPager.Total when the pager was
// built without extras. Without the envelope the API never reports a count;
// this is a deliberate, documented contract, not a transient condition.
var ErrTotalUnavailable = client.NewConfigurationError(
	"extras is disabled, the total number of results is not available")

// envelope is the search-style response shape when extras is enabled.
type envelope struct {
	Results []client.Record `json:"results"`
	Total   int             `json:"total"`
}

// SearchPager is a Pager over a search endpoint. With extras enabled the API
// wraps every page in a {results, total} envelope; the pager unwraps the page
// and memoizes the total the first time it is observed.
type SearchPager struct {
	*Pager

	extras bool

	// Explicit presence flag: a total of zero is a known value, distinct
	// from "no page observed yet".
	total      int
	totalKnown bool
}

// NewSearch creates a pager for a search endpoint. The extras flag is added
// to every page request and controls whether the envelope (and therefore
// Total) is available.
func NewSearch(fetcher Fetcher, endpoint string, base *client.Params, extras bool, opts ...Option) *SearchPager {
	params := base.Clone()
	params.SetBool("extras", extras)

	sp := &SearchPager{
		Pager:  New(fetcher, endpoint, params, opts...),
		extras: extras,
	}
	if extras {
		sp.Pager.decodePage = sp.decodeEnvelope
	}
	return sp
}

// Total returns the total number of results the search matched, across all
// pages. If no page has been fetched yet, exactly one page is fetched to
// learn it; that page then serves as the sequence's initial page, so asking
// for the total before iterating never causes a duplicate first page.
func (sp *SearchPager) Total(ctx context.Context) (int, error) {
	if sp.totalKnown {
		return sp.total, nil
	}
	if !sp.extras {
		return 0, ErrTotalUnavailable
	}
	if err := sp.fetch(ctx); err != nil {
		return 0, err
	}
	return sp.total, nil
}

// decodeEnvelope unwraps the {results, total} envelope and records the total.
func (sp *SearchPager) decodeEnvelope(raw json.RawMessage) ([]client.Record, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if !sp.totalKnown {
		sp.total = env.Total
		sp.totalKnown = true
	}
	return env.Results, nil
}
