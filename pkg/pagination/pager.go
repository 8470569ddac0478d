package pagination

import (
	"context"
	"encoding/json"
	"errors"
	"iter"

	"github.com/rs/zerolog/log"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// Done signals the permanent end of a sequence. Once returned, no further
// requests are issued, even if the pager is probed again.
var Done = errors.New("pagination: no more results")

// DefaultPageSize is the page size requested when none is configured.
const DefaultPageSize = 10

// Fetcher is the interface the Blitzr client implements for single-page
// fetching. Each call is one complete, independent request/response exchange.
type Fetcher interface {
	FetchPage(ctx context.Context, endpoint string, params *client.Params) (json.RawMessage, error)
}

// Option configures a pager at construction time.
type Option func(*Pager)

// WithOffset sets the start index of the first page request.
func WithOffset(offset int) Option {
	return func(p *Pager) {
		if offset >= 0 {
			p.offset = offset
		}
	}
}

// WithPageSize sets the requested page size, fixed for the pager's lifetime.
// Values below 1 fall back to DefaultPageSize.
func WithPageSize(size int) Option {
	return func(p *Pager) {
		if size >= 1 {
			p.limit = size
		}
	}
}

// Pager is a lazy, forward-only sequence of records built on successive page
// requests. It is stateful and single-pass: the cursor only advances, and a
// consumed pager cannot be restarted. Pagers are not safe for concurrent use;
// independent pagers share nothing but the underlying client.
type Pager struct {
	fetcher  Fetcher
	endpoint string
	base     *client.Params

	// decodePage turns a raw response into one page of records. The search
	// specialization swaps this to unwrap the {results, total} envelope.
	decodePage func(json.RawMessage) ([]client.Record, error)

	offset    int // next start index to request
	limit     int // requested page size
	page      []client.Record
	pos       int // index into page
	fetched   bool
	exhausted bool
}

// New creates a pager for an endpoint. The base parameters hold the fixed
// filter and identifier fields; they are copied, so later mutation of the
// caller's set never leaks into the cursor.
func New(fetcher Fetcher, endpoint string, base *client.Params, opts ...Option) *Pager {
	p := &Pager{
		fetcher:    fetcher,
		endpoint:   endpoint,
		base:       base.Clone(),
		decodePage: decodeRecords,
		limit:      DefaultPageSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next produces the next record, fetching a new page when the current one has
// been fully consumed. It returns Done once a short page has been exhausted;
// after that no further requests are issued.
func (p *Pager) Next(ctx context.Context) (client.Record, error) {
	if p.exhausted {
		return nil, Done
	}

	// A fresh pager has no page yet; otherwise a new fetch is due only after
	// exactly limit records were consumed from the current page.
	if !p.fetched || p.pos == p.limit {
		if err := p.fetch(ctx); err != nil {
			return nil, err
		}
	}

	if p.pos < len(p.page) {
		record := p.page[p.pos]
		p.pos++
		return record, nil
	}

	// Cursor at or beyond the actual page length: the previous fetch came
	// back short, the dataset is exhausted.
	p.exhausted = true
	return nil, Done
}

// All returns an iterator over the remaining records. Iteration stops at the
// end of the dataset or at the first error, whichever comes first.
func (p *Pager) All(ctx context.Context) iter.Seq2[client.Record, error] {
	return func(yield func(client.Record, error) bool) {
		for {
			record, err := p.Next(ctx)
			if errors.Is(err, Done) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// Collect drains the remaining records into a slice.
func (p *Pager) Collect(ctx context.Context) ([]client.Record, error) {
	var records []client.Record
	for {
		record, err := p.Next(ctx)
		if errors.Is(err, Done) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}

// fetch requests the next page and resets the in-page cursor. The running
// offset advances by the requested limit regardless of how many records the
// page actually contained; a short page ends the sequence via the cursor
// bound check in Next, not here.
func (p *Pager) fetch(ctx context.Context) error {
	params := p.base.Clone()
	params.SetInt("start", p.offset)
	params.SetInt("limit", p.limit)

	raw, err := p.fetcher.FetchPage(ctx, p.endpoint, params)
	if err != nil {
		return err
	}

	page, err := p.decodePage(raw)
	if err != nil {
		return err
	}

	log.Debug().
		Str("endpoint", p.endpoint).
		Int("start", p.offset).
		Int("limit", p.limit).
		Int("records", len(page)).
		Msg("Fetched page")

	p.page = page
	p.pos = 0
	p.fetched = true
	p.offset += p.limit
	return nil
}

// decodeRecords decodes a bare JSON array of records.
func decodeRecords(raw json.RawMessage) ([]client.Record, error) {
	var records []client.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}
