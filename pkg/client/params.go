package client

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// Params holds the query parameters for a single request. Absent values are
// omitted entirely, never sent as empty strings; list values are serialized
// comma-joined; booleans as the literal strings "true"/"false".
//
// A Params value is built fresh per request and is not shared between
// requests. The zero value is not usable; use NewParams.
type Params struct {
	values url.Values
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// ParamsFrom encodes a struct tagged with `url:"..."` field tags into a
// parameter set. Optional fields use `omitempty` so absent values never reach
// the wire; list fields use the `comma` option for comma-joined serialization.
func ParamsFrom(opts any) (*Params, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	return &Params{values: values}, nil
}

// Set sets a string parameter. Empty values are omitted.
func (p *Params) Set(key, value string) *Params {
	if value != "" {
		p.values.Set(key, value)
	}
	return p
}

// SetInt sets an integer parameter. Zero is a meaningful value (offsets) and
// is always sent.
func (p *Params) SetInt(key string, value int) *Params {
	p.values.Set(key, strconv.Itoa(value))
	return p
}

// SetBool sets a boolean parameter as "true" or "false".
func (p *Params) SetBool(key string, value bool) *Params {
	p.values.Set(key, strconv.FormatBool(value))
	return p
}

// SetList sets a comma-joined list parameter. Empty lists are omitted.
func (p *Params) SetList(key string, values []string) *Params {
	if len(values) > 0 {
		p.values.Set(key, strings.Join(values, ","))
	}
	return p
}

// Clone returns an independent copy. Pagers clone their base parameters so
// the caller's set is never mutated by cursor advancement.
func (p *Params) Clone() *Params {
	if p == nil {
		return NewParams()
	}
	clone := url.Values{}
	for key, vals := range p.values {
		clone[key] = append([]string(nil), vals...)
	}
	return &Params{values: clone}
}

// Get returns the current value for a key, or "" when unset.
func (p *Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.values.Get(key)
}

// Has reports whether a key is present.
func (p *Params) Has(key string) bool {
	return p != nil && p.values.Has(key)
}

// Encode returns the URL-encoded query string in sorted key order.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}
	return p.values.Encode()
}
