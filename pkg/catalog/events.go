package catalog

import (
	"context"
	"time"

	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// EventService wraps the event/ endpoints.
type EventService struct {
	c *client.Client
}

// EventSearchOptions filters the event search.
type EventSearchOptions struct {
	// CountryCode is the official country code. Not compatible with City.
	CountryCode string `url:"country_code,omitempty"`
	// Latitude of a reference geopoint, used together with Radius.
	Latitude float64 `url:"latitude,omitempty"`
	// Longitude of a reference geopoint, used together with Radius.
	Longitude float64 `url:"longitude,omitempty"`
	// City where the event takes place.
	City string `url:"city,omitempty"`
	// Venue where the event takes place.
	Venue string `url:"venue,omitempty"`
	// Tag filter.
	Tag string `url:"tag,omitempty"`
	// DateStart is the minimum date.
	DateStart time.Time `url:"date_start,omitempty"`
	// DateEnd is the maximum date.
	DateEnd time.Time `url:"date_end,omitempty"`
	// Radius is the maximum distance from the reference geopoint, in km.
	Radius int `url:"radius,omitempty"`
}

// Get retrieves one event.
func (s *EventService) Get(ctx context.Context, ref Ref) (client.Record, error) {
	return s.c.GetObject(ctx, "event/", optionParams(ref))
}

// List returns a paginating sequence over events matching the filters.
func (s *EventService) List(opts EventSearchOptions, pageOpts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "events/", optionParams(opts), pageOpts...)
}
