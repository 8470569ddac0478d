package catalog

import (
	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// SearchService wraps the search/ endpoints.
type SearchService struct {
	c *client.Client
}

// SearchOptions configures an entity search.
type SearchOptions struct {
	// Filters restricts results. Availability depends on the entity:
	// artists take location, tag, type; labels location, tag; releases
	// artist, tag, format_summary, year, location; tracks artist, release,
	// format_summary, year, location.
	Filters []string `url:"filters,comma,omitempty"`
	// Autocomplete enables predictive search.
	Autocomplete bool `url:"autocomplete"`
	// Extras asks the API to wrap pages in a {results, total} envelope so
	// the sequence can report its total count. Without it, Total fails
	// with a configuration error.
	Extras bool `url:"-"`
}

// DefaultSearchOptions enables extras, matching the common case of wanting
// the total count alongside results.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Extras: true}
}

// CitySearchOptions configures a city search by query or geolocation.
type CitySearchOptions struct {
	// Autocomplete enables predictive search.
	Autocomplete bool `url:"autocomplete"`
	// Latitude of the city.
	Latitude float64 `url:"latitude,omitempty"`
	// Longitude of the city.
	Longitude float64 `url:"longitude,omitempty"`
}

// searchPager builds the shared search sequence.
func (s *SearchService) searchPager(endpoint, query string, opts SearchOptions, pageOpts []pagination.Option) *pagination.SearchPager {
	params := optionParams(opts)
	params.Set("query", query)
	return pagination.NewSearch(s.c, endpoint, params, opts.Extras, pageOpts...)
}

// Artists searches artists by query and filters.
func (s *SearchService) Artists(query string, opts SearchOptions, pageOpts ...pagination.Option) *pagination.SearchPager {
	return s.searchPager("search/artist/", query, opts, pageOpts)
}

// Labels searches labels by query and filters.
func (s *SearchService) Labels(query string, opts SearchOptions, pageOpts ...pagination.Option) *pagination.SearchPager {
	return s.searchPager("search/label/", query, opts, pageOpts)
}

// Releases searches releases by query and filters.
func (s *SearchService) Releases(query string, opts SearchOptions, pageOpts ...pagination.Option) *pagination.SearchPager {
	return s.searchPager("search/release/", query, opts, pageOpts)
}

// Tracks searches tracks by query and filters.
func (s *SearchService) Tracks(query string, opts SearchOptions, pageOpts ...pagination.Option) *pagination.SearchPager {
	return s.searchPager("search/track/", query, opts, pageOpts)
}

// Cities searches cities by query or geolocation.
func (s *SearchService) Cities(query string, opts CitySearchOptions, pageOpts ...pagination.Option) *pagination.Pager {
	params := optionParams(opts)
	params.Set("query", query)
	return pagination.New(s.c, "search/city/", params, pageOpts...)
}

// Countries searches countries by country code.
func (s *SearchService) Countries(countryCode string, pageOpts ...pagination.Option) *pagination.Pager {
	params := client.NewParams().Set("country_code", countryCode)
	return pagination.New(s.c, "search/country/", params, pageOpts...)
}
