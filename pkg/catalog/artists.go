package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// ArtistService wraps the artist/ endpoints.
type ArtistService struct {
	c *client.Client
}

// ArtistOptions selects an artist and optional embedded extras.
type ArtistOptions struct {
	Ref
	// Extras selects embedded extra sections: aliases, websites, biography,
	// last_releases, next_events, relations.
	Extras []string `url:"extras,comma,omitempty"`
	// ExtrasLimit bounds iterable extras such as last_releases (max 10).
	ExtrasLimit int `url:"extras_limit,omitempty"`
}

// BiographyOptions selects a biography rendition.
type BiographyOptions struct {
	Ref
	// Lang picks the biography language when available (fr|en).
	Lang string `url:"lang,omitempty"`
	// HTMLFormat requests HTML markup in the biography text.
	HTMLFormat bool `url:"-"`
	// URLScheme sets the urlencoded links format.
	URLScheme string `url:"url_scheme,omitempty"`
}

// ArtistReleasesOptions filters an artist's releases.
type ArtistReleasesOptions struct {
	Ref
	// Type filters by release type (official|unofficial|all).
	Type string `url:"type,omitempty"`
	// Format filters by release format (album|single|live|all).
	Format string `url:"format,omitempty"`
	// Credited selects releases the artist is credited on rather than main
	// releases.
	Credited bool `url:"credited"`
}

// ArtistSimilarOptions filters similar artists.
type ArtistSimilarOptions struct {
	Ref
	// Filters restricts results. Available: location.
	Filters []string `url:"filters,comma,omitempty"`
}

// Get retrieves one artist.
func (s *ArtistService) Get(ctx context.Context, opts ArtistOptions) (client.Record, error) {
	return s.c.GetObject(ctx, "artist/", optionParams(opts))
}

// Aliases retrieves an artist's aliases.
func (s *ArtistService) Aliases(ctx context.Context, ref Ref) ([]client.Record, error) {
	return s.c.GetList(ctx, "artist/aliases/", optionParams(ref))
}

// Bands returns a paginating sequence over the bands an artist is part of.
func (s *ArtistService) Bands(ref Ref, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "artist/bands/", optionParams(ref), opts...)
}

// Biography retrieves an artist's biography.
func (s *ArtistService) Biography(ctx context.Context, opts BiographyOptions) (client.Record, error) {
	params := optionParams(opts)
	if opts.HTMLFormat {
		params.Set("format", "html")
	}
	return s.c.GetObject(ctx, "artist/biography/", params)
}

// Events returns a paginating sequence over an artist's events.
func (s *ArtistService) Events(ref Ref, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "artist/events/", optionParams(ref), opts...)
}

// Members returns a paginating sequence over a band's members.
func (s *ArtistService) Members(ref Ref, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "artist/members/", optionParams(ref), opts...)
}

// Related returns a paginating sequence over related artists.
func (s *ArtistService) Related(ref Ref, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "artist/related/", optionParams(ref), opts...)
}

// Releases returns a paginating sequence over an artist's releases.
func (s *ArtistService) Releases(opts ArtistReleasesOptions, pageOpts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "artist/releases/", optionParams(opts), pageOpts...)
}

// Similar returns a paginating sequence over similar artists.
func (s *ArtistService) Similar(opts ArtistSimilarOptions, pageOpts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "artist/similars/", optionParams(opts), pageOpts...)
}

// Summary retrieves an artist's summary.
func (s *ArtistService) Summary(ctx context.Context, ref Ref) (client.Record, error) {
	return s.c.GetObject(ctx, "artist/summary/", optionParams(ref))
}

// Websites retrieves an artist's websites.
func (s *ArtistService) Websites(ctx context.Context, ref Ref) ([]client.Record, error) {
	return s.c.GetList(ctx, "artist/websites/", optionParams(ref))
}
