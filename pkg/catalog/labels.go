package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// LabelService wraps the label/ endpoints.
type LabelService struct {
	c *client.Client
}

// LabelOptions selects a label and optional embedded extras.
type LabelOptions struct {
	Ref
	// Extras selects embedded extra sections: biography, websites, artists,
	// last_releases, relations.
	Extras []string `url:"extras,comma,omitempty"`
	// ExtrasLimit bounds iterable extras.
	ExtrasLimit int `url:"extras_limit,omitempty"`
}

// LabelBiographyOptions selects a label biography rendition.
type LabelBiographyOptions struct {
	Ref
	// HTMLFormat requests HTML markup in the biography text.
	HTMLFormat bool `url:"-"`
	// URLScheme sets the urlencoded links format.
	URLScheme string `url:"url_scheme,omitempty"`
}

// LabelReleasesOptions filters a label's releases.
type LabelReleasesOptions struct {
	Ref
	// Format filters by release format (album|single|live|all).
	Format string `url:"format,omitempty"`
}

// Get retrieves one label.
func (s *LabelService) Get(ctx context.Context, opts LabelOptions) (client.Record, error) {
	return s.c.GetObject(ctx, "label/", optionParams(opts))
}

// Artists returns a paginating sequence over a label's artists.
func (s *LabelService) Artists(ref Ref, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "label/artists/", optionParams(ref), opts...)
}

// Biography retrieves a label's biography.
func (s *LabelService) Biography(ctx context.Context, opts LabelBiographyOptions) (client.Record, error) {
	params := optionParams(opts)
	if opts.HTMLFormat {
		params.Set("format", "html")
	}
	return s.c.GetObject(ctx, "label/biography/", params)
}

// Releases returns a paginating sequence over a label's releases.
func (s *LabelService) Releases(opts LabelReleasesOptions, pageOpts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "label/releases/", optionParams(opts), pageOpts...)
}

// Similar returns a paginating sequence over similar labels.
func (s *LabelService) Similar(ref Ref, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "label/similars/", optionParams(ref), opts...)
}

// Websites retrieves a label's websites.
func (s *LabelService) Websites(ctx context.Context, ref Ref) ([]client.Record, error) {
	return s.c.GetList(ctx, "label/websites/", optionParams(ref))
}
