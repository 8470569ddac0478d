package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// TagService wraps the tag/ endpoints.
type TagService struct {
	c *client.Client
}

// Get retrieves one tag.
func (s *TagService) Get(ctx context.Context, slug string) (client.Record, error) {
	return s.c.GetObject(ctx, "tag/", client.NewParams().Set("slug", slug))
}

// Artists returns a paginating sequence over a tag's artists.
func (s *TagService) Artists(slug string, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "tag/artists/", client.NewParams().Set("slug", slug), opts...)
}

// Releases returns a paginating sequence over a tag's releases.
func (s *TagService) Releases(slug string, opts ...pagination.Option) *pagination.Pager {
	return pagination.New(s.c, "tag/releases/", client.NewParams().Set("slug", slug), opts...)
}
