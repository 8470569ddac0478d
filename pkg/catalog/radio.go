package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// RadioService wraps the radio/ endpoints: bounded track lists drawn from a
// discography or tag catalog.
type RadioService struct {
	c *client.Client
}

// radioParams builds the common radio parameter set. A non-positive limit
// falls back to the API default.
func radioParams(ref Ref, limit int) *client.Params {
	params := optionParams(ref)
	if limit <= 0 {
		limit = pagination.DefaultPageSize
	}
	params.SetInt("limit", limit)
	return params
}

// Artist retrieves tracks from the given artist's discography.
func (s *RadioService) Artist(ctx context.Context, ref Ref, limit int) ([]client.Record, error) {
	return s.c.GetList(ctx, "radio/artist/", radioParams(ref, limit))
}

// ArtistSimilar retrieves tracks from discographies of similar artists.
func (s *RadioService) ArtistSimilar(ctx context.Context, ref Ref, limit int) ([]client.Record, error) {
	return s.c.GetList(ctx, "radio/artist/similar/", radioParams(ref, limit))
}

// Label retrieves tracks from the given label's discography.
func (s *RadioService) Label(ctx context.Context, ref Ref, limit int) ([]client.Record, error) {
	return s.c.GetList(ctx, "radio/label/", radioParams(ref, limit))
}

// Tag retrieves tracks from the given tag's catalog.
func (s *RadioService) Tag(ctx context.Context, slug string, limit int) ([]client.Record, error) {
	return s.c.GetList(ctx, "radio/tag/", radioParams(Ref{Slug: slug}, limit))
}
