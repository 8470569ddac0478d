package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// TrackService wraps the track/ endpoints.
type TrackService struct {
	c *client.Client
}

// Get retrieves one track.
func (s *TrackService) Get(ctx context.Context, uuid string) (client.Record, error) {
	return s.c.GetObject(ctx, "track/", client.NewParams().Set("uuid", uuid))
}

// Sources retrieves a track's sources.
func (s *TrackService) Sources(ctx context.Context, uuid string) ([]client.Record, error) {
	return s.c.GetList(ctx, "track/sources/", client.NewParams().Set("uuid", uuid))
}
