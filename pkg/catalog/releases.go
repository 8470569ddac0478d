package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// ReleaseService wraps the release/ endpoints.
type ReleaseService struct {
	c *client.Client
}

// Get retrieves one release.
func (s *ReleaseService) Get(ctx context.Context, ref Ref) (client.Record, error) {
	return s.c.GetObject(ctx, "release/", optionParams(ref))
}

// Sources retrieves the release's identifiers in other services.
func (s *ReleaseService) Sources(ctx context.Context, ref Ref) ([]client.Record, error) {
	return s.c.GetList(ctx, "release/sources/", optionParams(ref))
}
