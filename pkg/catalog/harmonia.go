package catalog

import (
	"context"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// HarmoniaService wraps the harmonia/ endpoints, resolving Blitzr entities
// from external service identifiers.
type HarmoniaService struct {
	c *client.Client
}

// ServiceRef identifies an entity in an external service.
type ServiceRef struct {
	ServiceName string `url:"service_name,omitempty"`
	ServiceID   string `url:"service_id,omitempty"`
}

// SourceSearchOptions locates tracks from an external source identifier.
type SourceSearchOptions struct {
	SourceName string `url:"source_name,omitempty"`
	SourceID   string `url:"source_id,omitempty"`
	// SourceFilters restricts the source.
	SourceFilters []string `url:"source_filters,comma,omitempty"`
	// Strict asks Blitzr to guess the single best match instead of
	// returning all matched results.
	Strict bool `url:"strict"`
}

// Artist resolves an artist from an external service identifier.
func (s *HarmoniaService) Artist(ctx context.Context, ref ServiceRef) (client.Record, error) {
	return s.c.GetObject(ctx, "harmonia/artist/", optionParams(ref))
}

// Release resolves a release from an external service identifier.
func (s *HarmoniaService) Release(ctx context.Context, ref ServiceRef) (client.Record, error) {
	return s.c.GetObject(ctx, "harmonia/release/", optionParams(ref))
}

// Label resolves a label from an external service identifier.
func (s *HarmoniaService) Label(ctx context.Context, ref ServiceRef) (client.Record, error) {
	return s.c.GetObject(ctx, "harmonia/label/", optionParams(ref))
}

// SearchBySource retrieves tracks matching an external source identifier.
func (s *HarmoniaService) SearchBySource(ctx context.Context, opts SourceSearchOptions) ([]client.Record, error) {
	return s.c.GetList(ctx, "harmonia/searchbysource/", optionParams(opts))
}
