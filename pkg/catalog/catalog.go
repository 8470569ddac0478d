// Package catalog exposes the typed Blitzr API surface: one service per
// entity (artists, labels, releases, tracks, events, tags, search, radio,
// shop, harmonia), every operation a thin wrapper driven through the shared
// request executor or a paginating sequence.
//
// Example usage:
//
//	blitzrClient, err := client.New(client.DefaultConfig(apiKey))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cat := catalog.New(blitzrClient)
//
//	eminem, err := cat.Artists().Get(ctx, catalog.ArtistOptions{
//	    Ref: catalog.Ref{Slug: "eminem"},
//	})
package catalog

import (
	"fmt"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// Ref identifies an entity by UUID or slug. Exactly one is usually set; the
// API resolves whichever is present.
type Ref struct {
	UUID string `url:"uuid,omitempty"`
	Slug string `url:"slug,omitempty"`
}

// Catalog is the entry point for typed Blitzr API operations.
type Catalog struct {
	client *client.Client

	artists  *ArtistService
	events   *EventService
	harmonia *HarmoniaService
	labels   *LabelService
	radio    *RadioService
	releases *ReleaseService
	search   *SearchService
	shop     *ShopService
	tags     *TagService
	tracks   *TrackService
}

// New creates a catalog on top of a constructed client.
func New(c *client.Client) *Catalog {
	cat := &Catalog{client: c}
	cat.artists = &ArtistService{c: c}
	cat.events = &EventService{c: c}
	cat.harmonia = &HarmoniaService{c: c}
	cat.labels = &LabelService{c: c}
	cat.radio = &RadioService{c: c}
	cat.releases = &ReleaseService{c: c}
	cat.search = &SearchService{c: c}
	cat.shop = &ShopService{c: c}
	cat.tags = &TagService{c: c}
	cat.tracks = &TrackService{c: c}
	return cat
}

// Artists returns the artist service.
func (c *Catalog) Artists() *ArtistService { return c.artists }

// Events returns the event service.
func (c *Catalog) Events() *EventService { return c.events }

// Harmonia returns the harmonia cross-service lookup service.
func (c *Catalog) Harmonia() *HarmoniaService { return c.harmonia }

// Labels returns the label service.
func (c *Catalog) Labels() *LabelService { return c.labels }

// Radio returns the radio service.
func (c *Catalog) Radio() *RadioService { return c.radio }

// Releases returns the release service.
func (c *Catalog) Releases() *ReleaseService { return c.releases }

// Search returns the search service.
func (c *Catalog) Search() *SearchService { return c.search }

// Shop returns the shop service.
func (c *Catalog) Shop() *ShopService { return c.shop }

// Tags returns the tag service.
func (c *Catalog) Tags() *TagService { return c.tags }

// Tracks returns the track service.
func (c *Catalog) Tracks() *TrackService { return c.tracks }

// optionParams encodes an option struct into request parameters. Option
// structs are plain tagged structs, for which encoding cannot fail; a failure
// here is a programming error in this package.
func optionParams(opts any) *client.Params {
	params, err := client.ParamsFrom(opts)
	if err != nil {
		panic(fmt.Sprintf("catalog: encode options: %v", err))
	}
	return params
}
