package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitzr/blitzr-go/internal/testutil"
	"github.com/blitzr/blitzr-go/pkg/client"
)

func TestArtistService_Get(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/artist/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `{"name": "Eminem", "uuid": "AR-em-1"}`,
	})

	artist, err := cat.Artists().Get(context.Background(), ArtistOptions{
		Ref:         Ref{Slug: "eminem"},
		Extras:      []string{"websites", "biography"},
		ExtrasLimit: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Eminem", artist["name"])
	assert.Equal(t, "eminem", mock.LastQuery.Get("slug"))
	assert.Equal(t, "websites,biography", mock.LastQuery.Get("extras"))
	assert.Equal(t, "5", mock.LastQuery.Get("extras_limit"))
	assert.False(t, mock.LastQuery.Has("uuid"), "empty ref fields stay off the wire")
}

func TestArtistService_Biography(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/artist/biography/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `{"text": "<p>Marshall Mathers...</p>", "lang": "en"}`,
	})

	bio, err := cat.Artists().Biography(context.Background(), BiographyOptions{
		Ref:        Ref{UUID: "AR-em-1"},
		Lang:       "en",
		HTMLFormat: true,
	})
	require.NoError(t, err)

	assert.Contains(t, bio["text"], "Marshall")
	assert.Equal(t, "en", mock.LastQuery.Get("lang"))
	assert.Equal(t, "html", mock.LastQuery.Get("format"))
}

func TestArtistService_Releases(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetPagedDataset("/artist/releases/", testutil.MakeRecords(12, "release"))

	pager := cat.Artists().Releases(ArtistReleasesOptions{
		Ref:    Ref{Slug: "eminem"},
		Type:   "official",
		Format: "album",
	})
	records, err := pager.Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 12)
	assert.Equal(t, 2, mock.RequestsTo("/artist/releases/"))
	assert.Equal(t, "official", mock.LastQuery.Get("type"))
	assert.Equal(t, "album", mock.LastQuery.Get("format"))
	// Credited is meaningful in both states and is always sent.
	assert.Equal(t, "false", mock.LastQuery.Get("credited"))
}

func TestLabelService_Artists(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetPagedDataset("/label/artists/", testutil.MakeRecords(4, "artist"))

	records, err := cat.Labels().Artists(Ref{Slug: "shady-records"}).Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 4)
	assert.Equal(t, 1, mock.RequestsTo("/label/artists/"))
	assert.Equal(t, "shady-records", mock.LastQuery.Get("slug"))
}

func TestEventService_List(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetPagedDataset("/events/", testutil.MakeRecords(3, "event"))

	records, err := cat.Events().List(EventSearchOptions{
		CountryCode: "FR",
		City:        "Paris",
		Radius:      50,
	}).Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 3)
	assert.Equal(t, "FR", mock.LastQuery.Get("country_code"))
	assert.Equal(t, "Paris", mock.LastQuery.Get("city"))
	assert.Equal(t, "50", mock.LastQuery.Get("radius"))
	assert.False(t, mock.LastQuery.Has("date_start"), "zero dates stay off the wire")
	assert.False(t, mock.LastQuery.Has("latitude"))
}

func TestHarmoniaService_Artist(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/harmonia/artist/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `{"name": "Eminem"}`,
	})

	artist, err := cat.Harmonia().Artist(context.Background(), ServiceRef{
		ServiceName: "musicbrainz",
		ServiceID:   "b95ce3ff",
	})
	require.NoError(t, err)

	assert.Equal(t, "Eminem", artist["name"])
	assert.Equal(t, "musicbrainz", mock.LastQuery.Get("service_name"))
	assert.Equal(t, "b95ce3ff", mock.LastQuery.Get("service_id"))
}

func TestHarmoniaService_SearchBySource(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/harmonia/searchbysource/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `[{"title": "Stan"}]`,
	})

	tracks, err := cat.Harmonia().SearchBySource(context.Background(), SourceSearchOptions{
		SourceName: "spotify",
		SourceID:   "3UmaczJpikHgJFyBTAJVoz",
		Strict:     true,
	})
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	assert.Equal(t, "spotify", mock.LastQuery.Get("source_name"))
	assert.Equal(t, "true", mock.LastQuery.Get("strict"))
}

func TestRadioService_Limits(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/radio/artist/", testutil.MockResponse{StatusCode: 200, Body: `[]`})
	mock.SetResponse("/radio/tag/", testutil.MockResponse{StatusCode: 200, Body: `[]`})

	_, err := cat.Radio().Artist(context.Background(), Ref{Slug: "eminem"}, 25)
	require.NoError(t, err)
	assert.Equal(t, "25", mock.LastQuery.Get("limit"))

	// A non-positive limit falls back to the default.
	_, err = cat.Radio().Tag(context.Background(), "rap", 0)
	require.NoError(t, err)
	assert.Equal(t, "10", mock.LastQuery.Get("limit"))
	assert.Equal(t, "rap", mock.LastQuery.Get("slug"))
}

func TestSearchService_ArtistsWithExtras(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetSearchDataset("/search/artist/", testutil.MakeRecords(23, "artist"))

	pager := cat.Search().Artists("emi", DefaultSearchOptions())

	total, err := pager.Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 23, total)

	records, err := pager.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 23)
	assert.Equal(t, "emi", mock.LastQuery.Get("query"))
	assert.Equal(t, "true", mock.LastQuery.Get("extras"))
}

func TestSearchService_TracksWithoutExtras(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetSearchDataset("/search/track/", testutil.MakeRecords(5, "track"))

	pager := cat.Search().Tracks("stan", SearchOptions{Filters: []string{"artist.eminem"}})

	_, err := pager.Total(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsConfiguration(err))

	records, err := pager.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, "artist.eminem", mock.LastQuery.Get("filters"))
	assert.Equal(t, "false", mock.LastQuery.Get("extras"))
}

func TestSearchService_Cities(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetPagedDataset("/search/city/", testutil.MakeRecords(2, "city"))

	records, err := cat.Search().Cities("det", CitySearchOptions{Autocomplete: true}).Collect(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Equal(t, "det", mock.LastQuery.Get("query"))
	assert.Equal(t, "true", mock.LastQuery.Get("autocomplete"))
}

func TestShopService_ProductValidation(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/buy/release/lp/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `[{"name": "The Marshall Mathers LP", "price": "25.00"}]`,
	})

	products, err := cat.Shop().Release(context.Background(), ProductLP, Ref{UUID: "RE-1"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, mock.RequestsTo("/buy/release/lp/"))

	// Releases are not sold as merch; the call fails before any request.
	_, err = cat.Shop().Release(context.Background(), ProductMerch, Ref{UUID: "RE-1"})
	require.Error(t, err)
	assert.True(t, client.IsConfiguration(err))
	assert.Equal(t, 1, mock.GetRequestCount())
}

func TestShopService_Track(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/buy/track/", testutil.MockResponse{StatusCode: 200, Body: `[]`})

	_, err := cat.Shop().Track(context.Background(), "TR-1")
	require.NoError(t, err)
	assert.Equal(t, "TR-1", mock.LastQuery.Get("uuid"))
}

func TestTagService_Get(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/tag/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `{"name": "Rap", "slug": "rap"}`,
	})

	tag, err := cat.Tags().Get(context.Background(), "rap")
	require.NoError(t, err)
	assert.Equal(t, "Rap", tag["name"])
	assert.Equal(t, "rap", mock.LastQuery.Get("slug"))
}

func TestTrackService_Sources(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/track/sources/", testutil.MockResponse{
		StatusCode: 200,
		Body:       `[{"source": "spotify"}, {"source": "deezer"}]`,
	})

	sources, err := cat.Tracks().Sources(context.Background(), "TR-1")
	require.NoError(t, err)
	assert.Len(t, sources, 2)
}

func TestService_NotFoundSurfacesClientError(t *testing.T) {
	cat, mock := newTestCatalog(t)
	mock.SetResponse("/artist/", testutil.NewNotFoundResponse())

	_, err := cat.Artists().Get(context.Background(), ArtistOptions{Ref: Ref{Slug: "nobody"}})
	require.Error(t, err)
	assert.True(t, client.IsClient(err))
}
