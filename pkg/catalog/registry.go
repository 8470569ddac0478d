package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

// Mode tells how an operation's response is shaped and consumed.
type Mode string

const (
	// ModeObject: a single record object, one request.
	ModeObject Mode = "object"
	// ModeList: a bare array of records, one request.
	ModeList Mode = "list"
	// ModePager: an auto-paginating sequence of records.
	ModePager Mode = "pager"
	// ModeSearch: an auto-paginating sequence with an optional
	// {results, total} envelope.
	ModeSearch Mode = "search"
)

// Operation describes one API operation: its endpoint path, its response
// mode, and whether it embeds an enumerated product-type path segment.
// Generic consumers such as the CLI dispatch from the registry instead of
// per-endpoint code.
type Operation struct {
	Path string
	Mode Mode
	// ProductTypes, when non-empty, marks an operation whose path embeds a
	// product-type segment and lists the allowed values.
	ProductTypes []ProductType
}

// Registry maps operation names to their descriptors.
var Registry = map[string]Operation{
	"artist":                  {Path: "artist/", Mode: ModeObject},
	"artist.aliases":          {Path: "artist/aliases/", Mode: ModeList},
	"artist.bands":            {Path: "artist/bands/", Mode: ModePager},
	"artist.biography":        {Path: "artist/biography/", Mode: ModeObject},
	"artist.events":           {Path: "artist/events/", Mode: ModePager},
	"artist.members":          {Path: "artist/members/", Mode: ModePager},
	"artist.related":          {Path: "artist/related/", Mode: ModePager},
	"artist.releases":         {Path: "artist/releases/", Mode: ModePager},
	"artist.similar":          {Path: "artist/similars/", Mode: ModePager},
	"artist.summary":          {Path: "artist/summary/", Mode: ModeObject},
	"artist.websites":         {Path: "artist/websites/", Mode: ModeList},
	"event":                   {Path: "event/", Mode: ModeObject},
	"events":                  {Path: "events/", Mode: ModePager},
	"harmonia.artist":         {Path: "harmonia/artist/", Mode: ModeObject},
	"harmonia.label":          {Path: "harmonia/label/", Mode: ModeObject},
	"harmonia.release":        {Path: "harmonia/release/", Mode: ModeObject},
	"harmonia.searchbysource": {Path: "harmonia/searchbysource/", Mode: ModeList},
	"label":                   {Path: "label/", Mode: ModeObject},
	"label.artists":           {Path: "label/artists/", Mode: ModePager},
	"label.biography":         {Path: "label/biography/", Mode: ModeObject},
	"label.releases":          {Path: "label/releases/", Mode: ModePager},
	"label.similar":           {Path: "label/similars/", Mode: ModePager},
	"label.websites":          {Path: "label/websites/", Mode: ModeList},
	"radio.artist":            {Path: "radio/artist/", Mode: ModeList},
	"radio.artist.similar":    {Path: "radio/artist/similar/", Mode: ModeList},
	"radio.label":             {Path: "radio/label/", Mode: ModeList},
	"radio.tag":               {Path: "radio/tag/", Mode: ModeList},
	"release":                 {Path: "release/", Mode: ModeObject},
	"release.sources":         {Path: "release/sources/", Mode: ModeList},
	"search.artist":           {Path: "search/artist/", Mode: ModeSearch},
	"search.city":             {Path: "search/city/", Mode: ModePager},
	"search.country":          {Path: "search/country/", Mode: ModePager},
	"search.label":            {Path: "search/label/", Mode: ModeSearch},
	"search.release":          {Path: "search/release/", Mode: ModeSearch},
	"search.track":            {Path: "search/track/", Mode: ModeSearch},
	"shop.artist":             {Path: "buy/artist/", Mode: ModeList, ProductTypes: []ProductType{ProductCD, ProductLP, ProductMP3, ProductMerch}},
	"shop.label":              {Path: "buy/label/", Mode: ModeList, ProductTypes: []ProductType{ProductCD, ProductLP, ProductMerch}},
	"shop.release":            {Path: "buy/release/", Mode: ModeList, ProductTypes: []ProductType{ProductCD, ProductLP, ProductMP3}},
	"shop.track":              {Path: "buy/track/", Mode: ModeList},
	"tag":                     {Path: "tag/", Mode: ModeObject},
	"tag.artists":             {Path: "tag/artists/", Mode: ModePager},
	"tag.releases":            {Path: "tag/releases/", Mode: ModePager},
	"track":                   {Path: "track/", Mode: ModeObject},
	"track.sources":           {Path: "track/sources/", Mode: ModeList},
}

// Lookup returns the descriptor for an operation name.
func Lookup(name string) (Operation, bool) {
	op, ok := Registry[name]
	return op, ok
}

// Names returns all operation names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolvePath splices the product-type segment into the path when the
// operation requires one, and rejects stray or invalid segments.
func (op Operation) resolvePath(name, segment string) (string, error) {
	if len(op.ProductTypes) == 0 {
		if segment != "" {
			return "", client.NewConfigurationError(
				fmt.Sprintf("operation %q takes no product type", name))
		}
		return op.Path, nil
	}
	for _, allowed := range op.ProductTypes {
		if ProductType(segment) == allowed {
			return op.Path + segment + "/", nil
		}
	}
	return "", client.NewConfigurationError(
		fmt.Sprintf("operation %q needs a product type out of %v, got %q", name, op.ProductTypes, segment))
}

// Invoke executes a single-request operation (object or list mode) by name
// and returns the raw JSON response.
func (c *Catalog) Invoke(ctx context.Context, name, segment string, params *client.Params) (json.RawMessage, error) {
	op, ok := Lookup(name)
	if !ok {
		return nil, client.NewConfigurationError(fmt.Sprintf("unknown operation %q", name))
	}
	if op.Mode == ModePager || op.Mode == ModeSearch {
		return nil, client.NewConfigurationError(
			fmt.Sprintf("operation %q paginates, use Iterate", name))
	}
	path, err := op.resolvePath(name, segment)
	if err != nil {
		return nil, err
	}
	return c.client.Execute(ctx, path, params)
}

// Iterate builds the paginating sequence for a pager- or search-mode
// operation by name. Search operations are iterated with extras disabled;
// use IterateSearch when the total count is needed.
func (c *Catalog) Iterate(name, segment string, params *client.Params, pageOpts ...pagination.Option) (*pagination.Pager, error) {
	op, ok := Lookup(name)
	if !ok {
		return nil, client.NewConfigurationError(fmt.Sprintf("unknown operation %q", name))
	}
	path, err := op.resolvePath(name, segment)
	if err != nil {
		return nil, err
	}
	switch op.Mode {
	case ModePager:
		return pagination.New(c.client, path, params, pageOpts...), nil
	case ModeSearch:
		return pagination.NewSearch(c.client, path, params, false, pageOpts...).Pager, nil
	default:
		return nil, client.NewConfigurationError(
			fmt.Sprintf("operation %q does not paginate, use Invoke", name))
	}
}

// IterateSearch builds the search sequence for a search-mode operation,
// keeping access to the total count.
func (c *Catalog) IterateSearch(name string, params *client.Params, extras bool, pageOpts ...pagination.Option) (*pagination.SearchPager, error) {
	op, ok := Lookup(name)
	if !ok {
		return nil, client.NewConfigurationError(fmt.Sprintf("unknown operation %q", name))
	}
	if op.Mode != ModeSearch {
		return nil, client.NewConfigurationError(
			fmt.Sprintf("operation %q is not a search operation", name))
	}
	return pagination.NewSearch(c.client, op.Path, params, extras, pageOpts...), nil
}
