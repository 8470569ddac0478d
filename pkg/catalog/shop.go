package catalog

import (
	"context"
	"fmt"

	"github.com/blitzr/blitzr-go/pkg/client"
)

// ShopService wraps the buy/ endpoints. The product type is spliced into the
// endpoint path, not sent as a query parameter, so it is validated against
// the documented enum before any request is built.
type ShopService struct {
	c *client.Client
}

// ProductType enumerates the purchasable product kinds.
type ProductType string

const (
	ProductCD    ProductType = "cd"
	ProductLP    ProductType = "lp"
	ProductMP3   ProductType = "mp3"
	ProductMerch ProductType = "merch"
)

// productPath builds "buy/<entity>/<product>/" after checking the product
// against the types the entity supports.
func productPath(entity string, product ProductType, allowed ...ProductType) (string, error) {
	for _, a := range allowed {
		if product == a {
			return fmt.Sprintf("buy/%s/%s/", entity, product), nil
		}
	}
	return "", client.NewConfigurationError(
		fmt.Sprintf("product type %q is not available for %s (allowed: %v)", product, entity, allowed))
}

// Artist retrieves an artist's related products (cd|lp|mp3|merch).
func (s *ShopService) Artist(ctx context.Context, product ProductType, ref Ref) ([]client.Record, error) {
	path, err := productPath("artist", product, ProductCD, ProductLP, ProductMP3, ProductMerch)
	if err != nil {
		return nil, err
	}
	return s.c.GetList(ctx, path, optionParams(ref))
}

// Label retrieves a label's related products (cd|lp|merch).
func (s *ShopService) Label(ctx context.Context, product ProductType, ref Ref) ([]client.Record, error) {
	path, err := productPath("label", product, ProductCD, ProductLP, ProductMerch)
	if err != nil {
		return nil, err
	}
	return s.c.GetList(ctx, path, optionParams(ref))
}

// Release retrieves a release's related products (cd|lp|mp3).
func (s *ShopService) Release(ctx context.Context, product ProductType, ref Ref) ([]client.Record, error) {
	path, err := productPath("release", product, ProductCD, ProductLP, ProductMP3)
	if err != nil {
		return nil, err
	}
	return s.c.GetList(ctx, path, optionParams(ref))
}

// Track retrieves a track's related products.
func (s *ShopService) Track(ctx context.Context, uuid string) ([]client.Record, error) {
	return s.c.GetList(ctx, "buy/track/", client.NewParams().Set("uuid", uuid))
}
