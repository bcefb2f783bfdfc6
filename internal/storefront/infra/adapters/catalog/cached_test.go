package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildline/storefront/internal/pkg/cache"
	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/core/ports"
)

type countingGateway struct {
	calls int
	cats  []entity.Category
	err   error
}

var _ ports.CatalogGateway = (*countingGateway)(nil)

func (g *countingGateway) Categories(ctx context.Context) ([]entity.Category, error) {
	g.calls++
	return g.cats, g.err
}

func (g *countingGateway) Products(ctx context.Context) ([]entity.Product, error) {
	cats, err := g.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return FlattenProducts(cats), nil
}

func testTree() []entity.Category {
	return []entity.Category{{
		ID:          "1",
		Code:        "Rebar",
		Description: "Rebar",
		Groups: []entity.ProductGroup{{
			ID:          "2",
			Code:        "G75",
			Description: "Grade 75",
			Products: []entity.Product{{
				ID: "10", ItemID: 10, Name: "8mm Rebar", Unit: "kg", MinOrderQuantity: 1,
			}},
		}},
	}}
}

func TestCachedGateway_SecondReadServedFromCache(t *testing.T) {
	inner := &countingGateway{cats: testTree()}
	g := NewCachedGateway(inner, cache.NewMemoryCache("test"), time.Minute)

	first, err := g.Categories(context.Background())
	require.NoError(t, err)
	second, err := g.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)

	// Products flattens from the same cache entry.
	products, err := g.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
	require.Len(t, products, 1)
	assert.Equal(t, "8mm Rebar", products[0].Name)
}

func TestCachedGateway_ErrorsAreNotCached(t *testing.T) {
	inner := &countingGateway{err: errors.New("upstream down")}
	g := NewCachedGateway(inner, cache.NewMemoryCache("test"), time.Minute)

	_, err := g.Categories(context.Background())
	require.Error(t, err)

	inner.err = nil
	inner.cats = testTree()

	cats, err := g.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.Equal(t, 2, inner.calls)
}
