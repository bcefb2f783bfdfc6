package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/buildline/storefront/internal/pkg/cache"
	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/core/ports"
)

const cacheOperation = "catalog"

// CachedGateway layers a short-TTL cache over another CatalogGateway so a
// burst of storefront traffic does not hammer the upstream catalog. Cache
// failures are logged and ignored: a broken cache must never break a page
// load, and a fetch error is never cached.
type CachedGateway struct {
	next  ports.CatalogGateway
	cache cache.Cache
	ttl   time.Duration
}

var _ ports.CatalogGateway = (*CachedGateway)(nil)

func NewCachedGateway(next ports.CatalogGateway, c cache.Cache, ttl time.Duration) *CachedGateway {
	return &CachedGateway{next: next, cache: c, ttl: ttl}
}

func (g *CachedGateway) Categories(ctx context.Context) ([]entity.Category, error) {
	key := g.cache.GenerateKey(cacheOperation, "categories")

	if raw, err := g.cache.Get(ctx, key); err == nil && raw != "" {
		var cats []entity.Category
		if err := json.Unmarshal([]byte(raw), &cats); err == nil {
			return cats, nil
		}
	} else if err != nil {
		slog.WarnContext(ctx, "catalog cache read failed", "error", err)
	}

	cats, err := g.next.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(cats); err == nil {
		if err := g.cache.Set(ctx, key, string(b), g.ttl); err != nil {
			slog.WarnContext(ctx, "catalog cache write failed", "error", err)
		}
	}
	return cats, nil
}

// Products flattens from Categories so both views share one cache entry.
func (g *CachedGateway) Products(ctx context.Context) ([]entity.Product, error) {
	cats, err := g.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return FlattenProducts(cats), nil
}
