package ports

import (
	"context"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

// CatalogGateway fetches the remote catalog and normalizes it into
// display-ready records. Implementations own all wire-format coercion;
// callers only ever see strict types.
type CatalogGateway interface {
	// Categories returns the full normalized catalog tree.
	Categories(ctx context.Context) ([]entity.Category, error)

	// Products returns the flattened list of active, display-ready products.
	Products(ctx context.Context) ([]entity.Product, error)
}
