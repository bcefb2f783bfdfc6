package ports

import (
	"context"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

// OrderGateway posts an assembled submission to the remote order contract.
// A non-nil error means the attempt failed and the cart must be left intact.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, sub *entity.OrderSubmission) (*entity.OrderReceipt, error)
}
