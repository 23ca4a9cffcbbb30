package usecase

import (
	"context"

	"github.com/dzinstall/storefront/internal/domain/model"
)

// Notifier alerts the back office about customer activity. Failures are
// logged by callers and never block the customer's action.
type Notifier interface {
	OrderPlaced(ctx context.Context, order model.Order) error
	DeliveryInfoSubmitted(ctx context.Context, order model.Order) error
}

// ProductAdvisor answers free-form questions about a product. It always
// returns displayable text, falling back to a canned reply on failure.
type ProductAdvisor interface {
	Ask(ctx context.Context, product model.Product, question string) string
}
