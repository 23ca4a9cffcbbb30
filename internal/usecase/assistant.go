package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/store"
)

// AssistantUseCase answers shopper questions about a catalog product.
type AssistantUseCase struct {
	store   *store.Store
	advisor ProductAdvisor
}

// NewAssistantUseCase constructs AssistantUseCase.
func NewAssistantUseCase(st *store.Store, advisor ProductAdvisor) *AssistantUseCase {
	return &AssistantUseCase{store: st, advisor: advisor}
}

// Ask returns the advisor's reply. Upstream failures surface as canned text,
// not errors; only an unknown product or an empty question fail.
func (u *AssistantUseCase) Ask(ctx context.Context, productID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domainErrors.NewValidationError("question", "هذا الحقل مطلوب")
	}

	var product model.Product
	err := u.store.View(ctx, func(tx *store.Tx) error {
		products, err := tx.Products()
		if err != nil {
			return err
		}
		var ok bool
		if product, ok = findProduct(products, productID); !ok {
			return fmt.Errorf("product %s: %w", productID, domainErrors.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return u.advisor.Ask(ctx, product, question), nil
}
