package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/store"
)

const defaultCategory = "عام"

// ProductInput is the admin product form.
type ProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand" validate:"required"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	PurchasePrice int64    `json:"purchasePrice" validate:"gte=0"`
	TotalPrice    int64    `json:"totalPrice" validate:"gt=0"`
	Months        int      `json:"months" validate:"gt=0"`
	Features      []string `json:"features"`
	Images        []string `json:"images" validate:"min=1,dive,required,url"`
	Stock         int      `json:"stock" validate:"gte=0"`
}

// CatalogUseCase manages the product list.
type CatalogUseCase struct {
	store    *store.Store
	validate *validator.Validate
	logger   *slog.Logger
	newID    func() string
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(st *store.Store, validate *validator.Validate, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{store: st, validate: validate, logger: logger, newID: uuid.NewString}
}

func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := u.store.View(ctx, func(tx *store.Tx) error {
		var err error
		products, err = tx.Products()
		return err
	})
	return products, err
}

func (u *CatalogUseCase) Get(ctx context.Context, id string) (model.Product, error) {
	products, err := u.List(ctx)
	if err != nil {
		return model.Product{}, err
	}
	p, ok := findProduct(products, id)
	if !ok {
		return model.Product{}, fmt.Errorf("product %s: %w", id, domainErrors.ErrNotFound)
	}
	return p, nil
}

// Create adds a product; the monthly price is the total rounded up over the plan.
func (u *CatalogUseCase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	product, err := u.build(in)
	if err != nil {
		return model.Product{}, err
	}
	product.ID = u.newID()

	err = u.store.Update(ctx, func(tx *store.Tx) error {
		products, err := tx.Products()
		if err != nil {
			return err
		}
		return tx.SaveProducts(append(products, product))
	})
	if err != nil {
		return model.Product{}, err
	}
	u.logger.Info("product created", slog.String("product_id", product.ID))
	return product, nil
}

// Update replaces every editable field of product id.
func (u *CatalogUseCase) Update(ctx context.Context, id string, in ProductInput) (model.Product, error) {
	product, err := u.build(in)
	if err != nil {
		return model.Product{}, err
	}
	product.ID = id

	err = u.store.Update(ctx, func(tx *store.Tx) error {
		products, err := tx.Products()
		if err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == id {
				products[i] = product
				return tx.SaveProducts(products)
			}
		}
		return fmt.Errorf("product %s: %w", id, domainErrors.ErrNotFound)
	})
	if err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// Delete removes product id. Existing orders keep their display copies.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return u.store.Update(ctx, func(tx *store.Tx) error {
		products, err := tx.Products()
		if err != nil {
			return err
		}
		kept := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(products) {
			return fmt.Errorf("product %s: %w", id, domainErrors.ErrNotFound)
		}
		return tx.SaveProducts(kept)
	})
}

func (u *CatalogUseCase) build(in ProductInput) (model.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Category = strings.TrimSpace(in.Category)
	if err := validateStruct(u.validate, in); err != nil {
		return model.Product{}, err
	}
	if in.Category == "" {
		in.Category = defaultCategory
	}

	features := []string{}
	for _, f := range in.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	media := make([]model.MediaItem, 0, len(in.Images))
	for _, url := range in.Images {
		media = append(media, model.MediaItem{Type: model.MediaTypeImage, URL: url})
	}

	return model.Product{
		Name:          in.Name,
		Brand:         in.Brand,
		Category:      in.Category,
		Description:   strings.TrimSpace(in.Description),
		PurchasePrice: in.PurchasePrice,
		TotalPrice:    in.TotalPrice,
		Plan:          model.InstallmentPlan{Months: in.Months, MonthlyPrice: model.MonthlyInstallment(in.TotalPrice, in.Months)},
		Media:         media,
		Features:      features,
		Stock:         in.Stock,
	}, nil
}
