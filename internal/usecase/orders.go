package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/notification"
	"github.com/dzinstall/storefront/internal/store"
)

// OrderUseCase covers the customer side of installment applications.
type OrderUseCase struct {
	store    *store.Store
	engine   *lifecycle.Engine
	sessions *SessionRegistry
	notifier Notifier
	logger   *slog.Logger
	newID    func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(st *store.Store, engine *lifecycle.Engine, sessions *SessionRegistry, notifier Notifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		store:    st,
		engine:   engine,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Place opens a PENDING application for productID on behalf of phone. The
// new order goes to the front of the list.
func (u *OrderUseCase) Place(ctx context.Context, phone, productID string) (model.Order, error) {
	var order model.Order
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		customer, err := findUser(tx, phone)
		if err != nil {
			return err
		}
		if customer.IsAdmin() {
			return fmt.Errorf("place order: %w", domainErrors.ErrForbidden)
		}

		products, err := tx.Products()
		if err != nil {
			return err
		}
		product, ok := findProduct(products, productID)
		if !ok {
			return fmt.Errorf("product %s: %w", productID, domainErrors.ErrNotFound)
		}
		months := product.Plan.Months
		if months <= 0 {
			return domainErrors.NewValidationError("months", "خطة التقسيط غير صالحة")
		}

		order = model.Order{
			ID:            u.newID(),
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductImage:  product.Image(),
			CustomerName:  customer.FullName(),
			CustomerPhone: customer.Phone1,
			Wilaya:        customer.Wilaya,
			Status:        model.OrderStatusPending,
			Date:          u.engine.Today(),
			MonthlyPrice:  model.MonthlyInstallment(product.TotalPrice, months),
			Months:        months,
		}

		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		return tx.SaveOrders(append([]model.Order{order}, orders...))
	})
	if err != nil {
		return model.Order{}, err
	}

	u.sessions.SetUnread(phone, true)
	u.logger.Info("order placed", slog.String("order_id", order.ID), slog.String("phone", phone))
	if err := u.notifier.OrderPlaced(ctx, order); err != nil {
		u.logger.Warn("order notification failed", slog.String("order_id", order.ID), slog.String("error", err.Error()))
	}
	return order, nil
}

// Mine lists the orders of phone and clears the unread flag.
func (u *OrderUseCase) Mine(ctx context.Context, phone string) ([]model.Order, error) {
	mine := []model.Order{}
	err := u.store.View(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.CustomerPhone == phone {
				mine = append(mine, o)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sessions.SetUnread(phone, false)
	return mine, nil
}

// SubmitDeliveryInfo attaches the paperwork carrier and tracking number to a
// WAITING_FOR_FILES order of phone and queues it for admin review.
func (u *OrderUseCase) SubmitDeliveryInfo(ctx context.Context, phone, orderID string, info model.DeliveryInfo) (model.Order, error) {
	var order model.Order
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		updated, attached, err := lifecycle.AttachDeliveryInfo(orders, phone, orderID, info)
		if err != nil {
			return err
		}
		order = attached
		if err := tx.SaveOrders(updated); err != nil {
			return err
		}

		queue, err := tx.DeliveryUpdates()
		if err != nil {
			return err
		}
		return tx.SaveDeliveryUpdates(notification.AppendUnique(queue, orderID))
	})
	if err != nil {
		return model.Order{}, err
	}

	u.logger.Info("delivery info submitted", slog.String("order_id", orderID), slog.String("phone", phone))
	if err := u.notifier.DeliveryInfoSubmitted(ctx, order); err != nil {
		u.logger.Warn("delivery info notification failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
	}
	return order, nil
}

func findUser(tx *store.Tx, phone string) (model.User, error) {
	users, err := tx.Users()
	if err != nil {
		return model.User{}, err
	}
	for _, usr := range users {
		if usr.Phone1 == phone {
			return usr, nil
		}
	}
	return model.User{}, fmt.Errorf("user %s: %w", phone, domainErrors.ErrNotFound)
}

func findProduct(products []model.Product, id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func findOrder(orders []model.Order, id string) (model.Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}
