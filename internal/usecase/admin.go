package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/store"
)

// OrderDetails is an order as the back office opens it.
type OrderDetails struct {
	Order    model.Order         `json:"order"`
	Customer *model.User         `json:"customer"`
	Next     []model.OrderStatus `json:"next"`
}

// AdminUseCase drives the back-office console.
type AdminUseCase struct {
	store  *store.Store
	engine *lifecycle.Engine
	logger *slog.Logger
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(st *store.Store, engine *lifecycle.Engine, logger *slog.Logger) *AdminUseCase {
	return &AdminUseCase{store: st, engine: engine, logger: logger}
}

// Orders returns every application, newest first.
func (u *AdminUseCase) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := u.store.View(ctx, func(tx *store.Tx) error {
		var err error
		orders, err = tx.Orders()
		return err
	})
	return orders, err
}

// OpenOrder returns one order with its customer and acknowledges any
// pending delivery-info update for it.
func (u *AdminUseCase) OpenOrder(ctx context.Context, id string) (OrderDetails, error) {
	var details OrderDetails
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		order, ok := findOrder(orders, id)
		if !ok {
			return fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
		}
		details = OrderDetails{Order: order, Next: lifecycle.Next(order.Status)}

		if customer, err := findUser(tx, order.CustomerPhone); err == nil {
			customer = publicUser(customer)
			details.Customer = &customer
		}

		queue, err := tx.DeliveryUpdates()
		if err != nil {
			return err
		}
		if !slices.Contains(queue, id) {
			return nil
		}
		return tx.SaveDeliveryUpdates(slices.DeleteFunc(queue, func(q string) bool { return q == id }))
	})
	return details, err
}

// Transition moves an order through the lifecycle table and persists the
// order and product collections together.
func (u *AdminUseCase) Transition(ctx context.Context, req lifecycle.Request) (model.Order, error) {
	var res lifecycle.Result
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		products, err := tx.Products()
		if err != nil {
			return err
		}

		res, err = u.engine.Apply(orders, products, req)
		if err != nil {
			return err
		}
		if err := tx.SaveOrders(res.Orders); err != nil {
			return err
		}
		if res.StockDelta != 0 {
			return tx.SaveProducts(res.Products)
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	if !res.ProductFound {
		u.logger.Warn("order references unknown product",
			slog.String("order_id", res.Order.ID),
			slog.String("product_id", res.Order.ProductID),
		)
	}
	u.logger.Info("order transitioned",
		slog.String("order_id", res.Order.ID),
		slog.String("from", string(res.Previous.Status)),
		slog.String("status", string(res.Order.Status)),
		slog.Int("stock_delta", res.StockDelta),
	)
	return res.Order, nil
}

// DeliveryUpdates lists orders whose delivery info no admin has opened yet.
func (u *AdminUseCase) DeliveryUpdates(ctx context.Context) ([]model.Order, error) {
	pending := []model.Order{}
	err := u.store.View(ctx, func(tx *store.Tx) error {
		queue, err := tx.DeliveryUpdates()
		if err != nil {
			return err
		}
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		for _, id := range queue {
			if o, ok := findOrder(orders, id); ok {
				pending = append(pending, o)
			}
		}
		return nil
	})
	return pending, err
}

func (u *AdminUseCase) Dashboard(ctx context.Context) (model.Dashboard, error) {
	dash := model.Dashboard{ByStatus: make(map[model.OrderStatus]int, len(model.OrderStatuses))}
	for _, s := range model.OrderStatuses {
		dash.ByStatus[s] = 0
	}

	err := u.store.View(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		products, err := tx.Products()
		if err != nil {
			return err
		}
		users, err := tx.Users()
		if err != nil {
			return err
		}
		queue, err := tx.DeliveryUpdates()
		if err != nil {
			return err
		}

		dash.TotalOrders = len(orders)
		for _, o := range orders {
			dash.ByStatus[o.Status]++
		}
		for _, usr := range users {
			if !usr.IsAdmin() {
				dash.Customers++
			}
		}
		dash.Products = len(products)
		for _, p := range products {
			dash.StockUnits += p.Stock
		}
		dash.DeliveryUpdates = len(queue)
		return nil
	})
	return dash, err
}

// Customers lists customer profiles without password hashes.
func (u *AdminUseCase) Customers(ctx context.Context) ([]model.User, error) {
	customers := []model.User{}
	err := u.store.View(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, usr := range users {
			if !usr.IsAdmin() {
				customers = append(customers, publicUser(usr))
			}
		}
		return nil
	})
	return customers, err
}

// View returns the back office screen phone last selected.
func (u *AdminUseCase) View(ctx context.Context, phone string) (model.AdminView, error) {
	var view model.AdminView
	err := u.store.View(ctx, func(tx *store.Tx) error {
		var err error
		view, err = tx.AdminView(phone)
		return err
	})
	return view, err
}

// SetView remembers view for phone until the next admin login.
func (u *AdminUseCase) SetView(ctx context.Context, phone string, view model.AdminView) error {
	if !view.Valid() {
		return domainErrors.NewValidationError("view", fmt.Sprintf("unknown view %q", view))
	}
	return u.store.Update(ctx, func(tx *store.Tx) error {
		return tx.SaveAdminView(phone, view)
	})
}
