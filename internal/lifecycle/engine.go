// Package lifecycle applies order status transitions and their side effects.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
)

// Request describes one status change asked for by the back office.
type Request struct {
	OrderID  string
	Status   model.OrderStatus
	Reason   string
	Delivery *model.DeliveryInfo
}

// Result holds the updated collections. Orders and Products are fresh slices
// when something changed; untouched elements keep their values.
type Result struct {
	Orders       []model.Order
	Products     []model.Product
	Order        model.Order
	Previous     model.Order
	StockDelta   int
	ProductFound bool
}

// Engine is a pure transition function over order and product snapshots.
type Engine struct {
	now func() time.Time
}

// New creates Engine using clock for date stamps. A nil clock means time.Now.
func New(clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{now: clock}
}

// Today returns the current date stamp.
func (e *Engine) Today() string {
	return e.now().Format(model.DateLayout)
}

// Apply moves one order to req.Status and computes stamps and stock changes.
func (e *Engine) Apply(orders []model.Order, products []model.Product, req Request) (Result, error) {
	if !req.Status.Valid() {
		return Result{}, domainErrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	idx := indexOfOrder(orders, req.OrderID)
	if idx < 0 {
		return Result{}, fmt.Errorf("order %s: %w", req.OrderID, domainErrors.ErrNotFound)
	}

	current := orders[idx]
	effects, ok := lookup(current.Status, req.Status)
	if !ok {
		return Result{}, fmt.Errorf("%s -> %s: %w", current.Status, req.Status, domainErrors.ErrInvalidTransition)
	}

	c := &change{
		before: current,
		after:  current,
		reason: req.Reason,
		today:  e.Today(),
	}
	c.after.Status = req.Status
	for _, eff := range effects {
		eff(c)
	}
	if req.Delivery != nil {
		routeDelivery(&c.after, req.Status, *req.Delivery)
	}

	res := Result{
		Orders:   replaceOrder(orders, idx, c.after),
		Products: products,
		Order:    c.after,
		Previous: current,
	}

	if c.stock != 0 {
		pIdx := indexOfProduct(products, current.ProductID)
		if pIdx >= 0 {
			res.ProductFound = true
			updated := products[pIdx]
			before := updated.Stock
			updated.Stock += c.stock
			if updated.Stock < 0 {
				updated.Stock = 0
			}
			res.StockDelta = updated.Stock - before
			if res.StockDelta != 0 {
				res.Products = replaceProduct(products, pIdx, updated)
			}
		}
	} else {
		res.ProductFound = indexOfProduct(products, current.ProductID) >= 0
	}

	return res, nil
}

// AttachDeliveryInfo records the carrier used by a customer to send paperwork.
// Values overwrite earlier submissions; status is left unchanged.
func AttachDeliveryInfo(orders []model.Order, customerPhone, orderID string, info model.DeliveryInfo) ([]model.Order, model.Order, error) {
	company := strings.TrimSpace(info.Company)
	tracking := strings.TrimSpace(info.TrackingNumber)

	fields := map[string]string{}
	if company == "" {
		fields["deliveryCompany"] = "required"
	}
	if tracking == "" {
		fields["trackingNumber"] = "required"
	}
	if len(fields) > 0 {
		return nil, model.Order{}, &domainErrors.ValidationError{Fields: fields}
	}

	idx := indexOfOrder(orders, orderID)
	if idx < 0 || orders[idx].CustomerPhone != customerPhone {
		return nil, model.Order{}, fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
	}

	order := orders[idx]
	if order.Status != model.OrderStatusWaitingForFiles {
		return nil, model.Order{}, fmt.Errorf("delivery info for %s order: %w", order.Status, domainErrors.ErrInvalidTransition)
	}

	order.DeliveryCompany = company
	order.TrackingNumber = tracking
	return replaceOrder(orders, idx, order), order, nil
}

// routeDelivery writes the payload to the seller shipment fields when the
// product leaves the warehouse, otherwise to the customer paperwork fields.
func routeDelivery(o *model.Order, target model.OrderStatus, info model.DeliveryInfo) {
	if target == model.OrderStatusDelivered {
		o.ShippingCompany = info.Company
		o.ShippingTrackingNumber = info.TrackingNumber
		return
	}
	o.DeliveryCompany = info.Company
	o.TrackingNumber = info.TrackingNumber
}

func indexOfOrder(orders []model.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfProduct(products []model.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func replaceOrder(orders []model.Order, idx int, o model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	copy(out, orders)
	out[idx] = o
	return out
}

func replaceProduct(products []model.Product, idx int, p model.Product) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	out[idx] = p
	return out
}
