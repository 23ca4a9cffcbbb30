package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/store"
)

func TestOrderPlace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.orders.Place(ctx, "0550123456", "1")
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}

	if order.ID != "order-new" || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Date != "05/03/2024" {
		t.Fatalf("unexpected order date %q", order.Date)
	}
	if order.MonthlyPrice != 7084 || order.Months != 12 {
		t.Fatalf("unexpected plan %d x %d", order.MonthlyPrice, order.Months)
	}
	if order.CustomerName != "Karim Benzine" || order.Wilaya != "الجزائر" {
		t.Fatalf("unexpected customer copy %+v", order)
	}

	stored := f.storedOrders(t)
	if len(stored) != 5 || stored[0].ID != "order-new" {
		t.Fatalf("expected new order at the front, got %d orders starting with %q", len(stored), stored[0].ID)
	}
	if placed, _ := f.notifier.Counts(); placed != 1 {
		t.Fatalf("expected admin notified once, got %d", placed)
	}
	if !f.sessions.Unread("0550123456") {
		t.Fatal("expected unread flag after placing an order")
	}
}

func TestOrderPlaceNotifierFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.notifier.Err = errors.New("telegram down")

	if _, err := f.orders.Place(context.Background(), "0550123456", "2"); err != nil {
		t.Fatalf("notifier failure must not fail the order: %v", err)
	}
	if len(f.storedOrders(t)) != 5 {
		t.Fatal("expected order persisted")
	}
}

func TestOrderPlaceErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.accounts.Bootstrap(ctx, BootstrapOptions{AdminPhone: "0550999999", AdminPassword: "admin"}); err != nil {
		t.Fatalf("bootstrap returned error: %v", err)
	}

	tests := []struct {
		name      string
		phone     string
		productID string
		want      error
	}{
		{name: "admin cannot order", phone: "0550999999", productID: "1", want: domainErrors.ErrForbidden},
		{name: "unknown product", phone: "0550123456", productID: "missing", want: domainErrors.ErrNotFound},
		{name: "unknown customer", phone: "0000000000", productID: "1", want: domainErrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.orders.Place(ctx, tt.phone, tt.productID); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if placed, _ := f.notifier.Counts(); placed != 0 {
		t.Fatalf("failed orders must not notify, got %d", placed)
	}
}

func TestOrderPlaceInvalidPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	err := f.store.Update(ctx, func(tx *store.Tx) error {
		return tx.SaveProducts([]model.Product{{ID: "broken", Name: "Broken", TotalPrice: 1000}})
	})
	if err != nil {
		t.Fatalf("save products: %v", err)
	}

	if _, err := f.orders.Place(ctx, "0550123456", "broken"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderMine(t *testing.T) {
	f := newFixture(t)
	f.sessions.SetUnread("0550123456", true)

	orders, err := f.orders.Mine(context.Background(), "0550123456")
	if err != nil {
		t.Fatalf("mine returned error: %v", err)
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	if !slices.Equal(ids, []string{"1001", "1004"}) {
		t.Fatalf("unexpected orders %v", ids)
	}
	if f.sessions.Unread("0550123456") {
		t.Fatal("expected unread flag cleared after listing")
	}

	none, err := f.orders.Mine(context.Background(), "0000000000")
	if err != nil {
		t.Fatalf("mine returned error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", none)
	}
}

func TestOrderSubmitDeliveryInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.saveOrders(t, model.Order{ID: "w1", CustomerPhone: "0550123456", Status: model.OrderStatusWaitingForFiles, Months: 12})

	info := model.DeliveryInfo{Company: " Yalidine ", TrackingNumber: "YAL-1"}
	order, err := f.orders.SubmitDeliveryInfo(ctx, "0550123456", "w1", info)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if order.DeliveryCompany != "Yalidine" || order.TrackingNumber != "YAL-1" {
		t.Fatalf("unexpected delivery fields %+v", order)
	}
	if order.Status != model.OrderStatusWaitingForFiles {
		t.Fatalf("status must not change, got %q", order.Status)
	}

	if _, err := f.orders.SubmitDeliveryInfo(ctx, "0550123456", "w1", model.DeliveryInfo{Company: "ZR", TrackingNumber: "ZR-2"}); err != nil {
		t.Fatalf("resubmit returned error: %v", err)
	}

	updates, err := f.admin.DeliveryUpdates(ctx)
	if err != nil {
		t.Fatalf("delivery updates returned error: %v", err)
	}
	if len(updates) != 1 || updates[0].TrackingNumber != "ZR-2" {
		t.Fatalf("expected one queued update with latest values, got %+v", updates)
	}
	if _, submitted := f.notifier.Counts(); submitted != 2 {
		t.Fatalf("expected two admin notifications, got %d", submitted)
	}
}

func TestOrderSubmitDeliveryInfoErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	valid := model.DeliveryInfo{Company: "Yalidine", TrackingNumber: "YAL-1"}

	tests := []struct {
		name    string
		phone   string
		orderID string
		info    model.DeliveryInfo
		want    error
	}{
		{name: "missing fields", phone: "0550123456", orderID: "1004", info: model.DeliveryInfo{Company: " "}, want: domainErrors.ErrValidation},
		{name: "foreign order", phone: "0661987654", orderID: "1004", info: valid, want: domainErrors.ErrNotFound},
		{name: "unknown order", phone: "0550123456", orderID: "nope", info: valid, want: domainErrors.ErrNotFound},
		{name: "wrong status", phone: "0661987654", orderID: "1002", info: valid, want: domainErrors.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.orders.SubmitDeliveryInfo(ctx, tt.phone, tt.orderID, tt.info); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	updates, err := f.admin.DeliveryUpdates(ctx)
	if err != nil {
		t.Fatalf("delivery updates returned error: %v", err)
	}
	if len(updates) != 0 {
		t.Fatalf("failed submissions must not queue updates, got %d", len(updates))
	}
}
