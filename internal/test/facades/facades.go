// Package facades holds HTTP facade stubs for handler and router tests.
package facades

import (
	"context"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/usecase"
)

// AccountStub simulates sign-up and sign-in.
type AccountStub struct {
	RegisterFn func(context.Context, usecase.RegisterInput) (model.User, string, error)
	LoginFn    func(context.Context, string, string) (model.User, string, error)
	MeFn       func(context.Context, string) (model.User, error)
	ParseFn    func(string) (string, error)
	LoggedOut  *[]string
}

func (s AccountStub) Register(ctx context.Context, in usecase.RegisterInput) (model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return model.User{Phone1: in.Phone1, Role: model.RoleCustomer}, "token", nil
}

func (s AccountStub) Login(ctx context.Context, identifier, password string) (model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, identifier, password)
	}
	return model.User{Phone1: identifier}, "token", nil
}

func (s AccountStub) Logout(_ context.Context, phone string) {
	if s.LoggedOut != nil {
		*s.LoggedOut = append(*s.LoggedOut, phone)
	}
}

// Me returns a customer unless MeFn says otherwise.
func (s AccountStub) Me(ctx context.Context, phone string) (model.User, error) {
	if s.MeFn != nil {
		return s.MeFn(ctx, phone)
	}
	return model.User{Phone1: phone, Role: model.RoleCustomer}, nil
}

// ParseToken accepts any token as phone "0555000000".
func (s AccountStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "0555000000", nil
}

// CatalogStub simulates the product list.
type CatalogStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, string) (model.Product, error)
	CreateFn   func(context.Context, usecase.ProductInput) (model.Product, error)
	UpdateFn   func(context.Context, string, usecase.ProductInput) (model.Product, error)
	DeleteFn   func(context.Context, string) error
	AskFn      func(context.Context, string, string) (string, error)
}

func (s CatalogStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "1"}}, nil
}

func (s CatalogStub) Product(ctx context.Context, id string) (model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return model.Product{ID: id}, nil
}

func (s CatalogStub) CreateProduct(ctx context.Context, in usecase.ProductInput) (model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return model.Product{ID: "new", Name: in.Name}, nil
}

func (s CatalogStub) UpdateProduct(ctx context.Context, id string, in usecase.ProductInput) (model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in)
	}
	return model.Product{ID: id, Name: in.Name}, nil
}

func (s CatalogStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s CatalogStub) AskAboutProduct(ctx context.Context, id, question string) (string, error) {
	if s.AskFn != nil {
		return s.AskFn(ctx, id, question)
	}
	return "answer", nil
}

// OrderStub simulates customer order operations.
type OrderStub struct {
	PlaceFn    func(context.Context, string, string) (model.Order, error)
	MineFn     func(context.Context, string) ([]model.Order, error)
	DeliveryFn func(context.Context, string, string, model.DeliveryInfo) (model.Order, error)
	PaymentsFn func(context.Context, string, string) (usecase.PaymentSchedule, error)
}

func (s OrderStub) PlaceOrder(ctx context.Context, phone, productID string) (model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, phone, productID)
	}
	return model.Order{ID: "o1", ProductID: productID, CustomerPhone: phone, Status: model.OrderStatusPending}, nil
}

func (s OrderStub) MyOrders(ctx context.Context, phone string) ([]model.Order, error) {
	if s.MineFn != nil {
		return s.MineFn(ctx, phone)
	}
	return []model.Order{}, nil
}

func (s OrderStub) SubmitDeliveryInfo(ctx context.Context, phone, orderID string, info model.DeliveryInfo) (model.Order, error) {
	if s.DeliveryFn != nil {
		return s.DeliveryFn(ctx, phone, orderID, info)
	}
	return model.Order{ID: orderID, DeliveryCompany: info.Company, TrackingNumber: info.TrackingNumber}, nil
}

func (s OrderStub) OrderPayments(ctx context.Context, phone, orderID string) (usecase.PaymentSchedule, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, phone, orderID)
	}
	return usecase.PaymentSchedule{OrderID: orderID, Paid: []int{}}, nil
}

// NotificationStub simulates the popup inbox.
type NotificationStub struct {
	InboxFn   func(context.Context, string) (usecase.Inbox, error)
	DismissFn func(context.Context, string, model.NotificationCategory, string) error
}

func (s NotificationStub) Inbox(ctx context.Context, phone string) (usecase.Inbox, error) {
	if s.InboxFn != nil {
		return s.InboxFn(ctx, phone)
	}
	return usecase.Inbox{}, nil
}

func (s NotificationStub) Dismiss(ctx context.Context, phone string, category model.NotificationCategory, orderID string) error {
	if s.DismissFn != nil {
		return s.DismissFn(ctx, phone, category, orderID)
	}
	return nil
}

// AdminStub simulates back-office operations.
type AdminStub struct {
	OrdersFn          func(context.Context) ([]model.Order, error)
	OpenFn            func(context.Context, string) (usecase.OrderDetails, error)
	TransitionFn      func(context.Context, lifecycle.Request) (model.Order, error)
	DeliveryUpdatesFn func(context.Context) ([]model.Order, error)
	DashboardFn       func(context.Context) (model.Dashboard, error)
	CustomersFn       func(context.Context) ([]model.User, error)
	CreateCustomerFn  func(context.Context, usecase.RegisterInput) (model.User, error)
	ViewFn            func(context.Context, string) (model.AdminView, error)
	SetViewFn         func(context.Context, string, model.AdminView) error
}

func (s AdminStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{}, nil
}

func (s AdminStub) OpenOrder(ctx context.Context, id string) (usecase.OrderDetails, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx, id)
	}
	return usecase.OrderDetails{Order: model.Order{ID: id}}, nil
}

func (s AdminStub) TransitionOrder(ctx context.Context, req lifecycle.Request) (model.Order, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, req)
	}
	return model.Order{ID: req.OrderID, Status: req.Status}, nil
}

func (s AdminStub) DeliveryUpdates(ctx context.Context) ([]model.Order, error) {
	if s.DeliveryUpdatesFn != nil {
		return s.DeliveryUpdatesFn(ctx)
	}
	return []model.Order{}, nil
}

func (s AdminStub) Dashboard(ctx context.Context) (model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return model.Dashboard{}, nil
}

func (s AdminStub) Customers(ctx context.Context) ([]model.User, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.User{}, nil
}

func (s AdminStub) CreateCustomer(ctx context.Context, in usecase.RegisterInput) (model.User, error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, in)
	}
	return model.User{Phone1: in.Phone1, Role: model.RoleCustomer}, nil
}

func (s AdminStub) AdminView(ctx context.Context, phone string) (model.AdminView, error) {
	if s.ViewFn != nil {
		return s.ViewFn(ctx, phone)
	}
	return model.AdminViewDashboard, nil
}

func (s AdminStub) SetAdminView(ctx context.Context, phone string, view model.AdminView) error {
	if s.SetViewFn != nil {
		return s.SetViewFn(ctx, phone, view)
	}
	return nil
}

// PaymentStub simulates the installment ledger.
type PaymentStub struct {
	ScheduleFn func(context.Context, string) (usecase.PaymentSchedule, error)
	ToggleFn   func(context.Context, string, int) (usecase.PaymentSchedule, error)
	BulkFn     func(context.Context, []usecase.BulkPaymentRow) (model.BulkPaymentResult, error)
	LookupFn   func(context.Context, string) (usecase.PaymentMatch, error)
}

func (s PaymentStub) PaymentSchedule(ctx context.Context, orderID string) (usecase.PaymentSchedule, error) {
	if s.ScheduleFn != nil {
		return s.ScheduleFn(ctx, orderID)
	}
	return usecase.PaymentSchedule{OrderID: orderID, Paid: []int{}}, nil
}

func (s PaymentStub) TogglePayment(ctx context.Context, orderID string, month int) (usecase.PaymentSchedule, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, orderID, month)
	}
	return usecase.PaymentSchedule{OrderID: orderID, Paid: []int{month}}, nil
}

func (s PaymentStub) BulkPayments(ctx context.Context, rows []usecase.BulkPaymentRow) (model.BulkPaymentResult, error) {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, rows)
	}
	return model.BulkPaymentResult{Recorded: len(rows), Unmatched: []string{}}, nil
}

func (s PaymentStub) LookupPayment(ctx context.Context, ccp string) (usecase.PaymentMatch, error) {
	if s.LookupFn != nil {
		return s.LookupFn(ctx, ccp)
	}
	return usecase.PaymentMatch{CustomerName: "Customer"}, nil
}

// HealthStub reports a configurable backend state.
type HealthStub struct {
	Err error
}

func (s HealthStub) Health(context.Context) error {
	return s.Err
}

// StorefrontStub aggregates facade stubs for HTTP layer tests.
type StorefrontStub struct {
	AccountStub
	CatalogStub
	OrderStub
	NotificationStub
	AdminStub
	PaymentStub
	HealthStub
}
