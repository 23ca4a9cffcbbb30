package handlers

import (
	"context"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/usecase"
)

// AccountFacade describes sign-up, sign-in and profile capabilities.
type AccountFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (model.User, string, error)
	Login(ctx context.Context, identifier, password string) (model.User, string, error)
	Logout(ctx context.Context, phone string)
	Me(ctx context.Context, phone string) (model.User, error)
	ParseToken(token string) (string, error)
}

// CatalogFacade exposes the product list and the product assistant.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, in usecase.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, in usecase.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AskAboutProduct(ctx context.Context, id, question string) (string, error)
}

// OrderFacade encapsulates customer order operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, phone, productID string) (model.Order, error)
	MyOrders(ctx context.Context, phone string) ([]model.Order, error)
	SubmitDeliveryInfo(ctx context.Context, phone, orderID string, info model.DeliveryInfo) (model.Order, error)
	OrderPayments(ctx context.Context, phone, orderID string) (usecase.PaymentSchedule, error)
}

// NotificationFacade selects and dismisses customer popups.
type NotificationFacade interface {
	Inbox(ctx context.Context, phone string) (usecase.Inbox, error)
	Dismiss(ctx context.Context, phone string, category model.NotificationCategory, orderID string) error
}

// AdminFacade drives the back office.
type AdminFacade interface {
	AllOrders(ctx context.Context) ([]model.Order, error)
	OpenOrder(ctx context.Context, id string) (usecase.OrderDetails, error)
	TransitionOrder(ctx context.Context, req lifecycle.Request) (model.Order, error)
	DeliveryUpdates(ctx context.Context) ([]model.Order, error)
	Dashboard(ctx context.Context) (model.Dashboard, error)
	Customers(ctx context.Context) ([]model.User, error)
	CreateCustomer(ctx context.Context, in usecase.RegisterInput) (model.User, error)
	AdminView(ctx context.Context, phone string) (model.AdminView, error)
	SetAdminView(ctx context.Context, phone string, view model.AdminView) error
}

// PaymentFacade records installment payments.
type PaymentFacade interface {
	PaymentSchedule(ctx context.Context, orderID string) (usecase.PaymentSchedule, error)
	TogglePayment(ctx context.Context, orderID string, month int) (usecase.PaymentSchedule, error)
	BulkPayments(ctx context.Context, rows []usecase.BulkPaymentRow) (model.BulkPaymentResult, error)
	LookupPayment(ctx context.Context, ccp string) (usecase.PaymentMatch, error)
}

// HealthFacade reports backend availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AccountFacade
	CatalogFacade
	OrderFacade
	NotificationFacade
	AdminFacade
	PaymentFacade
	HealthFacade
}
