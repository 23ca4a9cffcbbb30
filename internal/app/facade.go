package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/store"
	"github.com/dzinstall/storefront/internal/usecase"
)

// StorefrontFacade routes HTTP level operations to the use cases.
type StorefrontFacade struct {
	store         *store.Store
	accounts      *usecase.AccountUseCase
	catalog       *usecase.CatalogUseCase
	orders        *usecase.OrderUseCase
	notifications *usecase.NotificationUseCase
	admin         *usecase.AdminUseCase
	payments      *usecase.PaymentUseCase
	assistant     *usecase.AssistantUseCase
}

// UseCases groups every use case the facade delegates to.
type UseCases struct {
	fx.In

	Accounts      *usecase.AccountUseCase
	Catalog       *usecase.CatalogUseCase
	Orders        *usecase.OrderUseCase
	Notifications *usecase.NotificationUseCase
	Admin         *usecase.AdminUseCase
	Payments      *usecase.PaymentUseCase
	Assistant     *usecase.AssistantUseCase
}

func NewStorefrontFacade(st *store.Store, uc UseCases) *StorefrontFacade {
	return &StorefrontFacade{
		store:         st,
		accounts:      uc.Accounts,
		catalog:       uc.Catalog,
		orders:        uc.Orders,
		notifications: uc.Notifications,
		admin:         uc.Admin,
		payments:      uc.Payments,
		assistant:     uc.Assistant,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, in usecase.RegisterInput) (model.User, string, error) {
	return f.accounts.Register(ctx, in)
}

func (f *StorefrontFacade) Login(ctx context.Context, identifier, password string) (model.User, string, error) {
	return f.accounts.Login(ctx, identifier, password)
}

func (f *StorefrontFacade) Logout(ctx context.Context, phone string) {
	f.accounts.Logout(ctx, phone)
}

func (f *StorefrontFacade) Me(ctx context.Context, phone string) (model.User, error) {
	return f.accounts.Me(ctx, phone)
}

func (f *StorefrontFacade) ParseToken(token string) (string, error) {
	return f.accounts.ParseToken(token)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id string) (model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, in usecase.ProductInput) (model.Product, error) {
	return f.catalog.Create(ctx, in)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, id string, in usecase.ProductInput) (model.Product, error) {
	return f.catalog.Update(ctx, id, in)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StorefrontFacade) AskAboutProduct(ctx context.Context, id, question string) (string, error) {
	return f.assistant.Ask(ctx, id, question)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, phone, productID string) (model.Order, error) {
	return f.orders.Place(ctx, phone, productID)
}

func (f *StorefrontFacade) MyOrders(ctx context.Context, phone string) ([]model.Order, error) {
	return f.orders.Mine(ctx, phone)
}

func (f *StorefrontFacade) SubmitDeliveryInfo(ctx context.Context, phone, orderID string, info model.DeliveryInfo) (model.Order, error) {
	return f.orders.SubmitDeliveryInfo(ctx, phone, orderID, info)
}

func (f *StorefrontFacade) OrderPayments(ctx context.Context, phone, orderID string) (usecase.PaymentSchedule, error) {
	return f.payments.CustomerSchedule(ctx, phone, orderID)
}

func (f *StorefrontFacade) Inbox(ctx context.Context, phone string) (usecase.Inbox, error) {
	return f.notifications.Inbox(ctx, phone)
}

func (f *StorefrontFacade) Dismiss(ctx context.Context, phone string, category model.NotificationCategory, orderID string) error {
	return f.notifications.Dismiss(ctx, phone, category, orderID)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.admin.Orders(ctx)
}

func (f *StorefrontFacade) OpenOrder(ctx context.Context, id string) (usecase.OrderDetails, error) {
	return f.admin.OpenOrder(ctx, id)
}

func (f *StorefrontFacade) TransitionOrder(ctx context.Context, req lifecycle.Request) (model.Order, error) {
	return f.admin.Transition(ctx, req)
}

func (f *StorefrontFacade) DeliveryUpdates(ctx context.Context) ([]model.Order, error) {
	return f.admin.DeliveryUpdates(ctx)
}

func (f *StorefrontFacade) Dashboard(ctx context.Context) (model.Dashboard, error) {
	return f.admin.Dashboard(ctx)
}

func (f *StorefrontFacade) Customers(ctx context.Context) ([]model.User, error) {
	return f.admin.Customers(ctx)
}

func (f *StorefrontFacade) CreateCustomer(ctx context.Context, in usecase.RegisterInput) (model.User, error) {
	return f.accounts.CreateCustomer(ctx, in)
}

func (f *StorefrontFacade) AdminView(ctx context.Context, phone string) (model.AdminView, error) {
	return f.admin.View(ctx, phone)
}

func (f *StorefrontFacade) SetAdminView(ctx context.Context, phone string, view model.AdminView) error {
	return f.admin.SetView(ctx, phone, view)
}

func (f *StorefrontFacade) PaymentSchedule(ctx context.Context, orderID string) (usecase.PaymentSchedule, error) {
	return f.payments.Schedule(ctx, orderID)
}

func (f *StorefrontFacade) TogglePayment(ctx context.Context, orderID string, month int) (usecase.PaymentSchedule, error) {
	return f.payments.Toggle(ctx, orderID, month)
}

func (f *StorefrontFacade) BulkPayments(ctx context.Context, rows []usecase.BulkPaymentRow) (model.BulkPaymentResult, error) {
	return f.payments.Bulk(ctx, rows)
}

func (f *StorefrontFacade) LookupPayment(ctx context.Context, ccp string) (usecase.PaymentMatch, error) {
	return f.payments.Lookup(ctx, ccp)
}

// Health checks the document backend.
func (f *StorefrontFacade) Health(ctx context.Context) error {
	return f.store.HealthCheck(ctx)
}
