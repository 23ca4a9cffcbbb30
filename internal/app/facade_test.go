package app

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/server/http/handlers"
	testhelpers "github.com/dzinstall/storefront/internal/test"
	"github.com/dzinstall/storefront/internal/usecase"
)

type facadeEnv struct {
	facade   *StorefrontFacade
	notifier *testhelpers.NotifierStub
	advisor  *testhelpers.AdvisorStub
}

func newFacade(t *testing.T) facadeEnv {
	t.Helper()

	st := testhelpers.NewMemoryStore()
	logger := testhelpers.DiscardLogger()
	sessions := usecase.NewSessionRegistry()
	validate := usecase.NewValidator()
	engine := lifecycle.New(func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) })
	notifier := &testhelpers.NotifierStub{}
	advisor := &testhelpers.AdvisorStub{Answer: "جواب"}

	facade := NewStorefrontFacade(st, UseCases{
		Accounts:      usecase.NewAccountUseCase(st, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, sessions, validate, logger),
		Catalog:       usecase.NewCatalogUseCase(st, validate, logger),
		Orders:        usecase.NewOrderUseCase(st, engine, sessions, notifier, logger),
		Notifications: usecase.NewNotificationUseCase(st, sessions),
		Admin:         usecase.NewAdminUseCase(st, engine, logger),
		Payments:      usecase.NewPaymentUseCase(st),
		Assistant:     usecase.NewAssistantUseCase(st, advisor),
	})

	if err := facade.accounts.Bootstrap(context.Background(), usecase.BootstrapOptions{
		AdminPhone:    "0550999999",
		AdminPassword: "admin",
		SeedPassword:  "seed",
	}); err != nil {
		t.Fatalf("bootstrap returned error: %v", err)
	}

	return facadeEnv{facade: facade, notifier: notifier, advisor: advisor}
}

func TestStorefrontFacadeCustomerJourney(t *testing.T) {
	env := newFacade(t)
	f := env.facade
	ctx := context.Background()

	usr, token, err := f.Login(ctx, "karim.benz@gmail.com", "seed")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	phone, err := f.ParseToken(token)
	if err != nil || phone != usr.Phone1 {
		t.Fatalf("token round trip failed: %q %v", phone, err)
	}

	order, err := f.PlaceOrder(ctx, phone, "3")
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if placed, _ := env.notifier.Counts(); placed != 1 {
		t.Fatalf("expected admin notification, got %d", placed)
	}

	mine, err := f.MyOrders(ctx, phone)
	if err != nil {
		t.Fatalf("my orders returned error: %v", err)
	}
	if len(mine) != 3 || mine[0].ID != order.ID {
		t.Fatalf("expected new order first among 3, got %d", len(mine))
	}

	if _, err := f.TransitionOrder(ctx, lifecycle.Request{OrderID: order.ID, Status: model.OrderStatusWaitingForFiles}); err != nil {
		t.Fatalf("transition returned error: %v", err)
	}

	inbox, err := f.Inbox(ctx, phone)
	if err != nil {
		t.Fatalf("inbox returned error: %v", err)
	}
	if inbox.Notification == nil || inbox.Notification.Category != model.NotificationAwaitingDeliveryInfo {
		t.Fatalf("expected awaiting info prompt, got %+v", inbox.Notification)
	}

	if _, err := f.SubmitDeliveryInfo(ctx, phone, order.ID, model.DeliveryInfo{Company: "Yalidine", TrackingNumber: "Y-1"}); err != nil {
		t.Fatalf("submit delivery info returned error: %v", err)
	}
	updates, err := f.DeliveryUpdates(ctx)
	if err != nil || len(updates) != 1 {
		t.Fatalf("expected one delivery update, got %d (%v)", len(updates), err)
	}
	if _, err := f.OpenOrder(ctx, order.ID); err != nil {
		t.Fatalf("open order returned error: %v", err)
	}

	for _, status := range []model.OrderStatus{model.OrderStatusReadyForShipping, model.OrderStatusDelivered} {
		if _, err := f.TransitionOrder(ctx, lifecycle.Request{OrderID: order.ID, Status: status}); err != nil {
			t.Fatalf("transition to %s returned error: %v", status, err)
		}
	}

	match, err := f.LookupPayment(ctx, usr.CCPNumber)
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if match.OrderID != order.ID {
		t.Fatalf("expected payments booked on %s, got %+v", order.ID, match)
	}

	if _, err := f.BulkPayments(ctx, []usecase.BulkPaymentRow{{CCPNumber: usr.CCPNumber, Amount: order.MonthlyPrice}}); err != nil {
		t.Fatalf("bulk payments returned error: %v", err)
	}
	schedule, err := f.OrderPayments(ctx, phone, order.ID)
	if err != nil {
		t.Fatalf("order payments returned error: %v", err)
	}
	if len(schedule.Paid) != 1 || schedule.Paid[0] != 0 {
		t.Fatalf("expected first month paid, got %v", schedule.Paid)
	}

	if _, err := f.TogglePayment(ctx, order.ID, 0); err != nil {
		t.Fatalf("toggle returned error: %v", err)
	}
	schedule, err = f.PaymentSchedule(ctx, order.ID)
	if err != nil || len(schedule.Paid) != 0 {
		t.Fatalf("expected toggle to clear month 0, got %v (%v)", schedule.Paid, err)
	}

	f.Logout(ctx, phone)
}

func TestStorefrontFacadeAccounts(t *testing.T) {
	env := newFacade(t)
	f := env.facade
	ctx := context.Background()

	in := usecase.RegisterInput{
		FirstName: "Nadia", LastName: "Haddad", BirthDate: "12/04/1990",
		Phone1: "0555123456", Email: "nadia@example.com", Wilaya: "وهران",
		Baladyia: "Es Senia", Address: "Rue 1", CCPNumber: "99887766", CCPKey: "12",
		NIN: "1", NINExpiry: "01/01/2030", IDCardFront: "f", IDCardBack: "b",
		ChequeImage: "c", AccountStatement: "s", Password: "pw", ConfirmPassword: "pw",
	}
	if _, _, err := f.Register(ctx, in); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, err := f.CreateCustomer(ctx, in); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate, got %v", err)
	}

	me, err := f.Me(ctx, "0550999999")
	if err != nil || !me.IsAdmin() {
		t.Fatalf("expected admin profile, got %+v (%v)", me, err)
	}

	customers, err := f.Customers(ctx)
	if err != nil || len(customers) != 5 {
		t.Fatalf("expected 5 customers, got %d (%v)", len(customers), err)
	}

	if err := f.SetAdminView(ctx, "0550999999", model.AdminViewCustomers); err != nil {
		t.Fatalf("set view returned error: %v", err)
	}
	if view, err := f.AdminView(ctx, "0550999999"); err != nil || view != model.AdminViewCustomers {
		t.Fatalf("expected customers view, got %q (%v)", view, err)
	}
}

func TestStorefrontFacadeCatalog(t *testing.T) {
	env := newFacade(t)
	f := env.facade
	ctx := context.Background()

	product, err := f.CreateProduct(ctx, usecase.ProductInput{
		Name: "Iris TV", Brand: "Iris", TotalPrice: 60000, Months: 6,
		Images: []string{"https://cdn.example.com/tv.jpg"}, Stock: 2,
	})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}
	if product.Plan.MonthlyPrice != 10000 {
		t.Fatalf("unexpected monthly price %d", product.Plan.MonthlyPrice)
	}

	if _, err := f.UpdateProduct(ctx, product.ID, usecase.ProductInput{
		Name: "Iris TV 2", Brand: "Iris", TotalPrice: 60000, Months: 6,
		Images: []string{"https://cdn.example.com/tv.jpg"},
	}); err != nil {
		t.Fatalf("update product returned error: %v", err)
	}
	got, err := f.Product(ctx, product.ID)
	if err != nil || got.Name != "Iris TV 2" {
		t.Fatalf("expected updated product, got %+v (%v)", got, err)
	}

	answer, err := f.AskAboutProduct(ctx, product.ID, "ضمان؟")
	if err != nil || answer != "جواب" {
		t.Fatalf("unexpected answer %q (%v)", answer, err)
	}
	if env.advisor.Product.Name != "Iris TV 2" {
		t.Fatalf("advisor received %q", env.advisor.Product.Name)
	}

	if err := f.DeleteProduct(ctx, product.ID); err != nil {
		t.Fatalf("delete product returned error: %v", err)
	}
	products, err := f.Products(ctx)
	if err != nil || len(products) != 5 {
		t.Fatalf("expected seeded catalog back, got %d (%v)", len(products), err)
	}

	dash, err := f.Dashboard(ctx)
	if err != nil || dash.Products != 5 {
		t.Fatalf("unexpected dashboard %+v (%v)", dash, err)
	}
}

func TestStorefrontFacadeOrdersAndHealth(t *testing.T) {
	env := newFacade(t)
	f := env.facade
	ctx := context.Background()

	orders, err := f.AllOrders(ctx)
	if err != nil || len(orders) != 4 {
		t.Fatalf("expected seeded orders, got %d (%v)", len(orders), err)
	}

	if err := f.Dismiss(ctx, "0770112233", model.NotificationRejected, "1003"); err != nil {
		t.Fatalf("dismiss returned error: %v", err)
	}

	if err := f.Health(ctx); err != nil {
		t.Fatalf("health returned error: %v", err)
	}
}

var _ handlers.StorefrontFacade = (*StorefrontFacade)(nil)
