package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/store"
	testhelpers "github.com/dzinstall/storefront/internal/test"
)

var fixedNow = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store         *store.Store
	sessions      *SessionRegistry
	notifier      *testhelpers.NotifierStub
	accounts      *AccountUseCase
	orders        *OrderUseCase
	notifications *NotificationUseCase
	admin         *AdminUseCase
	payments      *PaymentUseCase
	catalog       *CatalogUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := testhelpers.NewMemoryStore()
	sessions := NewSessionRegistry()
	notifier := &testhelpers.NotifierStub{}
	engine := lifecycle.New(func() time.Time { return fixedNow })
	logger := testhelpers.DiscardLogger()
	validate := NewValidator()

	accounts := NewAccountUseCase(st, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, sessions, validate, logger)
	accounts.now = func() time.Time { return fixedNow }

	orders := NewOrderUseCase(st, engine, sessions, notifier, logger)
	orders.newID = func() string { return "order-new" }

	catalog := NewCatalogUseCase(st, validate, logger)
	catalog.newID = func() string { return "product-new" }

	return &fixture{
		store:         st,
		sessions:      sessions,
		notifier:      notifier,
		accounts:      accounts,
		orders:        orders,
		notifications: NewNotificationUseCase(st, sessions),
		admin:         NewAdminUseCase(st, engine, logger),
		payments:      NewPaymentUseCase(st),
		catalog:       catalog,
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName:        "Nadia",
		LastName:         "Haddad",
		BirthDate:        "12/04/1990",
		Phone1:           "0555123456",
		Email:            "nadia@example.com",
		Wilaya:           "وهران",
		Baladyia:         "Es Senia",
		Address:          "12 rue des Oliviers",
		CCPNumber:        "99887766",
		CCPKey:           "12",
		NIN:              "109900000000000001",
		NINExpiry:        "01/01/2030",
		IDCardFront:      "uploads/front.jpg",
		IDCardBack:       "uploads/back.jpg",
		ChequeImage:      "uploads/cheque.jpg",
		AccountStatement: "uploads/statement.pdf",
		Password:         "secret",
		ConfirmPassword:  "secret",
	}
}

func (f *fixture) saveOrders(t *testing.T, orders ...model.Order) {
	t.Helper()
	err := f.store.Update(context.Background(), func(tx *store.Tx) error {
		return tx.SaveOrders(orders)
	})
	if err != nil {
		t.Fatalf("save orders: %v", err)
	}
}

func (f *fixture) storedOrders(t *testing.T) []model.Order {
	t.Helper()
	var orders []model.Order
	err := f.store.View(context.Background(), func(tx *store.Tx) error {
		var err error
		orders, err = tx.Orders()
		return err
	})
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	return orders
}

func (f *fixture) storedUsers(t *testing.T) []model.User {
	t.Helper()
	var users []model.User
	err := f.store.View(context.Background(), func(tx *store.Tx) error {
		var err error
		users, err = tx.Users()
		return err
	})
	if err != nil {
		t.Fatalf("load users: %v", err)
	}
	return users
}
