// Package store maps the domain collections onto a document store and
// supplies the built-in dataset when a collection is missing or corrupt.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/domain/repository"
)

// Store is the single entry point to persisted state. Writers are
// serialized in-process so a read-modify-write never interleaves.
type Store struct {
	docs   repository.DocumentStore
	logger *slog.Logger
	mu     sync.Mutex
}

// New wraps docs.
func New(docs repository.DocumentStore, logger *slog.Logger) *Store {
	return &Store{docs: docs, logger: logger}
}

// View runs fn against a consistent snapshot.
func (s *Store) View(ctx context.Context, fn func(*Tx) error) error {
	return s.docs.View(ctx, func(raw repository.DocumentTx) error {
		return fn(&Tx{ctx: ctx, raw: raw, logger: s.logger})
	})
}

// Update runs fn with write access. Nothing is persisted when fn fails.
func (s *Store) Update(ctx context.Context, fn func(*Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.Update(ctx, func(raw repository.DocumentTx) error {
		return fn(&Tx{ctx: ctx, raw: raw, logger: s.logger})
	})
}

// Seed writes the built-in dataset under every collection key that is
// absent or unreadable. Existing data is left alone.
func (s *Store) Seed(ctx context.Context) error {
	return s.Update(ctx, func(tx *Tx) error {
		seeds := []struct {
			key   string
			value func() any
			probe func([]byte) error
		}{
			{keyProducts, func() any { return SeedProducts() }, probe[[]model.Product]},
			{keyUsers, func() any { return SeedUsers() }, probe[[]model.User]},
			{keyOrders, func() any { return SeedOrders() }, probe[[]model.Order]},
		}
		for _, seed := range seeds {
			raw, err := tx.raw.Read(ctx, seed.key)
			if err == nil && seed.probe(raw) == nil {
				continue
			}
			if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
				return err
			}
			if err := tx.put(seed.key, seed.value()); err != nil {
				return err
			}
			s.logger.Info("seeded collection", slog.String("key", seed.key))
		}
		return nil
	})
}

// HealthCheck reports whether the backing store is reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.docs.HealthCheck(ctx)
}

func probe[T any](raw []byte) error {
	var v T
	return json.Unmarshal(raw, &v)
}

// Tx is a typed view over one document transaction.
type Tx struct {
	ctx    context.Context
	raw    repository.DocumentTx
	logger *slog.Logger
}

// load decodes key into dst. It reports false when the key is absent or
// malformed, leaving dst untouched.
func (t *Tx) load(key string, dst any) (bool, error) {
	raw, err := t.raw.Read(t.ctx, key)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.logger.Warn("discarding malformed document", slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

func (t *Tx) put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return t.raw.Write(t.ctx, key, raw)
}

// Orders returns every order, newest first.
func (t *Tx) Orders() ([]model.Order, error) {
	var orders []model.Order
	ok, err := t.load(keyOrders, &orders)
	if err != nil {
		return nil, err
	}
	if !ok || orders == nil {
		return SeedOrders(), nil
	}
	return orders, nil
}

func (t *Tx) SaveOrders(orders []model.Order) error {
	return t.put(keyOrders, nonNil(orders))
}

func (t *Tx) Products() ([]model.Product, error) {
	var products []model.Product
	ok, err := t.load(keyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok || products == nil {
		return SeedProducts(), nil
	}
	return products, nil
}

func (t *Tx) SaveProducts(products []model.Product) error {
	return t.put(keyProducts, nonNil(products))
}

func (t *Tx) Users() ([]model.User, error) {
	var users []model.User
	ok, err := t.load(keyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok || users == nil {
		return SeedUsers(), nil
	}
	return users, nil
}

func (t *Tx) SaveUsers(users []model.User) error {
	return t.put(keyUsers, nonNil(users))
}

// Seen returns the dismissed order ids of one kind for a customer.
func (t *Tx) Seen(phone string, kind model.SeenKind) ([]string, error) {
	return t.ids(SeenKey(phone, kind))
}

func (t *Tx) SaveSeen(phone string, kind model.SeenKind, ids []string) error {
	return t.put(SeenKey(phone, kind), nonNil(ids))
}

// Memory assembles the persisted part of a customer's notification memory.
func (t *Tx) Memory(phone string) (model.NotificationMemory, error) {
	var mem model.NotificationMemory
	targets := map[model.SeenKind]*[]string{
		model.SeenRejections:     &mem.SeenRejections,
		model.SeenFinalApprovals: &mem.SeenFinalApprovals,
		model.SeenShipped:        &mem.SeenShipped,
		model.SeenCompleted:      &mem.SeenCompleted,
	}
	for kind, dst := range targets {
		ids, err := t.Seen(phone, kind)
		if err != nil {
			return model.NotificationMemory{}, err
		}
		*dst = ids
	}
	return mem, nil
}

// DeliveryUpdates returns the order ids whose delivery info an admin has not opened yet.
func (t *Tx) DeliveryUpdates() ([]string, error) {
	return t.ids(keyDeliveryUpdates)
}

func (t *Tx) SaveDeliveryUpdates(ids []string) error {
	return t.put(keyDeliveryUpdates, nonNil(ids))
}

// AdminView returns the remembered screen, defaulting to the dashboard.
func (t *Tx) AdminView(phone string) (model.AdminView, error) {
	var view model.AdminView
	ok, err := t.load(AdminViewKey(phone), &view)
	if err != nil {
		return "", err
	}
	if !ok || !view.Valid() {
		return model.AdminViewDashboard, nil
	}
	return view, nil
}

// SaveAdminView stores the selected screen of phone.
func (t *Tx) SaveAdminView(phone string, view model.AdminView) error {
	return t.put(AdminViewKey(phone), view)
}

// ResetAdminView forgets the remembered screen so the next read yields the dashboard.
func (t *Tx) ResetAdminView(phone string) error {
	if err := t.raw.Delete(t.ctx, AdminViewKey(phone)); err != nil {
		return fmt.Errorf("reset admin view: %w", err)
	}
	return nil
}

func (t *Tx) Payments() (model.PaymentLedger, error) {
	ledger := model.PaymentLedger{}
	ok, err := t.load(keyPayments, &ledger)
	if err != nil {
		return nil, err
	}
	if !ok || ledger == nil {
		return model.PaymentLedger{}, nil
	}
	return ledger, nil
}

func (t *Tx) SavePayments(ledger model.PaymentLedger) error {
	if ledger == nil {
		ledger = model.PaymentLedger{}
	}
	return t.put(keyPayments, ledger)
}

func (t *Tx) ids(key string) ([]string, error) {
	var ids []string
	ok, err := t.load(key, &ids)
	if err != nil {
		return nil, err
	}
	if !ok || ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
