package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/notification"
	"github.com/dzinstall/storefront/internal/store"
)

// Inbox is what a customer's client polls for: at most one popup plus the
// unread-orders badge.
type Inbox struct {
	Notification *model.Notification `json:"notification"`
	HasUnread    bool                `json:"hasUnreadOrders"`
}

// NotificationUseCase evaluates and dismisses customer popups.
type NotificationUseCase struct {
	store    *store.Store
	sessions *SessionRegistry
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(st *store.Store, sessions *SessionRegistry) *NotificationUseCase {
	return &NotificationUseCase{store: st, sessions: sessions}
}

// Inbox selects the highest priority popup for phone. Admins never get one.
func (u *NotificationUseCase) Inbox(ctx context.Context, phone string) (Inbox, error) {
	var inbox Inbox
	err := u.store.View(ctx, func(tx *store.Tx) error {
		customer, err := findUser(tx, phone)
		if err != nil {
			return err
		}
		if customer.IsAdmin() {
			return nil
		}

		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		mem, err := tx.Memory(phone)
		if err != nil {
			return err
		}
		mem.SessionIgnored = u.sessions.Ignored(phone)

		if n, ok := notification.Select(notification.Snapshot{CustomerPhone: phone, Orders: orders, Memory: mem}); ok {
			inbox.Notification = &n
		}
		inbox.HasUnread = u.sessions.UnreadOr(phone, notification.HasUnread(phone, orders))
		return nil
	})
	return inbox, err
}

// Dismiss records that phone closed the popup of category for orderID.
// The order must currently be in the state that raises that popup; a popup
// already dismissed may be dismissed again. Awaiting-info prompts are only
// ignored for the current session, every other category is remembered for good.
func (u *NotificationUseCase) Dismiss(ctx context.Context, phone string, category model.NotificationCategory, orderID string) error {
	rule, ok := notification.RuleFor(category)
	if !ok {
		return domainErrors.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}

	return u.store.Update(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		order, found := findOrder(orders, orderID)
		if !found || order.CustomerPhone != phone {
			return fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
		}
		if !rule.Matches(order, model.NotificationMemory{}) {
			return domainErrors.NewValidationError("category",
				fmt.Sprintf("order %s has no %s notification", orderID, category))
		}

		if rule.Seen == "" {
			u.sessions.Ignore(phone, orderID)
			return nil
		}

		seen, err := tx.Seen(phone, rule.Seen)
		if err != nil {
			return err
		}
		return tx.SaveSeen(phone, rule.Seen, notification.AppendUnique(seen, orderID))
	})
}
