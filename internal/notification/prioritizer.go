// Package notification picks the single popup a customer should see.
package notification

import "github.com/dzinstall/storefront/internal/domain/model"

// Snapshot is everything the prioritizer looks at for one customer.
type Snapshot struct {
	CustomerPhone string
	Orders        []model.Order
	Memory        model.NotificationMemory
}

// Rule matches orders for one popup category.
type Rule struct {
	Category model.NotificationCategory
	// Seen is the persisted set a dismissal goes to. Empty means session only.
	Seen    model.SeenKind
	Matches func(o model.Order, mem model.NotificationMemory) bool
}

// Rules is the fixed priority order, highest first.
var Rules = []Rule{
	{
		Category: model.NotificationCompleted,
		Seen:     model.SeenCompleted,
		Matches: func(o model.Order, mem model.NotificationMemory) bool {
			return o.Status == model.OrderStatusCompleted && !contains(mem.SeenCompleted, o.ID)
		},
	},
	{
		Category: model.NotificationShipped,
		Seen:     model.SeenShipped,
		Matches: func(o model.Order, mem model.NotificationMemory) bool {
			return o.Status == model.OrderStatusDelivered && !contains(mem.SeenShipped, o.ID)
		},
	},
	{
		Category: model.NotificationAwaitingDeliveryInfo,
		Matches: func(o model.Order, mem model.NotificationMemory) bool {
			return o.Status == model.OrderStatusWaitingForFiles &&
				o.MissingDeliveryInfo() &&
				!contains(mem.SessionIgnored, o.ID)
		},
	},
	{
		Category: model.NotificationFinalApproval,
		Seen:     model.SeenFinalApprovals,
		Matches: func(o model.Order, mem model.NotificationMemory) bool {
			return o.Status == model.OrderStatusReadyForShipping && !contains(mem.SeenFinalApprovals, o.ID)
		},
	},
	{
		Category: model.NotificationRejected,
		Seen:     model.SeenRejections,
		Matches: func(o model.Order, mem model.NotificationMemory) bool {
			return o.Status == model.OrderStatusRejected && !contains(mem.SeenRejections, o.ID)
		},
	},
}

// Select returns the first match of the highest priority rule, or false.
func Select(s Snapshot) (model.Notification, bool) {
	for _, rule := range Rules {
		for _, o := range s.Orders {
			if o.CustomerPhone != s.CustomerPhone {
				continue
			}
			if rule.Matches(o, s.Memory) {
				return model.Notification{Category: rule.Category, Order: o}, true
			}
		}
	}
	return model.Notification{}, false
}

// RuleFor returns the rule of category c.
func RuleFor(c model.NotificationCategory) (Rule, bool) {
	for _, r := range Rules {
		if r.Category == c {
			return r, true
		}
	}
	return Rule{}, false
}

// HasUnread reports whether any of the customer's orders is still pending.
func HasUnread(phone string, orders []model.Order) bool {
	for _, o := range orders {
		if o.CustomerPhone == phone && o.Status == model.OrderStatusPending {
			return true
		}
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AppendUnique adds id to ids unless already present.
func AppendUnique(ids []string, id string) []string {
	if contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
