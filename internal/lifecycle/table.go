package lifecycle

import "github.com/dzinstall/storefront/internal/domain/model"

// change is the working state of a single transition.
type change struct {
	before model.Order
	after  model.Order
	reason string
	today  string
	stock  int
}

type effect func(c *change)

var (
	stampPreliminaryApproval = effect(func(c *change) {
		stampOnce(&c.after.PreliminaryApprovalDate, c.today)
	})
	stampFilesReceipt = effect(func(c *change) {
		stampOnce(&c.after.FilesReceiptDate, c.today)
	})
	stampRejection = effect(func(c *change) {
		stampOnce(&c.after.RejectionDate, c.today)
	})
	recordReason = effect(func(c *change) {
		c.after.RejectionReason = c.reason
	})
	// Stock moves only when the matching date is stamped for the first time,
	// so repeating DELIVERED or COMPLETED leaves inventory alone.
	ship = effect(func(c *change) {
		if c.before.ShippedDate == "" {
			c.after.ShippedDate = c.today
			c.stock++
		}
	})
	receive = effect(func(c *change) {
		if c.before.ArrivalDate == "" {
			c.after.ArrivalDate = c.today
			c.stock--
		}
	})
)

var rejection = []effect{stampRejection, recordReason}

// table lists every accepted transition and the effects it triggers.
// Re-entering the current status is accepted; write-once guards keep it idempotent.
var table = map[model.OrderStatus]map[model.OrderStatus][]effect{
	model.OrderStatusPending: {
		model.OrderStatusPending:         nil,
		model.OrderStatusWaitingForFiles: {stampPreliminaryApproval},
		model.OrderStatusRejected:        rejection,
	},
	model.OrderStatusWaitingForFiles: {
		model.OrderStatusWaitingForFiles:  {stampPreliminaryApproval},
		model.OrderStatusReadyForShipping: {stampFilesReceipt},
		model.OrderStatusRejected:         rejection,
	},
	model.OrderStatusReadyForShipping: {
		model.OrderStatusReadyForShipping: {stampFilesReceipt},
		model.OrderStatusDelivered:        {ship},
		model.OrderStatusRejected:         rejection,
	},
	// APPROVED only exists on legacy records and behaves like READY_FOR_SHIPPING.
	model.OrderStatusApproved: {
		model.OrderStatusApproved:  nil,
		model.OrderStatusDelivered: {ship},
		model.OrderStatusRejected:  rejection,
	},
	model.OrderStatusDelivered: {
		model.OrderStatusDelivered: {ship},
		model.OrderStatusCompleted: {receive},
		model.OrderStatusRejected:  rejection,
	},
	model.OrderStatusCompleted: {
		model.OrderStatusCompleted: {receive},
	},
	model.OrderStatusRejected: {
		model.OrderStatusRejected: rejection,
	},
}

func lookup(from, to model.OrderStatus) ([]effect, bool) {
	targets, ok := table[from]
	if !ok {
		return nil, false
	}
	effects, ok := targets[to]
	return effects, ok
}

// Next lists the statuses reachable from s, in pipeline order.
func Next(s model.OrderStatus) []model.OrderStatus {
	targets := table[s]
	out := make([]model.OrderStatus, 0, len(targets))
	for _, candidate := range model.OrderStatuses {
		if candidate == s {
			continue
		}
		if _, ok := targets[candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out
}

func stampOnce(field *string, today string) {
	if *field == "" {
		*field = today
	}
}
