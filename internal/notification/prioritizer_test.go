package notification

import (
	"testing"

	"github.com/dzinstall/storefront/internal/domain/model"
)

const customer = "0550123456"

func order(id string, status model.OrderStatus) model.Order {
	return model.Order{ID: id, CustomerPhone: customer, Status: status}
}

func TestSelectPriorityOrder(t *testing.T) {
	cases := []struct {
		name   string
		orders []model.Order
		want   model.NotificationCategory
		wantID string
	}{
		{
			name: "completed beats everything",
			orders: []model.Order{
				order("r", model.OrderStatusRejected),
				order("f", model.OrderStatusReadyForShipping),
				order("w", model.OrderStatusWaitingForFiles),
				order("s", model.OrderStatusDelivered),
				order("c", model.OrderStatusCompleted),
			},
			want:   model.NotificationCompleted,
			wantID: "c",
		},
		{
			name: "shipped beats awaiting info",
			orders: []model.Order{
				order("w", model.OrderStatusWaitingForFiles),
				order("s", model.OrderStatusDelivered),
			},
			want:   model.NotificationShipped,
			wantID: "s",
		},
		{
			name: "awaiting info beats unseen rejection",
			orders: []model.Order{
				order("r", model.OrderStatusRejected),
				order("w", model.OrderStatusWaitingForFiles),
			},
			want:   model.NotificationAwaitingDeliveryInfo,
			wantID: "w",
		},
		{
			name: "final approval beats rejection",
			orders: []model.Order{
				order("r", model.OrderStatusRejected),
				order("f", model.OrderStatusReadyForShipping),
			},
			want:   model.NotificationFinalApproval,
			wantID: "f",
		},
		{
			name:   "rejection alone",
			orders: []model.Order{order("r", model.OrderStatusRejected)},
			want:   model.NotificationRejected,
			wantID: "r",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Select(Snapshot{CustomerPhone: customer, Orders: tc.orders})
			if !ok {
				t.Fatal("expected a notification")
			}
			if got.Category != tc.want || got.Order.ID != tc.wantID {
				t.Fatalf("expected %s/%s, got %s/%s", tc.want, tc.wantID, got.Category, got.Order.ID)
			}
		})
	}
}

func TestSelectSkipsCompleteDeliveryInfoAndForeignOrders(t *testing.T) {
	withInfo := order("w", model.OrderStatusWaitingForFiles)
	withInfo.DeliveryCompany = "Yalidine Express"
	withInfo.TrackingNumber = "YAL-123456789"
	foreign := model.Order{ID: "x", CustomerPhone: "0661987654", Status: model.OrderStatusCompleted}

	if got, ok := Select(Snapshot{CustomerPhone: customer, Orders: []model.Order{withInfo, foreign}}); ok {
		t.Fatalf("expected nothing, got %+v", got)
	}

	partial := order("p", model.OrderStatusWaitingForFiles)
	partial.DeliveryCompany = "ZR Express"
	got, ok := Select(Snapshot{CustomerPhone: customer, Orders: []model.Order{partial}})
	if !ok || got.Category != model.NotificationAwaitingDeliveryInfo {
		t.Fatalf("missing tracking number must prompt, got %+v ok=%v", got, ok)
	}
}

func TestSelectIgnoresPendingAndLegacyApproved(t *testing.T) {
	orders := []model.Order{order("p", model.OrderStatusPending), order("a", model.OrderStatusApproved)}
	if _, ok := Select(Snapshot{CustomerPhone: customer, Orders: orders}); ok {
		t.Fatal("pending and approved orders never trigger a popup")
	}
}

func TestSeenSetsSuppressForever(t *testing.T) {
	orders := []model.Order{
		order("c", model.OrderStatusCompleted),
		order("s", model.OrderStatusDelivered),
		order("f", model.OrderStatusReadyForShipping),
		order("r", model.OrderStatusRejected),
	}
	mem := model.NotificationMemory{}

	var shown []model.NotificationCategory
	for i := 0; i < 10; i++ {
		got, ok := Select(Snapshot{CustomerPhone: customer, Orders: orders, Memory: mem})
		if !ok {
			break
		}
		shown = append(shown, got.Category)
		rule, _ := RuleFor(got.Category)
		switch rule.Seen {
		case model.SeenCompleted:
			mem.SeenCompleted = AppendUnique(mem.SeenCompleted, got.Order.ID)
		case model.SeenShipped:
			mem.SeenShipped = AppendUnique(mem.SeenShipped, got.Order.ID)
		case model.SeenFinalApprovals:
			mem.SeenFinalApprovals = AppendUnique(mem.SeenFinalApprovals, got.Order.ID)
		case model.SeenRejections:
			mem.SeenRejections = AppendUnique(mem.SeenRejections, got.Order.ID)
		}
	}

	want := []model.NotificationCategory{
		model.NotificationCompleted,
		model.NotificationShipped,
		model.NotificationFinalApproval,
		model.NotificationRejected,
	}
	if len(shown) != len(want) {
		t.Fatalf("expected %v, got %v", want, shown)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, shown)
		}
	}
}

func TestSessionIgnoredResurfacesAfterReset(t *testing.T) {
	orders := []model.Order{order("w", model.OrderStatusWaitingForFiles)}
	mem := model.NotificationMemory{SessionIgnored: []string{"w"}}
	if _, ok := Select(Snapshot{CustomerPhone: customer, Orders: orders, Memory: mem}); ok {
		t.Fatal("ignored prompt must stay hidden during the session")
	}

	mem.SessionIgnored = nil
	got, ok := Select(Snapshot{CustomerPhone: customer, Orders: orders, Memory: mem})
	if !ok || got.Category != model.NotificationAwaitingDeliveryInfo {
		t.Fatalf("expected prompt after new login, got %+v", got)
	}
}

func TestRuleFor(t *testing.T) {
	rule, ok := RuleFor(model.NotificationAwaitingDeliveryInfo)
	if !ok || rule.Seen != "" {
		t.Fatalf("awaiting info must be session only, got %+v", rule)
	}
	if _, ok := RuleFor("UNKNOWN"); ok {
		t.Fatal("unexpected rule")
	}
}

func TestHasUnread(t *testing.T) {
	orders := []model.Order{
		{ID: "1", CustomerPhone: "other", Status: model.OrderStatusPending},
		{ID: "2", CustomerPhone: customer, Status: model.OrderStatusRejected},
	}
	if HasUnread(customer, orders) {
		t.Fatal("no pending order for customer")
	}
	orders = append(orders, order("3", model.OrderStatusPending))
	if !HasUnread(customer, orders) {
		t.Fatal("expected unread flag")
	}
}

func TestAppendUnique(t *testing.T) {
	ids := AppendUnique(nil, "a")
	ids = AppendUnique(ids, "a")
	ids = AppendUnique(ids, "b")
	if len(ids) != 2 {
		t.Fatalf("expected two ids, got %v", ids)
	}
}
