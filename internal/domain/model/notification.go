package model

// NotificationCategory identifies one customer popup kind.
type NotificationCategory string

const (
	NotificationCompleted            NotificationCategory = "COMPLETED"
	NotificationShipped              NotificationCategory = "SHIPPED"
	NotificationAwaitingDeliveryInfo NotificationCategory = "AWAITING_DELIVERY_INFO"
	NotificationFinalApproval        NotificationCategory = "FINAL_APPROVAL"
	NotificationRejected             NotificationCategory = "REJECTED"
)

// SeenKind names one persisted "already shown" set.
type SeenKind string

const (
	SeenRejections     SeenKind = "rejections"
	SeenFinalApprovals SeenKind = "final_approvals"
	SeenShipped        SeenKind = "shipped_orders"
	SeenCompleted      SeenKind = "completed_orders"
)

// NotificationMemory is the per-customer record of dismissed popups.
type NotificationMemory struct {
	SeenRejections     []string `json:"seenRejections"`
	SeenFinalApprovals []string `json:"seenFinalApprovals"`
	SeenShipped        []string `json:"seenShipped"`
	SeenCompleted      []string `json:"seenCompleted"`
	// SessionIgnored lives only as long as the login session.
	SessionIgnored []string `json:"-"`
}

// Notification is the single popup selected for a customer.
type Notification struct {
	Category NotificationCategory `json:"category"`
	Order    Order                `json:"order"`
}
