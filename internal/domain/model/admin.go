package model

// AdminView is a back-office screen remembered between visits.
type AdminView string

const (
	AdminViewDashboard    AdminView = "dashboard"
	AdminViewApprovals    AdminView = "approvals"
	AdminViewCustomers    AdminView = "customers"
	AdminViewProducts     AdminView = "products"
	AdminViewAccounts     AdminView = "accounts"
	AdminViewBulkPayments AdminView = "bulk_payments"
)

// Valid reports whether v is a known screen.
func (v AdminView) Valid() bool {
	switch v {
	case AdminViewDashboard, AdminViewApprovals, AdminViewCustomers,
		AdminViewProducts, AdminViewAccounts, AdminViewBulkPayments:
		return true
	}
	return false
}

// Dashboard aggregates back-office counters.
type Dashboard struct {
	TotalOrders     int                 `json:"totalOrders"`
	ByStatus        map[OrderStatus]int `json:"byStatus"`
	Customers       int                 `json:"customers"`
	Products        int                 `json:"products"`
	StockUnits      int                 `json:"stockUnits"`
	DeliveryUpdates int                 `json:"deliveryUpdates"`
}
