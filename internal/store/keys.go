package store

import "github.com/dzinstall/storefront/internal/domain/model"

const (
	keyOrders          = "dz_orders"
	keyUsers           = "dz_users"
	keyProducts        = "dz_products"
	keyDeliveryUpdates = "dz_admin_delivery_updates"
	keyPayments        = "dz_admin_payments"
	keyAdminViewPrefix = "dz_admin_view:"
	keySeenPrefix      = "dz_seen_"
)

// SeenKey is the key of one customer's dismissed-popup set, e.g.
// dz_seen_rejections:0550123456.
func SeenKey(phone string, kind model.SeenKind) string {
	return keySeenPrefix + string(kind) + ":" + phone
}

// AdminViewKey is the key of an admin's remembered back-office screen.
func AdminViewKey(phone string) string {
	return keyAdminViewPrefix + phone
}
