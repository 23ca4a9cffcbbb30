package dto

import "github.com/dzinstall/storefront/internal/domain/model"

// PlaceOrderRequest selects the product to apply for.
type PlaceOrderRequest struct {
	ProductID string `json:"productId"`
}

// DeliveryInfoRequest is the carrier the customer used to post paperwork.
type DeliveryInfoRequest struct {
	Company        string `json:"company"`
	TrackingNumber string `json:"trackingNumber"`
}

// StatusRequest is an admin status change. The carrier pair is optional.
type StatusRequest struct {
	Status          model.OrderStatus `json:"status"`
	Reason          string            `json:"reason"`
	DeliveryCompany string            `json:"deliveryCompany"`
	TrackingNumber  string            `json:"trackingNumber"`
}

// DismissRequest closes one customer popup.
type DismissRequest struct {
	Category model.NotificationCategory `json:"category"`
	OrderID  string                     `json:"orderId"`
}

// AskRequest is a shopper question about a product.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse wraps the assistant reply.
type AskResponse struct {
	Answer string `json:"answer"`
}
