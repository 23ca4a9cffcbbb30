package model

import "encoding/json"

// OrderStatus describes the installment application lifecycle.
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "PENDING"
	OrderStatusWaitingForFiles  OrderStatus = "WAITING_FOR_FILES"
	OrderStatusReadyForShipping OrderStatus = "READY_FOR_SHIPPING"
	OrderStatusApproved         OrderStatus = "APPROVED"
	OrderStatusRejected         OrderStatus = "REJECTED"
	OrderStatusDelivered        OrderStatus = "DELIVERED"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
)

// OrderStatuses lists every status in pipeline order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusWaitingForFiles,
	OrderStatusReadyForShipping,
	OrderStatusApproved,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusRejected,
}

var statusLabels = map[OrderStatus]string{
	OrderStatusPending:          "قيد الانتظار",
	OrderStatusWaitingForFiles:  "انتظار الملفات",
	OrderStatusReadyForShipping: "جاهز للإرسال",
	OrderStatusApproved:         "مقبول",
	OrderStatusRejected:         "مرفوض",
	OrderStatusDelivered:        "تم الإرسال",
	OrderStatusCompleted:        "تم الاستلام",
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the customer facing Arabic label.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}

// DeliveryInfo is a carrier name plus tracking number pair.
type DeliveryInfo struct {
	Company        string `json:"company" validate:"required"`
	TrackingNumber string `json:"trackingNumber" validate:"required"`
}

// Order is one installment application.
type Order struct {
	ID            string      `json:"id"`
	ProductID     string      `json:"productId"`
	ProductName   string      `json:"productName"`
	ProductImage  string      `json:"productImage"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Wilaya        string      `json:"wilaya"`
	Status        OrderStatus `json:"status"`
	Date          string      `json:"date"`
	MonthlyPrice  int64       `json:"monthlyPrice"`
	Months        int         `json:"months"`

	RejectionReason         string `json:"rejectionReason,omitempty"`
	RejectionDate           string `json:"rejectionDate,omitempty"`
	PreliminaryApprovalDate string `json:"preliminaryApprovalDate,omitempty"`
	FilesReceiptDate        string `json:"filesReceiptDate,omitempty"`
	ShippedDate             string `json:"shippedDate,omitempty"`
	ArrivalDate             string `json:"arrivalDate,omitempty"`

	// Customer to seller paperwork.
	DeliveryCompany string `json:"deliveryCompany,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`

	// Seller to customer product.
	ShippingCompany        string `json:"shippingCompany,omitempty"`
	ShippingTrackingNumber string `json:"shippingTrackingNumber,omitempty"`
}

// TotalPrice is the sum of all installments.
func (o Order) TotalPrice() int64 {
	return o.MonthlyPrice * int64(o.Months)
}

// MarshalJSON adds the derived totalPrice and the Arabic statusLabel so
// clients never recompute them.
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order
	return json.Marshal(struct {
		plain
		TotalPrice  int64  `json:"totalPrice"`
		StatusLabel string `json:"statusLabel"`
	}{plain: plain(o), TotalPrice: o.TotalPrice(), StatusLabel: o.Status.Label()})
}

// MissingDeliveryInfo reports whether the customer still owes paperwork tracking.
func (o Order) MissingDeliveryInfo() bool {
	return o.DeliveryCompany == "" || o.TrackingNumber == ""
}

// DateLayout is the day/month/year layout used for every order date stamp.
const DateLayout = "02/01/2006"
