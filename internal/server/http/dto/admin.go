package dto

import "github.com/dzinstall/storefront/internal/domain/model"

// ViewRequest stores the admin's current back-office screen.
type ViewRequest struct {
	View model.AdminView `json:"view"`
}

// ViewResponse returns the remembered back-office screen.
type ViewResponse struct {
	View model.AdminView `json:"view"`
}

// ToggleRequest flips one zero-based installment month.
type ToggleRequest struct {
	Month *int `json:"month"`
}

// BulkPaymentRequest is a bank statement import.
type BulkPaymentRequest struct {
	Rows []BulkPaymentRow `json:"rows"`
}

// BulkPaymentRow is one statement line.
type BulkPaymentRow struct {
	CCPNumber string `json:"ccpNumber"`
	Amount    int64  `json:"amount"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
