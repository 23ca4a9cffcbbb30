package model

// PaymentLedger maps an order id to the zero-based month indices already paid.
type PaymentLedger map[string][]int

// Paid reports whether month has been recorded for orderID.
func (l PaymentLedger) Paid(orderID string, month int) bool {
	for _, m := range l[orderID] {
		if m == month {
			return true
		}
	}
	return false
}

// NextUnpaid returns the lowest unpaid month index or -1 when all are paid.
func (l PaymentLedger) NextUnpaid(orderID string, months int) int {
	for i := 0; i < months; i++ {
		if !l.Paid(orderID, i) {
			return i
		}
	}
	return -1
}

// BulkPaymentResult summarises one bulk payment import.
type BulkPaymentResult struct {
	Recorded  int      `json:"recorded"`
	Unmatched []string `json:"unmatched"`
}
