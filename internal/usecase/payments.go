package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/store"
)

// PaymentSchedule is the installment ledger of one order.
type PaymentSchedule struct {
	OrderID      string `json:"orderId"`
	Months       int    `json:"months"`
	MonthlyPrice int64  `json:"monthlyPrice"`
	Paid         []int  `json:"paid"`
	Remaining    int    `json:"remaining"`
}

// BulkPaymentRow is one line of a bank statement import.
type BulkPaymentRow struct {
	CCPNumber string `json:"ccpNumber"`
	Amount    int64  `json:"amount"`
}

// PaymentMatch is the order a CCP number's next payment would be booked on.
type PaymentMatch struct {
	CustomerName string `json:"customerName"`
	OrderID      string `json:"orderId,omitempty"`
}

// PaymentUseCase records monthly installments.
type PaymentUseCase struct {
	store *store.Store
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(st *store.Store) *PaymentUseCase {
	return &PaymentUseCase{store: st}
}

// Schedule returns the ledger of any order.
func (u *PaymentUseCase) Schedule(ctx context.Context, orderID string) (PaymentSchedule, error) {
	return u.schedule(ctx, orderID, func(model.Order) bool { return true })
}

// CustomerSchedule returns the ledger of an order owned by phone.
func (u *PaymentUseCase) CustomerSchedule(ctx context.Context, phone, orderID string) (PaymentSchedule, error) {
	return u.schedule(ctx, orderID, func(o model.Order) bool { return o.CustomerPhone == phone })
}

func (u *PaymentUseCase) schedule(ctx context.Context, orderID string, visible func(model.Order) bool) (PaymentSchedule, error) {
	var out PaymentSchedule
	err := u.store.View(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		order, ok := findOrder(orders, orderID)
		if !ok || !visible(order) {
			return fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
		}
		ledger, err := tx.Payments()
		if err != nil {
			return err
		}
		out = scheduleOf(order, ledger)
		return nil
	})
	return out, err
}

// Toggle flips the paid state of one zero-based month.
func (u *PaymentUseCase) Toggle(ctx context.Context, orderID string, month int) (PaymentSchedule, error) {
	var out PaymentSchedule
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		order, ok := findOrder(orders, orderID)
		if !ok {
			return fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
		}
		if month < 0 || month >= order.Months {
			return domainErrors.NewValidationError("month", fmt.Sprintf("month must be between 0 and %d", order.Months-1))
		}

		ledger, err := tx.Payments()
		if err != nil {
			return err
		}
		paid := ledger[orderID]
		if ledger.Paid(orderID, month) {
			paid = slices.DeleteFunc(slices.Clone(paid), func(m int) bool { return m == month })
		} else {
			paid = append(slices.Clone(paid), month)
		}
		ledger[orderID] = paid

		if err := tx.SavePayments(ledger); err != nil {
			return err
		}
		out = scheduleOf(order, ledger)
		return nil
	})
	return out, err
}

// Lookup resolves a CCP number to its customer and the order the next
// payment would be booked on.
func (u *PaymentUseCase) Lookup(ctx context.Context, ccp string) (PaymentMatch, error) {
	var match PaymentMatch
	err := u.store.View(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		var ok bool
		match, ok = matchPayment(users, orders, strings.TrimSpace(ccp))
		if !ok {
			return fmt.Errorf("ccp %s: %w", ccp, domainErrors.ErrNotFound)
		}
		return nil
	})
	return match, err
}

// Bulk books the lowest unpaid month of each row's active order. Rows
// without an amount, without a known customer, without a delivered or
// completed order, or whose order is fully paid are reported as unmatched.
func (u *PaymentUseCase) Bulk(ctx context.Context, rows []BulkPaymentRow) (model.BulkPaymentResult, error) {
	result := model.BulkPaymentResult{Unmatched: []string{}}
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		ledger, err := tx.Payments()
		if err != nil {
			return err
		}

		for _, row := range rows {
			ccp := strings.TrimSpace(row.CCPNumber)
			if ccp == "" {
				continue
			}
			match, ok := matchPayment(users, orders, ccp)
			if !ok || match.OrderID == "" || row.Amount <= 0 {
				result.Unmatched = append(result.Unmatched, ccp)
				continue
			}
			order, _ := findOrder(orders, match.OrderID)
			next := ledger.NextUnpaid(order.ID, order.Months)
			if next < 0 {
				result.Unmatched = append(result.Unmatched, ccp)
				continue
			}
			ledger[order.ID] = append(slices.Clone(ledger[order.ID]), next)
			result.Recorded++
		}

		if result.Recorded == 0 {
			return nil
		}
		return tx.SavePayments(ledger)
	})
	if err != nil {
		return model.BulkPaymentResult{}, err
	}
	return result, nil
}

func matchPayment(users []model.User, orders []model.Order, ccp string) (PaymentMatch, bool) {
	for _, usr := range users {
		if usr.CCPNumber != ccp || usr.IsAdmin() {
			continue
		}
		match := PaymentMatch{CustomerName: usr.FullName()}
		for _, o := range orders {
			if o.CustomerPhone == usr.Phone1 && (o.Status == model.OrderStatusDelivered || o.Status == model.OrderStatusCompleted) {
				match.OrderID = o.ID
				break
			}
		}
		return match, true
	}
	return PaymentMatch{}, false
}

func scheduleOf(order model.Order, ledger model.PaymentLedger) PaymentSchedule {
	paid := slices.Clone(ledger[order.ID])
	if paid == nil {
		paid = []int{}
	}
	slices.Sort(paid)
	return PaymentSchedule{
		OrderID:      order.ID,
		Months:       order.Months,
		MonthlyPrice: order.MonthlyPrice,
		Paid:         paid,
		Remaining:    order.Months - len(paid),
	}
}
