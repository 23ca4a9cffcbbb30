package test

import (
	"context"
	"sync"

	"github.com/dzinstall/storefront/internal/domain/model"
)

// NotifierStub records admin notifications.
type NotifierStub struct {
	sync.Mutex
	Placed    []model.Order
	Submitted []model.Order
	Err       error
}

func (n *NotifierStub) OrderPlaced(_ context.Context, order model.Order) error {
	n.Lock()
	defer n.Unlock()
	n.Placed = append(n.Placed, order)
	return n.Err
}

func (n *NotifierStub) DeliveryInfoSubmitted(_ context.Context, order model.Order) error {
	n.Lock()
	defer n.Unlock()
	n.Submitted = append(n.Submitted, order)
	return n.Err
}

// Counts returns the number of recorded events of each kind.
func (n *NotifierStub) Counts() (placed, submitted int) {
	n.Lock()
	defer n.Unlock()
	return len(n.Placed), len(n.Submitted)
}

// AdvisorStub answers product questions with a fixed reply.
type AdvisorStub struct {
	Answer    string
	Product   model.Product
	Question  string
	CallCount int
}

func (a *AdvisorStub) Ask(_ context.Context, product model.Product, question string) string {
	a.CallCount++
	a.Product = product
	a.Question = question
	return a.Answer
}
