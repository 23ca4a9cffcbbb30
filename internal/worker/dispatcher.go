// Package worker delivers admin notifications in the background.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/usecase"
)

var (
	// ErrQueueFull is returned when the dispatcher cannot accept more events.
	ErrQueueFull = errors.New("notification queue full")
	// ErrStopped is returned for events enqueued after Stop.
	ErrStopped = errors.New("notification dispatcher stopped")
)

const deliveryTimeout = 10 * time.Second

type eventKind int

const (
	eventOrderPlaced eventKind = iota
	eventDeliveryInfo
)

func (k eventKind) String() string {
	if k == eventOrderPlaced {
		return "order_placed"
	}
	return "delivery_info"
}

type event struct {
	kind  eventKind
	order model.Order
}

// Dispatcher queues notifications and hands them to target from a pool of
// workers, so callers never wait on the notification channel.
type Dispatcher struct {
	target  usecase.Notifier
	workers int
	logger  *slog.Logger

	jobs    chan event
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatcher constructs a dispatcher worker pool.
func NewDispatcher(target usecase.Notifier, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		target:  target,
		workers: workers,
		logger:  logger,
		jobs:    make(chan event, queueSize),
	}
}

// Start launches the workers. Events queued before Start are delivered.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop refuses new events and waits for queued ones to be delivered. When
// ctx expires first, in-flight deliveries are canceled.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.jobs)
	cancel := d.cancel
	d.mu.Unlock()

	if cancel == nil {
		return nil
	}
	defer cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		cancel()
		<-done
		return ctx.Err()
	}
}

func (d *Dispatcher) OrderPlaced(_ context.Context, order model.Order) error {
	return d.enqueue(event{kind: eventOrderPlaced, order: order})
}

func (d *Dispatcher) DeliveryInfoSubmitted(_ context.Context, order model.Order) error {
	return d.enqueue(event{kind: eventDeliveryInfo, order: order})
}

func (d *Dispatcher) enqueue(ev event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrStopped
	}
	select {
	case d.jobs <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for ev := range d.jobs {
		d.deliver(ctx, ev)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev event) {
	if ctx.Err() != nil {
		d.logger.Warn("notification dropped", slog.String("event", ev.kind.String()), slog.String("order_id", ev.order.ID))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	var err error
	switch ev.kind {
	case eventOrderPlaced:
		err = d.target.OrderPlaced(ctx, ev.order)
	case eventDeliveryInfo:
		err = d.target.DeliveryInfoSubmitted(ctx, ev.order)
	}
	if err != nil {
		d.logger.Error("notification delivery failed",
			slog.String("event", ev.kind.String()),
			slog.String("order_id", ev.order.ID),
			slog.String("error", err.Error()),
		)
	}
}
