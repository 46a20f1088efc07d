// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
)

// defaultQueueSize is used when the configured queue size is zero or
// negative.
const defaultQueueSize = 64

// NotificationDispatcher queues selection confirmations and delivers them
// through a ConfirmationSender on a background goroutine.
//
// Enqueueing never blocks: when the queue is full the confirmation is
// dropped with a warning. Delivery is strictly best-effort; a failed send
// is logged and forgotten.
type NotificationDispatcher struct {
	sender ConfirmationSender
	queue  chan models.SelectionConfirmation
	logger *logger.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewNotificationDispatcher constructs a dispatcher with a queue of the
// given capacity. Call Run to start delivery and Shutdown to drain.
func NewNotificationDispatcher(sender ConfirmationSender, queueSize int, logger *logger.Logger) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &NotificationDispatcher{
		sender: sender,
		queue:  make(chan models.SelectionConfirmation, queueSize),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// NotifySelection enqueues a confirmation for background delivery.
// It never blocks and never reports an error to the caller.
func (d *NotificationDispatcher) NotifySelection(confirmation models.SelectionConfirmation) {
	select {
	case d.queue <- confirmation:
	default:
		d.logger.Warn().
			Str("email", confirmation.Email).
			Msg("notification queue full, confirmation dropped")
	}
}

// Run starts the delivery goroutine. It returns immediately; the goroutine
// exits once Shutdown closes the queue and the backlog is drained.
func (d *NotificationDispatcher) Run() {
	go func() {
		defer close(d.done)
		for confirmation := range d.queue {
			if err := d.sender.SendSelectionConfirmation(context.Background(), confirmation); err != nil {
				d.logger.Err(err).Str("email", confirmation.Email).Msg("confirmation delivery failed")
			}
		}
	}()
}

// Shutdown closes the queue and waits for the backlog to drain or for ctx
// to expire, whichever comes first. Safe to call more than once.
func (d *NotificationDispatcher) Shutdown(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoopNotifier discards every confirmation. It is injected when outbound
// notifications are disabled.
type NoopNotifier struct{}

// NotifySelection discards the confirmation.
func (NoopNotifier) NotifySelection(models.SelectionConfirmation) {}
