// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows running
// multiple workers in a unified way, and the notification dispatcher that
// decouples confirmation-email delivery from the request path.
package workers

import (
	"context"

	"github.com/pmarkota/mystery-back/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// ConfirmationSender delivers a single selection confirmation.
// Implemented by notify.Mailer.
type ConfirmationSender interface {
	SendSelectionConfirmation(ctx context.Context, confirmation models.SelectionConfirmation) error
}
