// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender collects every confirmation handed to it. block, when
// non-nil, is received from before each send so tests can stall delivery.
type recordingSender struct {
	mu    sync.Mutex
	sent  []models.SelectionConfirmation
	err   error
	block chan struct{}
}

func (s *recordingSender) SendSelectionConfirmation(_ context.Context, confirmation models.SelectionConfirmation) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, confirmation)
	return s.err
}

func (s *recordingSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func confirmationFor(email string) models.SelectionConfirmation {
	return models.SelectionConfirmation{
		Username:         "alice",
		Email:            email,
		RemainingCredits: 8,
		SelectedBoxes:    []models.MysteryBox{{ID: 1}, {ID: 2}},
	}
}

func TestNotificationDispatcher_DeliversQueuedConfirmations(t *testing.T) {
	sender := &recordingSender{}
	dispatcher := NewNotificationDispatcher(sender, 4, logger.Nop())
	dispatcher.Run()

	dispatcher.NotifySelection(confirmationFor("a@example.com"))
	dispatcher.NotifySelection(confirmationFor("b@example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))

	require.Equal(t, 2, sender.sentCount())
	assert.Equal(t, "a@example.com", sender.sent[0].Email)
	assert.Equal(t, "b@example.com", sender.sent[1].Email)
}

// TestNotificationDispatcher_DropsWhenQueueFull verifies enqueueing never
// blocks the caller once the queue has no room left.
func TestNotificationDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	dispatcher := NewNotificationDispatcher(sender, 1, logger.Nop())
	dispatcher.Run()

	// first confirmation is picked up by the blocked delivery goroutine,
	// second fills the queue, third must be dropped without blocking
	dispatcher.NotifySelection(confirmationFor("a@example.com"))
	dispatcher.NotifySelection(confirmationFor("b@example.com"))

	done := make(chan struct{})
	go func() {
		dispatcher.NotifySelection(confirmationFor("dropped@example.com"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifySelection blocked on a full queue")
	}

	close(sender.block)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))

	assert.LessOrEqual(t, sender.sentCount(), 2)
	for _, c := range sender.sent {
		assert.NotEqual(t, "dropped@example.com", c.Email)
	}
}

// TestNotificationDispatcher_SendFailuresAreSwallowed verifies a failing
// sender never stops the delivery loop.
func TestNotificationDispatcher_SendFailuresAreSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	dispatcher := NewNotificationDispatcher(sender, 4, logger.Nop())
	dispatcher.Run()

	dispatcher.NotifySelection(confirmationFor("a@example.com"))
	dispatcher.NotifySelection(confirmationFor("b@example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))

	assert.Equal(t, 2, sender.sentCount())
}

// TestNotificationDispatcher_ShutdownTimeout verifies Shutdown gives up when
// the backlog cannot drain in time.
func TestNotificationDispatcher_ShutdownTimeout(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	defer close(sender.block)

	dispatcher := NewNotificationDispatcher(sender, 4, logger.Nop())
	dispatcher.Run()
	dispatcher.NotifySelection(confirmationFor("a@example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, dispatcher.Shutdown(ctx), context.DeadlineExceeded)
}

// TestNotificationDispatcher_ShutdownIsIdempotent verifies repeated calls do
// not panic on a double close.
func TestNotificationDispatcher_ShutdownIsIdempotent(t *testing.T) {
	dispatcher := NewNotificationDispatcher(&recordingSender{}, 4, logger.Nop())
	dispatcher.Run()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))
	require.NoError(t, dispatcher.Shutdown(ctx))
}

func TestNoopNotifier(t *testing.T) {
	// must accept confirmations without side effects
	NoopNotifier{}.NotifySelection(confirmationFor("a@example.com"))
}

func TestWorkers_RunsEveryWorker(t *testing.T) {
	first := &countingWorker{}
	second := &countingWorker{}

	NewWorkers(first, second).Run()

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}

type countingWorker struct {
	runs int
}

func (w *countingWorker) Run() {
	w.runs++
}
