// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers box-selection confirmation emails through a
// Mailgun-compatible REST API.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

const sendTimeout = 10 * time.Second

// Mailer sends confirmation emails over the provider's messages endpoint.
// It is safe for concurrent use.
type Mailer struct {
	client *utils.HTTPClient
	cfg    config.Notify
	logger *logger.Logger
}

// NewMailer constructs a Mailer from the given notification settings.
// The settings are assumed to have passed configuration validation.
func NewMailer(cfg config.Notify, logger *logger.Logger) *Mailer {
	client := utils.NewHTTPClient()
	client.SetBaseURL(cfg.BaseURL)
	client.SetBasicAuth("api", cfg.APIKey)
	client.SetTimeout(sendTimeout)

	return &Mailer{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// SendSelectionConfirmation delivers a confirmation email for a committed
// box selection. The message reports the number of boxes claimed, the box
// identifiers, and the remaining credit balance.
func (m *Mailer) SendSelectionConfirmation(ctx context.Context, confirmation models.SelectionConfirmation) error {
	log := logger.FromContext(ctx)

	resp, err := m.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"from":    m.cfg.Sender,
			"to":      confirmation.Email,
			"subject": "Box Selection Confirmation",
			"text":    confirmationText(confirmation),
			"html":    confirmationHTML(confirmation),
		}).
		Post(fmt.Sprintf("/v3/%s/messages", m.cfg.Domain))
	if err != nil {
		log.Err(err).Str("to", confirmation.Email).Msg("confirmation email request failed")
		return fmt.Errorf("confirmation email request failed: %w", err)
	}

	if resp.IsError() {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("to", confirmation.Email).
			Msg("mail provider rejected confirmation email")
		return fmt.Errorf("mail provider rejected confirmation email: status %d", resp.StatusCode())
	}

	log.Info().Str("to", confirmation.Email).Int("boxes", len(confirmation.SelectedBoxes)).Msg("confirmation email sent")
	return nil
}

func confirmationText(c models.SelectionConfirmation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s!\n", c.Username)
	sb.WriteString("Thank you for selecting mystery boxes!\n")
	sb.WriteString("Selection Details:\n")
	fmt.Fprintf(&sb, "- Number of boxes selected: %d\n", len(c.SelectedBoxes))
	fmt.Fprintf(&sb, "- Remaining credits: %d\n", c.RemainingCredits)
	sb.WriteString("Selected Boxes:\n")
	for _, box := range c.SelectedBoxes {
		fmt.Fprintf(&sb, "- Box #%d\n", box.ID)
	}
	sb.WriteString("Thank you for using our service!\n")

	return sb.String()
}

func confirmationHTML(c models.SelectionConfirmation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>User: %s has submitted a box selection</h2>", c.Username)
	sb.WriteString("<p>Thank you for selecting mystery boxes!</p>")
	sb.WriteString("<h3>Selection Details:</h3><ul>")
	fmt.Fprintf(&sb, "<li>Number of boxes selected: %d</li>", len(c.SelectedBoxes))
	fmt.Fprintf(&sb, "<li>Remaining credits: %d</li>", c.RemainingCredits)
	sb.WriteString("</ul><h3>Selected Boxes:</h3><ul>")
	for _, box := range c.SelectedBoxes {
		fmt.Fprintf(&sb, "<li>Box #%d</li>", box.ID)
	}
	sb.WriteString("</ul><p>Thank you for using our service!</p>")

	return sb.String()
}
