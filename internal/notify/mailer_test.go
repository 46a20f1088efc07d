// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfirmation() models.SelectionConfirmation {
	return models.SelectionConfirmation{
		Username:         "alice",
		Email:            "alice@example.com",
		RemainingCredits: 8,
		SelectedBoxes:    []models.MysteryBox{{ID: 1}, {ID: 3}},
	}
}

func newTestMailer(t *testing.T, status int, capture *http.Request, form *map[string][]string) *Mailer {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if capture != nil {
			*capture = *r
		}
		if form != nil {
			*form = r.PostForm
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	cfg := config.Notify{
		Enabled: true,
		BaseURL: srv.URL,
		APIKey:  "key-secret",
		Domain:  "mg.example.com",
		Sender:  "Mystery Boxes <noreply@mg.example.com>",
	}
	return NewMailer(cfg, logger.Nop())
}

func TestMailer_SendSelectionConfirmation(t *testing.T) {
	var captured http.Request
	var form map[string][]string
	mailer := newTestMailer(t, http.StatusOK, &captured, &form)

	err := mailer.SendSelectionConfirmation(context.Background(), testConfirmation())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/v3/mg.example.com/messages", captured.URL.Path)

	// provider authentication uses basic auth with the fixed "api" user
	username, password, ok := captured.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "api", username)
	assert.Equal(t, "key-secret", password)

	require.NotNil(t, form)
	assert.Equal(t, []string{"Mystery Boxes <noreply@mg.example.com>"}, form["from"])
	assert.Equal(t, []string{"alice@example.com"}, form["to"])
	assert.Equal(t, []string{"Box Selection Confirmation"}, form["subject"])

	require.Len(t, form["text"], 1)
	text := form["text"][0]
	assert.Contains(t, text, "Hello alice!")
	assert.Contains(t, text, "Number of boxes selected: 2")
	assert.Contains(t, text, "Remaining credits: 8")
	assert.Contains(t, text, "- Box #1")
	assert.Contains(t, text, "- Box #3")

	require.Len(t, form["html"], 1)
	assert.Contains(t, form["html"][0], "<li>Box #3</li>")
}

func TestMailer_ProviderRejection(t *testing.T) {
	mailer := newTestMailer(t, http.StatusUnauthorized, nil, nil)

	err := mailer.SendSelectionConfirmation(context.Background(), testConfirmation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestMailer_UnreachableProvider(t *testing.T) {
	cfg := config.Notify{
		Enabled: true,
		BaseURL: "http://127.0.0.1:1",
		APIKey:  "key-secret",
		Domain:  "mg.example.com",
		Sender:  "noreply@mg.example.com",
	}
	mailer := NewMailer(cfg, logger.Nop())

	err := mailer.SendSelectionConfirmation(context.Background(), testConfirmation())
	assert.Error(t, err)
}
