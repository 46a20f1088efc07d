// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pmarkota/mystery-back/internal/service"
	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allowedOrigin = "https://boxes.example.com"

// newCORSHandler builds a handler with one allowed origin and a stub box
// service so a real route can be exercised through the full middleware
// chain.
func newCORSHandler(t *testing.T) *Handler {
	t.Helper()
	boxes := &mockBoxSelectionService{
		getBoxesFn: func(_ context.Context) ([]models.MysteryBox, error) {
			return []models.MysteryBox{}, nil
		},
	}
	return newTestHandler(t, &service.Services{BoxSelectionService: boxes}, allowedOrigin)
}

// TestCORS_AllowedOrigin verifies the full header set echoed for a listed
// origin.
func TestCORS_AllowedOrigin(t *testing.T) {
	h := newCORSHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/box-selection/boxes", nil)
	req.Header.Set("Origin", allowedOrigin)
	rec := serveRouter(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

// TestCORS_DisallowedOrigin verifies unlisted origins get no CORS headers
// while the request itself is still served.
func TestCORS_DisallowedOrigin(t *testing.T) {
	h := newCORSHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/box-selection/boxes", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := serveRouter(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

// TestCORS_Preflight verifies OPTIONS requests are answered directly with
// 204 and never reach the router.
func TestCORS_Preflight(t *testing.T) {
	h := newCORSHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/box-selection/submit-selected-boxes", nil)
	req.Header.Set("Origin", allowedOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serveRouter(h, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, PATCH, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

// TestCORS_NoOriginHeader verifies same-origin requests pass through
// untouched.
func TestCORS_NoOriginHeader(t *testing.T) {
	h := newCORSHandler(t)

	rec := serveRouter(h, httptest.NewRequest(http.MethodGet, "/api/box-selection/boxes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
