// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/service"
	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginUserFn   func(ctx context.Context, username, password string) (models.User, models.Token, error)
	loginAdminFn  func(ctx context.Context, username, password string) (models.Admin, models.Token, error)
	createAdminFn func(ctx context.Context, username, password string) (models.Admin, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	bootstrapFn   func(ctx context.Context) error
}

func (m *mockAuthService) LoginUser(ctx context.Context, username, password string) (models.User, models.Token, error) {
	return m.loginUserFn(ctx, username, password)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, username, password string) (models.Admin, models.Token, error) {
	return m.loginAdminFn(ctx, username, password)
}

func (m *mockAuthService) CreateAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	return m.createAdminFn(ctx, username, password)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) BootstrapAdmin(ctx context.Context) error {
	return m.bootstrapFn(ctx)
}

// mockUserDirectoryService implements service.UserDirectoryService for unit
// tests.
type mockUserDirectoryService struct {
	createUserFn        func(ctx context.Context, username, password, email string, credits int64) (models.User, error)
	getUserFn           func(ctx context.Context, rawID string) ([]models.User, error)
	getAllUsersFn       func(ctx context.Context) ([]models.User, error)
	searchUsersFn       func(ctx context.Context, term string) ([]models.User, error)
	deleteUserFn        func(ctx context.Context, rawID string) error
	updateUserCreditsFn func(ctx context.Context, rawID string, credits int64) (models.User, error)
}

func (m *mockUserDirectoryService) CreateUser(ctx context.Context, username, password, email string, credits int64) (models.User, error) {
	return m.createUserFn(ctx, username, password, email, credits)
}

func (m *mockUserDirectoryService) GetUser(ctx context.Context, rawID string) ([]models.User, error) {
	return m.getUserFn(ctx, rawID)
}

func (m *mockUserDirectoryService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserDirectoryService) SearchUsersByUsername(ctx context.Context, term string) ([]models.User, error) {
	return m.searchUsersFn(ctx, term)
}

func (m *mockUserDirectoryService) DeleteUser(ctx context.Context, rawID string) error {
	return m.deleteUserFn(ctx, rawID)
}

func (m *mockUserDirectoryService) UpdateUserCredits(ctx context.Context, rawID string, credits int64) (models.User, error) {
	return m.updateUserCreditsFn(ctx, rawID, credits)
}

// mockBoxSelectionService implements service.BoxSelectionService for unit
// tests.
type mockBoxSelectionService struct {
	getBoxesFn            func(ctx context.Context) ([]models.MysteryBox, error)
	getBoxFn              func(ctx context.Context, rawID string) ([]models.MysteryBox, error)
	submitFn              func(ctx context.Context, userID int64, boxIDs []int64) ([]models.MysteryBox, error)
	resetFn               func(ctx context.Context) (int64, error)
	setBoxColorFn         func(ctx context.Context, color string) (models.GlobalSetting, error)
	getBoxColorFn         func(ctx context.Context) (string, error)
	getLoginPageTextFn    func(ctx context.Context) (map[string]string, error)
	updateLoginPageTextFn func(ctx context.Context, settings map[string]string) ([]models.GlobalSetting, error)
}

func (m *mockBoxSelectionService) GetBoxes(ctx context.Context) ([]models.MysteryBox, error) {
	return m.getBoxesFn(ctx)
}

func (m *mockBoxSelectionService) GetBox(ctx context.Context, rawID string) ([]models.MysteryBox, error) {
	return m.getBoxFn(ctx, rawID)
}

func (m *mockBoxSelectionService) SubmitSelectedBoxes(ctx context.Context, userID int64, boxIDs []int64) ([]models.MysteryBox, error) {
	return m.submitFn(ctx, userID, boxIDs)
}

func (m *mockBoxSelectionService) ResetAllSelections(ctx context.Context) (int64, error) {
	return m.resetFn(ctx)
}

func (m *mockBoxSelectionService) SetBoxColor(ctx context.Context, color string) (models.GlobalSetting, error) {
	return m.setBoxColorFn(ctx, color)
}

func (m *mockBoxSelectionService) GetBoxColor(ctx context.Context) (string, error) {
	return m.getBoxColorFn(ctx)
}

func (m *mockBoxSelectionService) GetLoginPageText(ctx context.Context) (map[string]string, error) {
	return m.getLoginPageTextFn(ctx)
}

func (m *mockBoxSelectionService) UpdateLoginPageText(ctx context.Context, settings map[string]string) ([]models.GlobalSetting, error) {
	return m.updateLoginPageTextFn(ctx, settings)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services with the listed
// CORS origins allowed.
func newTestHandler(t *testing.T, services *service.Services, origins ...string) *Handler {
	t.Helper()
	cfg := config.Server{
		HTTPAddress:    "localhost:8080",
		AllowedOrigins: origins,
	}
	return NewHandler(services, cfg, logger.Nop())
}

// adminParseToken returns a ParseToken stub accepting exactly wantToken and
// yielding an admin session for adminID.
func adminParseToken(wantToken string, adminID int64) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != wantToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		token := models.Token{SubjectID: adminID}
		token.Role = models.RoleAdmin
		return token, nil
	}
}

// decodeBody unmarshals the recorded response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// serveRouter runs the request through the fully initialised chi router so
// middleware and routing participate in the test.
func serveRouter(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
