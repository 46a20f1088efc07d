// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pmarkota/mystery-back/internal/app"
	"github.com/pmarkota/mystery-back/internal/service"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUserManagementHandler wires a handler whose admin routes accept
// signedToken and delegate to the given user directory mock.
func newUserManagementHandler(t *testing.T, users service.UserDirectoryService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{
		AuthService:          &mockAuthService{parseTokenFn: adminParseToken(signedToken, 1)},
		UserDirectoryService: users,
	})
}

// adminRequest builds a request carrying the accepted admin bearer token.
func adminRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer "+signedToken)
	return req
}

// userManagementResponse is the generic success envelope with user rows.
type userManagementResponse struct {
	Message string        `json:"message"`
	Data    []models.User `json:"data"`
}

func TestCreateUser_Success(t *testing.T) {
	users := &mockUserDirectoryService{
		createUserFn: func(_ context.Context, username, password, email string, credits int64) (models.User, error) {
			require.Equal(t, "bob", username)
			require.Equal(t, "secret", password)
			require.Equal(t, "bob@example.com", email)
			require.Equal(t, int64(5), credits)
			return models.User{ID: 11, Username: username, Email: email, Credits: credits}, nil
		},
	}
	h := newUserManagementHandler(t, users)

	rec := serveRouter(h, adminRequest(http.MethodPost, "/api/user-management/admin/create-user",
		`{"username":"bob","password":"secret","email":"bob@example.com","credits":5}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp userManagementResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, app.MsgUserCreated, resp.Message)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(11), resp.Data[0].ID)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	users := &mockUserDirectoryService{
		createUserFn: func(_ context.Context, _, _, _ string, _ int64) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	h := newUserManagementHandler(t, users)

	rec := serveRouter(h, adminRequest(http.MethodPost, "/api/user-management/admin/create-user",
		`{"username":"bob","password":"secret","email":"bob@example.com"}`))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, store.ErrUsernameAlreadyExists.Error(), resp.Error)
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	h := newUserManagementHandler(t, &mockUserDirectoryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user-management/admin/create-user",
		strings.NewReader(`{"username":"bob","password":"secret","email":"b@e.c"}`))
	rec := serveRouter(h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestGetUser_AcceptsStringAndNumericIDs verifies both JSON identifier
// encodings reach the service as the same raw string.
func TestGetUser_AcceptsStringAndNumericIDs(t *testing.T) {
	for _, body := range []string{`{"id":42}`, `{"id":"42"}`} {
		var gotID string
		users := &mockUserDirectoryService{
			getUserFn: func(_ context.Context, rawID string) ([]models.User, error) {
				gotID = rawID
				return []models.User{{ID: 42, Username: "bob"}}, nil
			},
		}
		h := newUserManagementHandler(t, users)

		rec := serveRouter(h, adminRequest(http.MethodPost, "/api/user-management/admin/get-user", body))

		require.Equal(t, http.StatusOK, rec.Code, "body=%s", body)
		assert.Equal(t, "42", gotID, "body=%s", body)
	}
}

// TestGetUser_UnknownID verifies that an unknown identifier reports success
// with an empty row set rather than an error.
func TestGetUser_UnknownID(t *testing.T) {
	users := &mockUserDirectoryService{
		getUserFn: func(_ context.Context, _ string) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
	h := newUserManagementHandler(t, users)

	rec := serveRouter(h, adminRequest(http.MethodPost, "/api/user-management/admin/get-user", `{"id":404}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp userManagementResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Data)
}

func TestGetAllUsers(t *testing.T) {
	users := &mockUserDirectoryService{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}, nil
		},
	}
	h := newUserManagementHandler(t, users)

	rec := serveRouter(h, adminRequest(http.MethodGet, "/api/user-management/admin/get-all-users", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp userManagementResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, app.MsgUsersFetched, resp.Message)
	assert.Len(t, resp.Data, 2)
}

func TestSearchUsersByUsername(t *testing.T) {
	users := &mockUserDirectoryService{
		searchUsersFn: func(_ context.Context, term string) ([]models.User, error) {
			require.Equal(t, "li", term)
			return []models.User{{ID: 1, Username: "alice"}}, nil
		},
	}
	h := newUserManagementHandler(t, users)

	rec := serveRouter(h, adminRequest(http.MethodPost, "/api/user-management/admin/search-users-by-username",
		`{"username":"li"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp userManagementResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "alice", resp.Data[0].Username)
}

func TestDeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := &mockUserDirectoryService{
			deleteUserFn: func(_ context.Context, rawID string) error {
				require.Equal(t, "7", rawID)
				return nil
			},
		}
		h := newUserManagementHandler(t, users)

		rec := serveRouter(h, adminRequest(http.MethodDelete, "/api/user-management/admin/delete-user", `{"id":7}`))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.Response
		decodeBody(t, rec, &resp)
		assert.Equal(t, app.MsgUserDeleted, resp.Message)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := &mockUserDirectoryService{
			deleteUserFn: func(_ context.Context, _ string) error {
				return store.ErrNoUserWasFound
			},
		}
		h := newUserManagementHandler(t, users)

		rec := serveRouter(h, adminRequest(http.MethodDelete, "/api/user-management/admin/delete-user", `{"id":404}`))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateUserCredits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := &mockUserDirectoryService{
			updateUserCreditsFn: func(_ context.Context, rawID string, credits int64) (models.User, error) {
				require.Equal(t, "7", rawID)
				require.Equal(t, int64(25), credits)
				return models.User{ID: 7, Username: "bob", Credits: 25}, nil
			},
		}
		h := newUserManagementHandler(t, users)

		rec := serveRouter(h, adminRequest(http.MethodPut, "/api/user-management/admin/update-user-credits",
			`{"id":7,"credits":25}`))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp userManagementResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, app.MsgUserCreditsUpdated, resp.Message)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, int64(25), resp.Data[0].Credits)
	})

	t.Run("negative balance rejected", func(t *testing.T) {
		users := &mockUserDirectoryService{
			updateUserCreditsFn: func(_ context.Context, _ string, _ int64) (models.User, error) {
				return models.User{}, service.ErrInvalidInput
			},
		}
		h := newUserManagementHandler(t, users)

		rec := serveRouter(h, adminRequest(http.MethodPut, "/api/user-management/admin/update-user-credits",
			`{"id":7,"credits":-5}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
