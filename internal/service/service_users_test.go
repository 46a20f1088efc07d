package service

import (
	"context"
	"testing"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/mock"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserDirectoryService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserDirectoryService(users, logger.Nop())
	ctx := context.Background()

	t.Run("hashes the password and keeps the starting balance", func(t *testing.T) {
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user models.User) (models.User, error) {
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, int64(10), user.Credits)
				assert.True(t, utils.CheckPassword(user.PasswordHash, "secret"))
				user.ID = 1
				return user, nil
			})

		created, err := svc.CreateUser(ctx, "alice", "secret", "alice@example.com", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "", "secret", "a@b.c", 0)
		assert.ErrorIs(t, err, ErrMissingField)

		_, err = svc.CreateUser(ctx, "alice", "secret", "", 0)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("negative starting balance", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "alice", "secret", "a@b.c", -1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate username surfaces the store sentinel", func(t *testing.T) {
		users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		_, err := svc.CreateUser(ctx, "alice", "secret", "a@b.c", 0)
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})
}

func TestUserDirectoryService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserDirectoryService(users, logger.Nop())
	ctx := context.Background()

	t.Run("found user is returned as a one-element slice", func(t *testing.T) {
		users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1, Username: "alice"}, nil)

		result, err := svc.GetUser(ctx, "1")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "alice", result[0].Username)
	})

	t.Run("unknown user yields an empty slice, not an error", func(t *testing.T) {
		users.EXPECT().GetUser(ctx, int64(404)).Return(models.User{}, store.ErrNoUserWasFound)

		result, err := svc.GetUser(ctx, "404")
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("malformed identifiers", func(t *testing.T) {
		for _, rawID := range []string{"", "abc", "1.5", "-3", "0"} {
			_, err := svc.GetUser(ctx, rawID)
			assert.ErrorIs(t, err, ErrInvalidInput, "rawID=%q", rawID)
		}
	})
}

func TestUserDirectoryService_SearchUsersByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserDirectoryService(users, logger.Nop())
	ctx := context.Background()

	t.Run("empty term is rejected", func(t *testing.T) {
		_, err := svc.SearchUsersByUsername(ctx, "   ")
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("term is trimmed before search", func(t *testing.T) {
		users.EXPECT().SearchUsersByUsername(ctx, "li").Return([]models.User{{ID: 1, Username: "alice"}}, nil)

		result, err := svc.SearchUsersByUsername(ctx, "  li ")
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("no matches is an empty result, not an error", func(t *testing.T) {
		users.EXPECT().SearchUsersByUsername(ctx, "zzz").Return([]models.User{}, nil)

		result, err := svc.SearchUsersByUsername(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestUserDirectoryService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserDirectoryService(users, logger.Nop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users.EXPECT().DeleteUser(ctx, int64(1)).Return(nil)

		require.NoError(t, svc.DeleteUser(ctx, "1"))
	})

	t.Run("unknown user surfaces the store sentinel", func(t *testing.T) {
		users.EXPECT().DeleteUser(ctx, int64(404)).Return(store.ErrNoUserWasFound)

		err := svc.DeleteUser(ctx, "404")
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		err := svc.DeleteUser(ctx, "abc")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUserDirectoryService_UpdateUserCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserDirectoryService(users, logger.Nop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users.EXPECT().UpdateUserCredits(ctx, int64(1), int64(50)).Return(models.User{ID: 1, Credits: 50}, nil)

		updated, err := svc.UpdateUserCredits(ctx, "1", 50)
		require.NoError(t, err)
		assert.Equal(t, int64(50), updated.Credits)
	})

	t.Run("negative balance is rejected before the store is touched", func(t *testing.T) {
		_, err := svc.UpdateUserCredits(ctx, "1", -5)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
