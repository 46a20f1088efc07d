package utils

import (
	"context"
	"testing"
)

func TestGetAdminIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminIDCtxKey, int64(7))

	id, ok := GetAdminIDFromContext(ctx)
	if !ok {
		t.Fatal("expected the admin ID to be found")
	}
	if id != 7 {
		t.Errorf("expected admin ID 7, got %d", id)
	}
}

func TestGetAdminIDFromContext_Missing(t *testing.T) {
	if _, ok := GetAdminIDFromContext(context.Background()); ok {
		t.Error("expected no admin ID in an empty context")
	}
}

func TestGetAdminIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminIDCtxKey, "7")

	if _, ok := GetAdminIDFromContext(ctx); ok {
		t.Error("expected a non-int64 value to be rejected")
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	id, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected the user ID to be found")
	}
	if id != 42 {
		t.Errorf("expected user ID 42, got %d", id)
	}
}
