package service

import (
	"context"

	"github.com/pmarkota/mystery-back/models"
)

// AuthService authenticates users and admins against the credential store
// and manages the session-token lifecycle.
type AuthService interface {
	LoginUser(ctx context.Context, username, password string) (models.User, models.Token, error)
	LoginAdmin(ctx context.Context, username, password string) (models.Admin, models.Token, error)
	CreateAdmin(ctx context.Context, username, password string) (models.Admin, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// BootstrapAdmin creates the configured initial administrator when the
	// admins table is empty. Called once at startup, never over HTTP.
	BootstrapAdmin(ctx context.Context) error
}

// UserDirectoryService exposes CRUD and search operations over user records.
type UserDirectoryService interface {
	CreateUser(ctx context.Context, username, password, email string, credits int64) (models.User, error)
	GetUser(ctx context.Context, rawID string) ([]models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	SearchUsersByUsername(ctx context.Context, term string) ([]models.User, error)
	DeleteUser(ctx context.Context, rawID string) error
	UpdateUserCredits(ctx context.Context, rawID string, credits int64) (models.User, error)
}

// BoxSelectionService manages mystery boxes, the credit-deduction selection
// workflow, and the shared display settings.
type BoxSelectionService interface {
	GetBoxes(ctx context.Context) ([]models.MysteryBox, error)
	GetBox(ctx context.Context, rawID string) ([]models.MysteryBox, error)
	SubmitSelectedBoxes(ctx context.Context, userID int64, boxIDs []int64) ([]models.MysteryBox, error)
	ResetAllSelections(ctx context.Context) (int64, error)

	SetBoxColor(ctx context.Context, color string) (models.GlobalSetting, error)
	GetBoxColor(ctx context.Context) (string, error)

	GetLoginPageText(ctx context.Context) (map[string]string, error)
	UpdateLoginPageText(ctx context.Context, settings map[string]string) ([]models.GlobalSetting, error)
}

// SelectionNotifier receives a confirmation after a successful selection
// commit. Implementations must never block the request path and must never
// surface failures to the caller; delivery is best-effort.
type SelectionNotifier interface {
	NotifySelection(confirmation models.SelectionConfirmation)
}
