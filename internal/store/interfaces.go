package store

import (
	"context"

	"github.com/pmarkota/mystery-back/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	SearchUsersByUsername(ctx context.Context, term string) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	UpdateUserCredits(ctx context.Context, userID int64, credits int64) (models.User, error)
}

// AdminRepository is the data-access contract for administrator accounts.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (models.Admin, error)
	CountAdmins(ctx context.Context) (int64, error)
}

// BoxRepository is the data-access contract for mystery boxes, including the
// transactional selection workflow.
type BoxRepository interface {
	GetBoxes(ctx context.Context) ([]models.MysteryBox, error)
	GetBox(ctx context.Context, boxID int64) (models.MysteryBox, error)

	// SubmitSelection atomically marks every box in boxIDs as selected by
	// userID and deducts len(boxIDs) credits from the user's balance.
	// Either both effects are committed or neither is.
	SubmitSelection(ctx context.Context, userID int64, boxIDs []int64) ([]models.MysteryBox, int64, error)

	ResetAllSelections(ctx context.Context) (int64, error)
}

// SettingRepository is the data-access contract for global key-value
// settings. Writes are upserts keyed on the setting name.
type SettingRepository interface {
	UpsertSetting(ctx context.Context, name, value string) (models.GlobalSetting, error)
	UpsertSettings(ctx context.Context, settings map[string]string) ([]models.GlobalSetting, error)
	GetSetting(ctx context.Context, name string) (models.GlobalSetting, error)
	GetSettings(ctx context.Context, names []string) ([]models.GlobalSetting, error)
}
