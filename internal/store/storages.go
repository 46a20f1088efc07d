package store

import (
	"context"

	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/logger"
)

// Storages aggregates every repository backed by the credential store.
type Storages struct {
	UserRepository    UserRepository
	AdminRepository   AdminRepository
	BoxRepository     BoxRepository
	SettingRepository SettingRepository
}

// NewStorages connects to the credential store, applies pending schema
// migrations, and constructs all repositories on the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		AdminRepository:   NewAdminRepository(db, log),
		BoxRepository:     NewBoxRepository(db, log),
		SettingRepository: NewSettingRepository(db, log),
	}, nil
}
