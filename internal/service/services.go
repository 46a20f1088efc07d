package service

import (
	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/store"
)

// Services aggregates the business-logic layer.
type Services struct {
	AuthService          AuthService
	UserDirectoryService UserDirectoryService
	BoxSelectionService  BoxSelectionService
}

// NewServices wires the service layer to the given storages. notifier
// receives a confirmation after every committed box selection and must be
// non-nil.
func NewServices(storages store.Storages, cfg config.StructuredConfig, notifier SelectionNotifier, logger *logger.Logger) *Services {
	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, storages.AdminRepository, cfg.App, cfg.Bootstrap, logger),
		UserDirectoryService: NewUserDirectoryService(storages.UserRepository, logger),
		BoxSelectionService:  NewBoxSelectionService(storages.BoxRepository, storages.UserRepository, storages.SettingRepository, notifier, logger),
	}
}
