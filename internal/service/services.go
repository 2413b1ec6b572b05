package service

import (
	"github.com/unesleaf/unesleaf-server/internal/config"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/store"
)

// Services bundles every application service consumed by the HTTP layer.
type Services struct {
	AuthService   AuthService
	LayerService  LayerService
	RecordService RecordService
}

// NewServices wires all services over the given repositories.
func NewServices(storages *store.Storages, cfg config.Auth, log *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, log),
		LayerService:  NewLayerService(storages.LayerRepository, log),
		RecordService: NewRecordService(storages.RecordRepository, log),
	}
}
