package store

import (
	"context"

	"github.com/unesleaf/unesleaf-server/internal/config"
	"github.com/unesleaf/unesleaf-server/internal/logger"
)

// Storages bundles every repository backed by the shared connection pool.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
	LayerRepository  LayerRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories over the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecordRepository: NewRecordRepository(db, log),
		LayerRepository:  NewLayerRepository(db, log),
	}, nil
}
