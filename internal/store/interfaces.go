package store

import (
	"context"
	"encoding/json"

	"github.com/unesleaf/unesleaf-server/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUsername(ctx context.Context, id int64, username string) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// RecordRepository is the persistence boundary for user-owned point records.
type RecordRepository interface {
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	ListRecordsByUser(ctx context.Context, userID int64, limit int) ([]models.Record, error)
}

// LayerRepository reads geospatial catalog tables as GeoJSON.
type LayerRepository interface {
	GetFeatureCollection(ctx context.Context, layer models.Layer) (json.RawMessage, error)
}
