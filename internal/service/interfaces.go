package service

import (
	"context"
	"encoding/json"

	"github.com/unesleaf/unesleaf-server/models"
)

// AuthService handles the account lifecycle and the JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, username string) (models.User, error)
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// LayerService exposes the static geospatial catalog and its GeoJSON
// rendering.
type LayerService interface {
	ListLayers() []models.Layer
	GetLayerByID(ctx context.Context, id int) (json.RawMessage, error)
}

// RecordService validates and persists user-owned point records.
type RecordService interface {
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	ListRecords(ctx context.Context, userID int64, limit int) ([]models.Record, error)
}
