package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unesleaf/unesleaf-server/internal/config"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/service"
	"github.com/unesleaf/unesleaf-server/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFn        func(ctx context.Context, id int64) (models.User, error)
	updateProfileFn  func(ctx context.Context, id int64, username string) (models.User, error)
	changePasswordFn func(ctx context.Context, id int64, currentPassword, newPassword string) error
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, id int64, username string) (models.User, error) {
	return m.updateProfileFn(ctx, id, username)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, id, currentPassword, newPassword)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockLayerService implements service.LayerService for unit tests.
type mockLayerService struct {
	listLayersFn   func() []models.Layer
	getLayerByIDFn func(ctx context.Context, id int) (json.RawMessage, error)
}

func (m *mockLayerService) ListLayers() []models.Layer {
	return m.listLayersFn()
}

func (m *mockLayerService) GetLayerByID(ctx context.Context, id int) (json.RawMessage, error) {
	return m.getLayerByIDFn(ctx, id)
}

// mockRecordService implements service.RecordService for unit tests.
type mockRecordService struct {
	createRecordFn func(ctx context.Context, record models.Record) (models.Record, error)
	listRecordsFn  func(ctx context.Context, userID int64, limit int) ([]models.Record, error)
}

func (m *mockRecordService) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	return m.createRecordFn(ctx, record)
}

func (m *mockRecordService) ListRecords(ctx context.Context, userID int64, limit int) ([]models.Record, error) {
	return m.listRecordsFn(ctx, userID, limit)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler from the given service mocks. Nil mocks are
// allowed for services the test never touches.
func newTestHandler(t *testing.T, auth service.AuthService, layers service.LayerService, records service.RecordService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:   auth,
		LayerService:  layers,
		RecordService: records,
	}
	return NewHandler(svcs, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
