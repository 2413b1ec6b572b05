package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unesleaf/unesleaf-server/internal/config"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/store"
	"github.com/unesleaf/unesleaf-server/models"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByIDFn       func(ctx context.Context, id int64) (models.User, error)
	updateUsernameFn func(ctx context.Context, id int64, username string) (models.User, error)
	updatePasswordFn func(ctx context.Context, id int64, passwordHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepository) UpdateUsername(ctx context.Context, id int64, username string) (models.User, error) {
	return m.updateUsernameFn(ctx, id, username)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.updatePasswordFn(ctx, id, passwordHash)
}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-secret",
		TokenIssuer:   "unesleaf",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost, // keep tests fast
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAuthConfig(), logger.Nop())
}

// Registering and then logging in with the same credentials must succeed,
// and the issued token must decode to the same identity claims.
func TestAuthService_RegisterThenLogin(t *testing.T) {
	var stored models.User

	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			stored.ID = 1
			return stored, nil
		},
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			if email != stored.Email {
				return models.User{}, store.ErrUserNotFound
			}
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	registered, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Username: " alice ",
		Email:    " A@X.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.Equal(t, "a@x.com", registered.Email, "email must be normalized")
	assert.NotEqual(t, "secret1", stored.PasswordHash, "password must never be stored in plaintext")

	loggedIn, err := svc.Login(ctx, models.LoginRequest{Email: "A@X.COM", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)

	token, err := svc.CreateToken(ctx, loggedIn)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(1), parsed.Claims.UserID)
	assert.Equal(t, "alice", parsed.Claims.Username)
	assert.Equal(t, "a@x.com", parsed.Claims.Email)
}

func TestAuthService_RegisterInvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	cases := []models.RegisterRequest{
		{Username: "", Email: "a@x.com", Password: "secret1"},
		{Username: "alice", Email: "", Password: "secret1"},
		{Username: "alice", Email: "a@x.com", Password: "short"},
		{Username: "   ", Email: "a@x.com", Password: "secret1"},
	}
	for _, req := range cases {
		_, err := svc.RegisterUser(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "request %+v", req)
	}
}

// Both an unknown email and a wrong password must surface the same error so
// the API response cannot be used to probe which accounts exist.
func TestAuthService_LoginGenericFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			if email == "a@x.com" {
				return models.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_GetUserStripsHash(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "alice", PasswordHash: "$2a$10$hash"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_UpdateProfileValidation(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, 1, "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateProfile(ctx, 1, " ab ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_UpdateProfileTrims(t *testing.T) {
	repo := &mockUserRepository{
		updateUsernameFn: func(_ context.Context, id int64, username string) (models.User, error) {
			return models.User{ID: id, Username: username}, nil
		},
	}
	svc := newTestAuthService(repo)

	updated, err := svc.UpdateProfile(context.Background(), 1, "  bob  ")
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Username)
}

func TestAuthService_ChangePasswordWrongCurrent(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	updateCalled := false
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, PasswordHash: string(hash)}, nil
		},
		updatePasswordFn: func(_ context.Context, _ int64, _ string) error {
			updateCalled = true
			return nil
		},
	}
	svc := newTestAuthService(repo)

	err = svc.ChangePassword(context.Background(), 1, "wrong-password", "newsecret")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, updateCalled, "stored hash must remain untouched on mismatch")
}

func TestAuthService_ChangePasswordSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	var newHash string
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, PasswordHash: string(hash)}, nil
		},
		updatePasswordFn: func(_ context.Context, _ int64, passwordHash string) error {
			newHash = passwordHash
			return nil
		},
	}
	svc := newTestAuthService(repo)

	require.NoError(t, svc.ChangePassword(context.Background(), 1, "secret1", "newsecret"))
	require.NotEmpty(t, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newsecret")))
}

func TestAuthService_ChangePasswordValidation(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangePassword(ctx, 1, "", "newsecret"), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.ChangePassword(ctx, 1, "secret1", "short"), ErrInvalidDataProvided)
}

func TestAuthService_ParseTokenExpired(t *testing.T) {
	repo := &mockUserRepository{}
	expired := NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-secret",
		TokenIssuer:   "unesleaf",
		TokenDuration: -time.Hour, // already expired at issuance
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())

	token, err := expired.CreateToken(context.Background(), models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	svc := newTestAuthService(repo)
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseTokenInvalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTokenIsExpired), "malformed tokens must not be reported as expired")
}
