package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/unesleaf/unesleaf-server/internal/config"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/store"
	"github.com/unesleaf/unesleaf-server/internal/utils"
	"github.com/unesleaf/unesleaf-server/models"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted password length on registration
// and password change.
const minPasswordLength = 6

// minUsernameLength is the minimum accepted username length after trimming
// on profile update.
const minUsernameLength = 3

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the cost factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is trimmed and the email is trimmed and lower-cased before
// persistence, so lookups by email are case-insensitive. The password is
// hashed with bcrypt; uniqueness of username and email is left to the
// database constraint rather than a racy pre-check.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty after normalization or
//     the password is shorter than six characters.
//   - store.ErrUserAlreadyExists (wrapped) on a uniqueness violation.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" || email == "" || len(req.Password) < minPasswordLength {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by normalized email and password.
//
// Both an unknown email and a wrong password surface as ErrWrongPassword so
// the handler can answer with one generic "invalid credentials" message and
// never reveal which part failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUser returns the current database row for the given user id.
func (a *authService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	// never hand the hash to the transport layer
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile sets a new username for the given user.
//
// Returns ErrInvalidDataProvided when the trimmed username is shorter than
// three characters; uniqueness violations surface as
// store.ErrUserAlreadyExists (wrapped).
func (a *authService) UpdateProfile(ctx context.Context, id int64, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := a.userRepository.UpdateUsername(ctx, id, username)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("username update ended with error")
		return models.User{}, fmt.Errorf("username update ended with error: %w", err)
	}

	return updated, nil
}

// ChangePassword verifies the current password against the stored hash and
// overwrites it with a freshly hashed new password.
//
// Returns ErrWrongPassword when the current password does not match; the
// stored hash is left untouched in that case.
func (a *authService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || len(newPassword) < minPasswordLength {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user lookup ended with error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, id, string(hash)); err != nil {
		log.Err(err).Int64("id", id).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT carrying the user's public identity.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token creation ended with error")
		return models.Token{}, fmt.Errorf("token creation ended with error: %w", err)
	}

	return token, nil
}

// ParseToken validates the given compact JWT string and returns the decoded
// token.
//
// An expired token is reported as ErrTokenIsExpired so the middleware can
// answer with the distinct "token expired" reason; every other failure
// (bad signature, foreign algorithm, malformed token) is returned as-is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("token parsing ended with error: %w", err)
	}

	return token, nil
}
