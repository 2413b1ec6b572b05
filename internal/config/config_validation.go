package config

import (
	"errors"
	"time"
)

// Defaults applied by validate for fields left unset by every source.
const (
	DefaultHTTPAddress    = ":5001"
	DefaultTokenIssuer    = "unesleaf"
	DefaultTokenDuration  = 168 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultBcryptCost     = 10
)

// validate applies defaults for optional settings and fails fast on missing
// mandatory ones. The token signing key and the database DSN have no sane
// defaults: starting without them would produce a server that either signs
// tokens with an empty secret or cannot reach its storage.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrMissingDatabaseDSN)
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}

	return errors.Join(errs...)
}
