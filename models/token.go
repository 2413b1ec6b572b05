package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued on login and registration.
//
// Beyond the registered claims (iss, sub, iat, exp) it carries the public
// identity of the user so that protected handlers can serve requests without
// a database lookup.
type TokenClaims struct {
	// UserID is the owner identifier, duplicated from the "sub" claim for
	// convenient typed access.
	UserID int64 `json:"id"`

	// Email is the user's login email at token issuance time.
	Email string `json:"email"`

	// Username is the user's public handle at token issuance time.
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
