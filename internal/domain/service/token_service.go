package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Validate for any token that cannot be
// trusted: bad signature, malformed string, wrong algorithm, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the minimal identity projection embedded in a signed token.
// Whatever is in here is echoed back to the caller verbatim and trusted
// without a store round-trip, so it carries nothing mutable and nothing
// secret. AccountID may be zero on tokens issued before ids were added to
// the claim set; Username is always present.
type Claims struct {
	AccountID int64  `json:"id,omitempty"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating signed
// bearer tokens. Validation is a pure cryptographic/structural check and
// never consults the account store; a token issued for a since-deleted
// account still validates, and the lookup that follows surfaces the miss.
type TokenService interface {
	// Generate signs a compact token carrying the given identity.
	Generate(accountID int64, username string) (string, error)

	// Validate verifies the signature and structure of a token string and
	// returns its claims, or a wrapped ErrInvalidToken.
	Validate(tokenString string) (*Claims, error)
}
