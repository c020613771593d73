package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Subject string
	Email   string
	Role    string
	TTL     time.Duration
}

// AccessTokenClaims mirrors the tokens issued by the identity provider. The
// shopper identity is the registered subject.
type AccessTokenClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
