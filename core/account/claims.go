package account

import (
	"errors"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims represents the authorization claims of a GeekPlay session token.
// The subject is the account email.
type Claims struct {
	jwt.StandardClaims
	Role   string `json:"role,omitempty"`
	UserID int64  `json:"userId,omitempty"`
}

func (c Claims) Email() string { return c.Subject }

func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// ParseClaims reads the claims of token without checking its signature, which the
// upstream services verify on every call. Expired tokens are rejected.
func ParseClaims(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if err := claims.Valid(); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
