package testutil

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/core/item"
)

// NewToken returns a session token like the ones the auth service signs, valid for ttl.
// A negative ttl yields an expired token.
func NewToken(t *testing.T, email, role string, userID int64, ttl ...time.Duration) string {
	exp := time.Hour
	if len(ttl) > 0 {
		exp = ttl[0]
	}
	now := time.Now()
	claims := account.Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			IssuedAt:  now.Add(-time.Minute).Unix(),
			ExpiresAt: now.Add(exp).Unix(),
		},
		Role:   role,
		UserID: userID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("NewToken() failed: %v", err)
	}
	return token
}

func CreateItem(t *testing.T, repo item.Repository, title, description string) item.Item {
	it := repo.CreateItem(item.NewItem{Title: title, Description: description})
	if it.ID == "" {
		t.Fatalf("CreateItem() failed: empty id")
	}
	return it
}
