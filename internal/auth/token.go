package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid is returned for tokens that are malformed, expired or
// signed with the wrong key. It is deliberately undifferentiated.
var ErrTokenInvalid = errors.New("Session expired. Please login again.")

var (
	secret   []byte
	lifetime time.Duration
)

// Setup configures the signing key and the token lifetime. It must be
// called once before tokens are issued or parsed.
func Setup(signingKey string, tokenLifetime time.Duration) {
	secret = []byte(signingKey)
	lifetime = tokenLifetime
}

// claims are the JWT claims of a session token.
type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// IssueToken issues a signed session token for the user.
func IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	})

	return token.SignedString(secret)
}

// ParseToken verifies a session token and returns the user ID it is
// bound to.
func ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	c, ok := token.Claims.(*claims)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
