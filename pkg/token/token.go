package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken signals a token that is malformed, tampered with, or
// expired. Callers only need to know the token is unusable, so every
// validation failure collapses into this one error.
var ErrInvalidToken = errors.New("token: invalid or expired token")

// Identity is the claim set carried by a session token.
type Identity struct {
	UserID int64
	Name   string
}

// Maker issues and validates stateless HS256 session tokens. Validity is a
// pure function of signature and expiry; no server-side session state.
type Maker struct {
	secret []byte
	ttl    time.Duration
}

func NewMaker(secret string, ttl time.Duration) *Maker {
	return &Maker{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue mints a signed token for the given user.
func (m *Maker) Issue(userID int64, name string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
		"jti":     uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate checks signature and expiry and returns the embedded identity.
func (m *Maker) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Numeric JSON claims decode as float64
	userIDVal, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	name, ok := claims["name"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: int64(userIDVal),
		Name:   name,
	}, nil
}
