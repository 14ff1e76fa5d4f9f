package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Tokens issues and verifies the bearer credentials used by the API. A token
// asserts identity only; role checks always go back to the user store.
type Tokens struct {
	Secret   []byte
	Validity time.Duration
}

func NewTokens(secret string) *Tokens {
	return &Tokens{Secret: []byte(secret), Validity: 48 * time.Hour}
}

func (t *Tokens) Issue(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(t.Validity).Unix(),
		"iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.Secret)
}

// Verify returns the email a valid token was issued to.
func (t *Tokens) Verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.Secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
