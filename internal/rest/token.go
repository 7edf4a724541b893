package rest

import (
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// Tokens signs and verifies the HMAC session tokens the API hands out at
// login.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Issue(sess domain.Session) (string, error) {
	c := claims{
		Username: sess.Username,
		Role:     string(sess.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

func (t *Tokens) Parse(tokenString string) (domain.Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method)
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, ErrInvalidToken
	}
	return domain.Session{Username: c.Username, Role: domain.Role(c.Role)}, nil
}
