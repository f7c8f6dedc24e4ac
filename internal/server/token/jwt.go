// Package token signs and verifies session tokens. Tokens are HS256 JWTs
// carrying the user's public attributes; the signing secret and lifetime are
// process-wide configuration injected at construction.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkorchagin/authsvc/internal/common"
	"github.com/mkorchagin/authsvc/internal/server/models"
)

// Claims are the statements embedded in a session token: the registered
// protocol fields (sub, iat, exp, jti) plus the user's public attributes.
// The password hash is never part of a token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Codec signs claims into opaque token strings and verifies them back.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Sign issues a token over the user's public attributes. Each token gets a
// fresh jti, so consecutive tokens for the same user differ even within the
// one-second iat granularity.
func (c *Codec) Sign(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        uuid.NewString(),
		},
		Email: user.Email,
		Name:  user.Name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify validates the signature and expiry of tokenString and returns the
// embedded user attributes with the protocol metadata (sub, iat, exp, jti)
// stripped. Malformed, tampered, and expired tokens all yield
// common.ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (*models.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &models.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
