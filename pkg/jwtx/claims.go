package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultIDTokenTTL matches the hosted user pool's one hour ID tokens.
const DefaultIDTokenTTL = time.Hour

// Claims mirror the hosted user pool's ID token: the subject is the identity
// id, the rest are profile attributes.
type Claims struct {
	jwt.RegisteredClaims

	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	GeneratedID string `json:"custom:generated_id,omitempty"`
	TokenUse    string `json:"token_use"`
}

// NewIDClaims builds claims for an identity.
func NewIDClaims(issuer, subject, email, name string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Email:       email,
		Name:        name,
		GeneratedID: subject,
		TokenUse:    "id",
	}
}

func newJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
