package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
)

// Verifier validates a token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Issuer signs and verifies ID tokens with an Ed25519 key held in memory.
// Keys are ephemeral: tokens do not survive a restart, which is fine for a
// local emulator.
type Issuer struct {
	name string
	kid  string
	ttl  time.Duration
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
	now  func() time.Time
}

// NewIssuer generates a fresh signing key.
func NewIssuer(name string, ttl time.Duration) (*Issuer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultIDTokenTTL
	}

	return &Issuer{
		name: name,
		kid:  newJTI(),
		ttl:  ttl,
		priv: priv,
		pub:  pub,
		now:  time.Now,
	}, nil
}

func (i *Issuer) Name() string       { return i.name }
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs an ID token for the given identity.
func (i *Issuer) Issue(subject, email, name string) (string, error) {
	claims := NewIDClaims(i.name, subject, email, name, i.ttl, i.now().UTC())

	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = i.kid
	return t.SignedString(i.priv)
}

// Verify checks signature, expiry and issuer.
func (i *Issuer) Verify(token string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithTimeFunc(i.now),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if kid, _ := t.Header["kid"].(string); kid != i.kid {
			return nil, fmt.Errorf("jwtx: unknown kid %q", kid)
		}
		return i.pub, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.Issuer != i.name {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}
