package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/myjournal/journal-api/internal/core/domain"
)

// DefaultTokenTTL is the session token lifetime when none is configured.
const DefaultTokenTTL = 30 * time.Minute

// TokenIssuer mints and verifies the signed session tokens carried in the
// auth cookie. Tokens are self-contained: {sub: user name, exp: issued_at
// + ttl}, HMAC-signed with a server-held secret. Issuer and verifier share
// the same clock; no expiry leeway is granted.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds a TokenIssuer for the configured HMAC algorithm
// (HS256, HS384 or HS512). Non-HMAC algorithms are rejected at startup.
func NewTokenIssuer(secret, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: algorithm %q is not a symmetric HMAC scheme", algorithm)
	}
	return &TokenIssuer{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock overrides the clock used for issuing and verifying. Intended
// for tests.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token asserting the given subject, expiring ttl from now.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(t.now().Add(t.ttl)),
	}
	return jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
}

// Verify validates signature and expiry and returns the embedded subject.
// Fails with domain.ErrTokenExpired once now reaches expires_at, and with
// domain.ErrTokenMalformed for anything unparsable, unsigned by us, or
// signed with an unexpected algorithm.
func (t *TokenIssuer) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims,
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenMalformed
	}
	if !tkn.Valid {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}
