package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Rejection reasons. Verify returns exactly one of these (possibly
// wrapped) so callers can distinguish why a token was refused.
var (
	ErrTokenMalformed   = errors.New("token is malformed")
	ErrTokenExpired     = errors.New("token has expired")
	ErrSignatureInvalid = errors.New("token signature is invalid")
)

const (
	// AccessTokenTTL is fixed at 24 hours; it is not configurable per call.
	AccessTokenTTL = 24 * time.Hour

	// expiryLeeway absorbs small clock skew between issuer and verifier.
	expiryLeeway = 30 * time.Second
)

// Claims are the session token claims. The admin email travels as the
// registered subject; nothing else is custom.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a single shared
// HMAC-SHA256 secret. Tokens are self-contained and never persisted.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: AccessTokenTTL}
}

// newServiceWithTTL exists for expiry tests.
func newServiceWithTTL(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying subject, expiring TTL from now.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        ulid.Make().String(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the subject.
func (s *Service) Verify(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(expiryLeeway))

	if err != nil {
		return "", classify(err)
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}

// classify maps jwt/v5 parse errors onto our rejection sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
