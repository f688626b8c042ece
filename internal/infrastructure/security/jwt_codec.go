package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// MinSecretLen is the minimum accepted signing secret length in bytes.
const MinSecretLen = 32

const defaultTTL = 24 * time.Hour

// ErrSecretTooShort rejects signing secrets below MinSecretLen bytes.
var ErrSecretTooShort = errors.New("jwt secret must be at least 32 bytes")

// JWTCodec implements ports.TokenCodec with HS256-signed JWTs. A single
// process is both issuer and verifier, so symmetric signing is sufficient.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec builds a codec for the given secret and TTL. The secret must
// be at least MinSecretLen bytes; a non-positive TTL falls back to 24h.
func NewJWTCodec(secret string, ttl time.Duration) (*JWTCodec, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (c *JWTCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token carrying sub, role, iat and exp.
func (c *JWTCodec) Issue(username, role string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Parse verifies the token against now and returns its claims. Only HS256
// is accepted; alg "none" and any asymmetric header are rejected. Both
// bounds of the validity window are checked with no clock-skew leeway:
// a token is rejected before its iat as well as at or after its exp.
func (c *JWTCodec) Parse(token string, now time.Time) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, mapParseError(err)
	}
	if !parsed.Valid {
		return nil, ports.ErrTokenMalformed
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ports.ErrTokenMalformed
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ports.ErrTokenMalformed
	}

	out := &ports.TokenClaims{
		Username:  sub,
		ExpiresAt: exp.Time,
	}
	// An absent role claim means no privileged role; admin-only routes
	// will deny it downstream.
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	return out, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ports.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return ports.ErrTokenSignature
	default:
		return ports.ErrTokenMalformed
	}
}
