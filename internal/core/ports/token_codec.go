package ports

import (
	"errors"
	"time"
)

// Token parse failures. All three map to 401 externally; they are
// distinguished only in server logs.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies self-contained signed bearer tokens.
type TokenCodec interface {
	// Issue signs a token for the given subject and role, valid from now
	// for the codec's configured TTL.
	Issue(username, role string, now time.Time) (string, error)
	// Parse verifies signature and expiry against now and returns the
	// claims, or one of ErrTokenMalformed, ErrTokenSignature,
	// ErrTokenExpired.
	Parse(token string, now time.Time) (*TokenClaims, error)
	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
