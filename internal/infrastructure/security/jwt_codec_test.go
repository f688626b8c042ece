package security

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestCodec(t *testing.T, ttl time.Duration) *JWTCodec {
	t.Helper()
	c, err := NewJWTCodec(testSecret, ttl)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return c
}

func TestJWTCodec_SecretTooShort(t *testing.T) {
	if _, err := NewJWTCodec("short", time.Hour); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort, got %v", err)
	}
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	now := time.Unix(1700000000, 0)

	token, err := c.Issue("admin", "admin", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three dot-separated segments, got %q", token)
	}

	claims, err := c.Parse(token, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.IssuedAt.Equal(now) {
		t.Fatalf("iat = %v, want %v", claims.IssuedAt, now)
	}
	if !claims.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("exp = %v, want %v", claims.ExpiresAt, now.Add(time.Hour))
	}
}

func TestJWTCodec_Expired(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	now := time.Unix(1700000000, 0)

	token, err := c.Issue("admin", "admin", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := c.Parse(token, now.Add(2*time.Hour)); !errors.Is(err, ports.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTCodec_NotYetIssued(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	now := time.Unix(1700000000, 0)

	token, err := c.Issue("admin", "admin", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Before iat the token is invalid, for instance after a clock rollback.
	if _, err := c.Parse(token, now.Add(-time.Minute)); err == nil {
		t.Fatalf("token parsed before its issued-at time")
	}

	// At iat exactly it is valid.
	if _, err := c.Parse(token, now); err != nil {
		t.Fatalf("parse at issued-at time: %v", err)
	}
}

func TestJWTCodec_Tampered(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	now := time.Now()

	token, err := c.Issue("admin", "admin", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip a byte in the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := c.Parse(tampered, now); err == nil {
		t.Fatalf("tampered token parsed")
	}
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	other, err := NewJWTCodec("ffffffffffffffffffffffffffffffff", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	now := time.Now()
	token, err := other.Issue("admin", "admin", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := c.Parse(token, now); !errors.Is(err, ports.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestJWTCodec_Malformed(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := c.Parse(bad, time.Now()); !errors.Is(err, ports.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", bad, err)
		}
	}
}

func TestJWTCodec_RejectsAlgNone(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"admin","role":"admin","exp":9999999999}`))
	unsigned := header + "." + payload + "."

	if _, err := c.Parse(unsigned, time.Now()); err == nil {
		t.Fatalf("alg none token parsed")
	}
}

func TestJWTCodec_RejectsMissingExpiry(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
	})
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Parse(signed, time.Now()); err == nil {
		t.Fatalf("token without exp parsed")
	}
}

func TestJWTCodec_AbsentRoleIsEmpty(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	now := time.Now()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := c.Parse(signed, now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != "" {
		t.Fatalf("expected empty role, got %q", claims.Role)
	}
}
