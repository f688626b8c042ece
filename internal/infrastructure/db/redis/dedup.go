package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ContactDeduper suppresses repeated contact-form submissions backed by
// Redis. Key format: contact:dedup:<sha256(email|message)>
type ContactDeduper struct {
	client *redis.Client
}

// NewContactDeduper creates a ContactDeduper wrapping the given Redis client.
func NewContactDeduper(client *redis.Client) *ContactDeduper {
	return &ContactDeduper{client: client}
}

// IsDuplicate reports whether an identical (email, message) pair was
// accepted within the dedup window.
func (d *ContactDeduper) IsDuplicate(ctx context.Context, email, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the pair so later duplicates are suppressed (expires after
// dedupTTL).
func (d *ContactDeduper) Mark(ctx context.Context, email, message string) error {
	return d.client.Set(ctx, d.key(email, message), "1", dedupTTL).Err()
}

func (d *ContactDeduper) key(email, message string) string {
	sum := sha256.Sum256([]byte(email + "|" + message))
	return "contact:dedup:" + hex.EncodeToString(sum[:])
}
