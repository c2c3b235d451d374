package token

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopdash/shopdash/pkg/logger"
)

// Denylist records revoked credentials so logout invalidates the presented
// token server-side instead of relying on the client discarding its cookie.
type Denylist interface {
	Revoke(ctx context.Context, tokenString string, until time.Time) error
	IsRevoked(ctx context.Context, tokenString string) (bool, error)
}

// RedisInterface is the minimal redis surface the denylist needs.
type RedisInterface interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDenylist stores token fingerprints in redis, expiring each entry at
// the token's own expiry so the set never grows past the live-token window.
type RedisDenylist struct {
	client RedisInterface
}

func NewRedisDenylist(client RedisInterface) *RedisDenylist {
	return &RedisDenylist{client: client}
}

// fingerprint keys entries by a digest so raw credentials never land in redis.
func fingerprint(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return fmt.Sprintf("auth:revoked:%x", sum)
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenString string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	key := fingerprint(tokenString)
	if err := d.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	logger.FromContext(ctx).Debug("token revoked", "key", key, "ttl", ttl)
	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenString string) (bool, error) {
	res := d.client.Exists(ctx, fingerprint(tokenString))
	if res.Err() != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", res.Err())
	}
	return res.Val() > 0, nil
}
