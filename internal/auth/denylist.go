// PrinceMahmood | 2026
// denylist.go

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "session:denylist:"

// RedisDenylist stores revoked token IDs with a TTL matching the token's
// remaining lifetime, so entries expire on their own once the token would
// have become invalid anyway.
type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(
	ctx context.Context,
	tokenID string,
	expiresAt time.Time,
) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	key := denylistKeyPrefix + tokenID
	if err := d.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", tokenID, err)
	}

	return nil
}

func (d *RedisDenylist) IsRevoked(
	ctx context.Context,
	tokenID string,
) (bool, error) {
	key := denylistKeyPrefix + tokenID
	n, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("check token %s: %w", tokenID, err)
	}

	return n > 0, nil
}

var _ Denylist = (*RedisDenylist)(nil)
