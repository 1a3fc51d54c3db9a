package revokedRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedRepo remembers revoked token ids until the token would have
// expired anyway.
type RevokedRepo struct {
	Client *redis.Client
}

func New(client *redis.Client) *RevokedRepo {
	return &RevokedRepo{Client: client}
}

func (r *RevokedRepo) buildKey(tokenID string) string {
	return fmt.Sprintf("catalog:revoked:%s", tokenID)
}

func (r *RevokedRepo) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.Client.Set(ctx, r.buildKey(tokenID), "1", ttl).Err()
}

func (r *RevokedRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.Client.Exists(ctx, r.buildKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
