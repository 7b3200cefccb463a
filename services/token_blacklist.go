package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker is the revocation set: tokens explicitly invalidated
// before their natural expiry. Entries self-expire with the token.
type TokenRevoker interface {
	Revoke(token string, expiresAt time.Time) error
	IsRevoked(token string) bool
}

// Revoker is the process-wide revocation set, installed at startup.
// When nil (e.g. in tests that don't exercise logout), nothing is
// considered revoked.
var Revoker TokenRevoker

// RedisTokenRevoker backs the revocation set with a shared Redis
// store so revocation survives restarts and spans instances.
type RedisTokenRevoker struct {
	Client *redis.Client
}

// NewRedisTokenRevoker connects to Redis at redisURL and verifies the
// connection.
func NewRedisTokenRevoker(redisURL string) (*RedisTokenRevoker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenRevoker{Client: client}, nil
}

// Revoke adds the token to the revocation set with a TTL equal to the
// token's remaining lifetime, so the entry disappears exactly when
// the token would have expired anyway.
func (r *RedisTokenRevoker) Revoke(token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// already expired, nothing to revoke
		return nil
	}

	ctx := context.Background()
	key := "revoked:" + token
	if err := r.Client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked checks membership in the revocation set. Store errors are
// treated as not-revoked so a Redis outage does not lock everyone out.
func (r *RedisTokenRevoker) IsRevoked(token string) bool {
	ctx := context.Background()
	n, err := r.Client.Exists(ctx, "revoked:"+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// IsConnected reports whether the Redis connection is alive.
func (r *RedisTokenRevoker) IsConnected() bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(context.Background()).Err() == nil
}

// Close closes the Redis connection.
func (r *RedisTokenRevoker) Close() error {
	return r.Client.Close()
}

// RevokeToken adds a token to the process-wide revocation set.
func RevokeToken(token string, expiresAt time.Time) error {
	if Revoker == nil {
		return fmt.Errorf("token revoker not initialized")
	}
	return Revoker.Revoke(token, expiresAt)
}

// IsTokenRevoked checks the process-wide revocation set.
func IsTokenRevoked(token string) bool {
	if Revoker == nil {
		return false
	}
	return Revoker.IsRevoked(token)
}
