package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/devfolio/portfolio-api/pkg/logger"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "portfolio:revoked:"

// RevocationStore remembers session token IDs that were logged out
// until the tokens would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryRevocationStore keeps revoked token IDs in process memory
type MemoryRevocationStore struct {
	cache *gocache.Cache
}

// NewMemoryRevocationStore creates an in-process revocation store
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	s.cache.Set(tokenID, struct{}{}, ttl)
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := s.cache.Get(tokenID)
	return found, nil
}

// RedisRevocationStore shares revoked token IDs between instances
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore connects to redisURL and verifies the connection
func NewRedisRevocationStore(ctx context.Context, redisURL string) (*RedisRevocationStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisRevocationStore{client: client}, nil
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Close releases the redis connection pool
func (s *RedisRevocationStore) Close() error {
	return s.client.Close()
}

// NewRevocationStore uses redis when redisURL is set and reachable and falls
// back to process memory otherwise.
func NewRevocationStore(ctx context.Context, redisURL string) RevocationStore {
	if redisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory session revocation")
		return NewMemoryRevocationStore()
	}

	store, err := NewRedisRevocationStore(ctx, redisURL)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory session revocation", zap.Error(err))
		return NewMemoryRevocationStore()
	}

	logger.Info("Using redis for session revocation")
	return store
}
