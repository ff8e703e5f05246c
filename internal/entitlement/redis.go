package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

const (
	redisIdentityKey   = "homedesign:identity"
	redisSnapshotKey   = "homedesign:usage:"
	defaultSnapshotTTL = 30 * 24 * time.Hour
)

// RedisStore persists the entitlement cache in Redis so multiple service
// instances share one view of the locally cached counters.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the Redis instance described by url.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("entitlement: parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: defaultSnapshotTTL}, nil
}

// NewRedisStoreWithClient wraps an existing client, mainly for tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: defaultSnapshotTTL}
}

func (s *RedisStore) Identity(ctx context.Context) (string, error) {
	id, err := s.client.Get(ctx, redisIdentityKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("entitlement: read identity: %w", err)
	}
	return id, nil
}

func (s *RedisStore) SetIdentity(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, redisIdentityKey, id, 0).Err(); err != nil {
		return fmt.Errorf("entitlement: persist identity: %w", err)
	}
	return nil
}

func (s *RedisStore) Snapshot(ctx context.Context, userID string) (domain.EntitlementState, bool, error) {
	raw, err := s.client.Get(ctx, redisSnapshotKey+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.EntitlementState{}, false, nil
	}
	if err != nil {
		return domain.EntitlementState{}, false, fmt.Errorf("entitlement: read snapshot: %w", err)
	}
	var state domain.EntitlementState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.EntitlementState{}, false, fmt.Errorf("entitlement: decode snapshot: %w", err)
	}
	return state, true, nil
}

func (s *RedisStore) SetSnapshot(ctx context.Context, state domain.EntitlementState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("entitlement: encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisSnapshotKey+state.UserID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("entitlement: persist snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, redisSnapshotKey+userID).Err(); err != nil {
		return fmt.Errorf("entitlement: clear snapshot: %w", err)
	}
	id, err := s.Identity(ctx)
	if err != nil {
		return err
	}
	if id == userID {
		if err := s.client.Del(ctx, redisIdentityKey).Err(); err != nil {
			return fmt.Errorf("entitlement: clear identity: %w", err)
		}
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
