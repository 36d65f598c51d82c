package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drmike/models"

	"github.com/go-redis/redis/v8"
)

const ViewSessionPrefix = "landingView:"

// RedisStore keeps view state in Redis as JSON; every save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (models.ViewState, error) {
	data, err := s.client.Get(ctx, ViewSessionPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ViewState{}, ErrViewNotFound
	}
	if err != nil {
		return models.ViewState{}, fmt.Errorf("failed to load view session: %w", err)
	}
	var state models.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.ViewState{}, fmt.Errorf("failed to unmarshal view session: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, state models.ViewState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal view session: %w", err)
	}
	if err := s.client.Set(ctx, ViewSessionPrefix+state.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save view session: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
