package appointment

import (
	"context"
	"time"

	"drmike/models"

	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

// MemoryStore is a process-local Store with an idle TTL. Reads do not extend
// the TTL; every save does, matching RedisStore.
type MemoryStore struct {
	cache *ttlcache.Cache[string, models.ViewState]
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: ttlcache.New[string, models.ViewState](
			ttlcache.WithTTL[string, models.ViewState](ttl),
			ttlcache.WithDisableTouchOnHit[string, models.ViewState](),
		),
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (models.ViewState, error) {
	item := s.cache.Get(sessionID)
	if item == nil || item.IsExpired() {
		return models.ViewState{}, ErrViewNotFound
	}
	return item.Value(), nil
}

func (s *MemoryStore) Save(_ context.Context, state models.ViewState) error {
	s.cache.Set(state.SessionID, state, ttlcache.DefaultTTL)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// LogExpirations logs every view that is evicted because it expired.
func (s *MemoryStore) LogExpirations(logger *zap.Logger) {
	s.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, models.ViewState]) {
		if reason == ttlcache.EvictionReasonExpired {
			logger.Debug("landing view expired", zap.String("sessionID", item.Key()))
		}
	})
}

// Run evicts expired views until ctx is done.
func (s *MemoryStore) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.cache.Stop()
	}()
	s.cache.Start()
}

// Len reports the number of entries, expired or not.
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}
