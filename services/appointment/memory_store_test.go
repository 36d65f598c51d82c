package appointment

import (
	"context"
	"testing"
	"time"

	"drmike/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrViewNotFound)

	state := models.ViewState{SessionID: "abc", Draft: fullDraft(), Mounted: true}
	require.NoError(t, s.Save(ctx, state))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, state, got)
	assert.NoError(t, s.Ping(ctx))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(200 * time.Millisecond)

	require.NoError(t, s.Save(ctx, models.ViewState{SessionID: "a"}))
	require.NoError(t, s.Save(ctx, models.ViewState{SessionID: "b"}))

	time.Sleep(120 * time.Millisecond)
	// saving refreshes the idle TTL, loading does not
	require.NoError(t, s.Save(ctx, models.ViewState{SessionID: "b"}))
	_, err := s.Load(ctx, "a")
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)
	_, err = s.Load(ctx, "a")
	assert.ErrorIs(t, err, ErrViewNotFound)
	_, err = s.Load(ctx, "b")
	assert.NoError(t, err)
}

func TestMemoryStoreRunEvictsExpired(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zapcore.DebugLevel)
	s := NewMemoryStore(50 * time.Millisecond)
	s.LogExpirations(zap.New(core))
	go s.Run(ctx)

	require.NoError(t, s.Save(ctx, models.ViewState{SessionID: "gone"}))
	assert.Eventually(t, func() bool { return s.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return logs.FilterMessage("landing view expired").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
}
