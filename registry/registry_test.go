package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableValidatesSize(t *testing.T) {
	_, err := NewTable("stat-card", 4, "stat-card-0", "stat-card-1", "stat-card-2")
	assert.ErrorIs(t, err, ErrTableSize)

	_, err = NewTable("stat-card", 2, "a", "b", "c")
	assert.ErrorIs(t, err, ErrTableSize)

	tbl, err := NewTable("stat-card", 2, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestNewTableRejectsBadIDs(t *testing.T) {
	_, err := NewTable("x", 2, "a", "")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewTable("x", 2, "a", "a")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestAtFailsClosed(t *testing.T) {
	tbl, err := Sequence("service-card", 4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		id, err := tbl.At(i)
		require.NoError(t, err)
		assert.Equal(t, ComponentID("service-card-"+string(rune('0'+i))), id)
	}

	for _, i := range []int{-1, 4, 100} {
		id, err := tbl.At(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Empty(t, id)
	}
}

func TestNewLanding(t *testing.T) {
	l, err := NewLanding()
	require.NoError(t, err)

	assert.Equal(t, StatCardCount, l.StatCards.Len())
	assert.Equal(t, ServiceCount, l.ServiceCards.Len())
	assert.Equal(t, SpecialtyCount, l.SpecialtyBadges.Len())
	assert.Equal(t, SpecialtyCount, l.SpecialtyIcons.Len())

	id, err := l.SpecialtyIcons.At(5)
	require.NoError(t, err)
	assert.Equal(t, ComponentID("specialty-icon-5"), id)

	_, err = l.SpecialtyBadges.At(6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
