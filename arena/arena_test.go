package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUndersizedRegion(t *testing.T) {
	_, err := New(make([]byte, 8), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestNewRejectsMisalignedRegion(t *testing.T) {
	_, err := New(make([]byte, 19), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestNewRejectsZeroPower(t *testing.T) {
	_, err := New(make([]byte, 64), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestNewInitializesSingleFreeChunk(t *testing.T) {
	region := make([]byte, 512) // 128 words
	a, err := New(region, 2)
	require.NoError(t, err)

	assert.Equal(t, int32(126), readWord(a.region, 0))
	assert.Equal(t, int32(126), readWord(a.region, 127))
}

func TestIDIsStableAcrossCalls(t *testing.T) {
	a := newTestArena(t, 64, 2)
	assert.Equal(t, a.ID(), a.ID())
}

func TestReadWriteRoundTrip(t *testing.T) {
	a := newTestArena(t, 64, 2)
	p := a.Allocate(16)
	require.NotEqual(t, None, p)

	payload := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	a.Write(p, payload)
	assert.Equal(t, payload, a.Read(p, len(payload)))
}

func TestStatsAccountForFreeAndUsed(t *testing.T) {
	a := newTestArena(t, 64, 2)
	before := a.Stats()
	assert.Equal(t, uint32(64), before.RegionWords)
	assert.Equal(t, uint32(64), before.FreeWords) // one free chunk spans the whole region
	assert.Equal(t, uint32(0), before.UsedWords)

	p := a.Allocate(8)
	require.NotEqual(t, None, p)
	after := a.Stats()
	assert.Greater(t, after.UsedWords, before.UsedWords)
	assert.Less(t, after.FreeWords, before.FreeWords)
}

func TestCheckPassesOnFreshAndPopulatedArena(t *testing.T) {
	a := newTestArena(t, 256, 2)
	require.NoError(t, a.Check())

	ps := make([]Ptr, 0, 8)
	for i := 0; i < 8; i++ {
		p := a.Allocate(12)
		require.NotEqual(t, None, p)
		ps = append(ps, p)
	}
	require.NoError(t, a.Check())

	for _, p := range ps {
		a.Release(p)
	}
	require.NoError(t, a.Check())
}

func TestClearAllocateOverflowGuard(t *testing.T) {
	a := newTestArena(t, 64, 2)
	assert.Equal(t, None, a.ClearAllocate(1<<30, 1<<30))
}
