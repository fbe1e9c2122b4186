package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassOf(t *testing.T) {
	// power=2: class boundaries at 4, 16, 64, 256, 1024, 4096, 16384.
	cases := []struct {
		n    uint32
		want int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{15, 1},
		{16, 2},
		{16383, 6},
		{16384, 7},
		{1 << 20, 7},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classOf(2, c.n), "classOf(2, %d)", c.n)
	}
}

func TestInsertFreeOrdersAscending(t *testing.T) {
	a := newTestArena(t, 64, 2)
	clearFreeLists(a)

	// Carve the single whole-region chunk into three free chunks of
	// distinct sizes, all landing in the same class.
	region := a.region
	setSize(region, chunk(0), 3)
	a.insertFree(chunk(0))

	setSize(region, chunk(5), 1)
	a.insertFree(chunk(5))

	setSize(region, chunk(8), 2)
	a.insertFree(chunk(8))

	assertFreeListsSorted(t, a)

	head := chunk(a.heads[0])
	require.True(t, head.valid())
	assert.Equal(t, uint32(1), payloadWords(region, head))
}

func TestRemoveFreeUnsplices(t *testing.T) {
	a := newTestArena(t, 64, 2)
	clearFreeLists(a)
	region := a.region

	setSize(region, chunk(0), 3)
	a.insertFree(chunk(0))
	setSize(region, chunk(5), 3)
	a.insertFree(chunk(5))

	a.removeFree(chunk(0))
	assertFreeListsSorted(t, a)

	head := chunk(a.heads[classOf(a.power, 3)])
	assert.Equal(t, chunk(5), head)
}

func TestFindBestSkipsSmallerClasses(t *testing.T) {
	a := newTestArena(t, 4096, 2)
	clearFreeLists(a)
	region := a.region

	// class 0 chunk, too small for a 20-word request.
	setSize(region, chunk(0), 2)
	a.insertFree(chunk(0))

	// class 2 chunk (payload 20, since 16 <= 20 < 64), large enough.
	setSize(region, chunk(4), 20)
	a.insertFree(chunk(4))

	got := a.findBest(20)
	assert.Equal(t, chunk(4), got)
}

func TestFindBestReturnsNoChunkWhenNothingFits(t *testing.T) {
	a := newTestArena(t, 32, 2)
	clearFreeLists(a)
	region := a.region
	setSize(region, chunk(0), 2)
	a.insertFree(chunk(0))

	got := a.findBest(1000)
	assert.False(t, got.valid())
}
