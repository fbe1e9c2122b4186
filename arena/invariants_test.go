package arena

import (
	"testing"

	"github.com/nmxmxh/inos-arena/internal/words"
	"github.com/stretchr/testify/require"
)

// newTestArena builds an Arena over a region of the given word count.
func newTestArena(t *testing.T, wordCount int, power uint32) *Arena {
	t.Helper()
	region := make([]byte, wordCount*4)
	a, err := New(region, power)
	require.NoError(t, err)
	return a
}

// clearFreeLists empties every class head without touching the region,
// letting a test lay out chunks by hand and insert them itself.
func clearFreeLists(a *Arena) {
	for i := range a.heads {
		a.heads[i] = words.NIL
	}
}

// totalAccountedWords walks the region start to end and sums every
// chunk's footprint, verifying header/footer agreement along the way.
// It mirrors what Check does but returns the sum for assertions.
func totalAccountedWords(t *testing.T, a *Arena) uint32 {
	t.Helper()
	total := uint32(len(a.region)) / 4
	var walked uint32
	c := chunk(0)
	for walked < total {
		require.True(t, checkMeta(a.region, c), "header/footer mismatch at word %d", uint32(c))
		s := space(a.region, c)
		walked += s
		c = chunk(uint32(c) + s)
	}
	return walked
}

// assertFreeListsSorted checks every size class is ordered by ascending
// payload size and that next/prev links agree with each other.
func assertFreeListsSorted(t *testing.T, a *Arena) {
	t.Helper()
	for k := 0; k < NumClasses; k++ {
		var prevSize uint32
		prev := noChunk
		curr := chunk(a.heads[k])
		for curr.valid() {
			n := payloadWords(a.region, curr)
			require.GreaterOrEqual(t, n, prevSize, "class %d out of order at word %d", k, uint32(curr))
			require.Equal(t, uint32(prev), prevLink(a.region, curr), "prev link mismatch at word %d", uint32(curr))
			prevSize = n
			prev = curr
			curr = chunk(nextLink(a.region, curr))
		}
	}
}
