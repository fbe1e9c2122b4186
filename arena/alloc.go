package arena

import (
	"github.com/nmxmxh/inos-arena/internal/utils"
	"github.com/nmxmxh/inos-arena/internal/words"
)

// minPayload is the smallest payload a chunk can carry: enough for both
// free-list link words.
const minPayload = 2

// minSplitSurplus is the smallest footprint surplus, beyond the requested
// n payload words, that justifies carving off a remainder chunk: the
// requested chunk needs n+2 words (header, payload, footer) and the
// remainder needs at least 4 (a minimal chunk), so splitting requires
// space >= n+2+4 = n+6.
const minSplitSurplus = 6

func (a *Arena) allocate(byteSize int, zero bool) Ptr {
	if byteSize <= 0 {
		if a.logger != nil {
			a.logger.Debug("allocate: rejected request",
				utils.String("arena_id", a.id.String()),
				utils.Err(ErrZeroSize),
			)
		}
		return None
	}
	if byteSize > len(a.region) {
		if a.logger != nil {
			a.logger.Debug("allocate: out of space",
				utils.String("arena_id", a.id.String()),
				utils.Int("requested_bytes", byteSize),
				utils.Err(ErrOutOfSpace),
			)
		}
		return None
	}
	n := words.RoundUp(byteSize)
	if n < minPayload {
		n = minPayload
	}

	c := a.findBest(n)
	if !c.valid() {
		if a.logger != nil {
			a.logger.Debug("allocate: out of space",
				utils.String("arena_id", a.id.String()),
				utils.Uint64("requested_words", uint64(n)),
				utils.Err(ErrOutOfSpace),
			)
		}
		return None
	}
	a.removeFree(c)
	a.allocateChunk(c, n, zero)
	return dataPtr(c)
}

// allocateChunk grants n payload words out of the free chunk c, splitting
// off a remainder chunk when there is room for one, zero-filling the
// first n payload words when requested, and finally marking c taken. c
// must already be free and unlinked from every free list.
func (a *Arena) allocateChunk(c chunk, n uint32, zero bool) {
	s := space(a.region, c)
	if s >= n+minSplitSurplus {
		setSize(a.region, c, int32(n))
		rem := right(a.region, c)
		setSize(a.region, rem, int32(s-n-4))
		a.insertFree(rem)
	}

	if zero {
		base := uint32(c) + 1
		for i := uint32(0); i < n; i++ {
			writeWord(a.region, base+i, 0)
		}
	}

	setSize(a.region, c, -int32(payloadWords(a.region, c)))
}
