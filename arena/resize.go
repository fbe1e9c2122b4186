package arena

import (
	"github.com/nmxmxh/inos-arena/internal/utils"
	"github.com/nmxmxh/inos-arena/internal/words"
)

// probeRight sums c's own footprint plus every physically-adjacent free
// chunk to its right, without mutating anything.
func probeRight(region []byte, c chunk) uint32 {
	total := space(region, c)
	cur := c
	for {
		r := right(region, cur)
		if !r.valid() || !isFree(region, r) {
			break
		}
		total += space(region, r)
		cur = r
	}
	return total
}

// probeLeft sums c's own footprint plus every physically-adjacent free
// chunk to its left, without mutating anything.
func probeLeft(region []byte, c chunk) uint32 {
	total := space(region, c)
	cur := c
	for {
		l := left(region, cur)
		if !l.valid() || !isFree(region, l) {
			break
		}
		total += space(region, l)
		cur = l
	}
	return total
}

// transfer copies n words from src to dst, choosing a direction that
// tolerates overlap: start from the beginning when src > dst, from the
// end when src < dst.
func (a *Arena) transfer(dst, src Ptr, n uint32) {
	d, s := uint32(dst), uint32(src)
	if s > d {
		for i := uint32(0); i < n; i++ {
			writeWord(a.region, d+i, readWord(a.region, s+i))
		}
	} else if s < d {
		for i := int(n) - 1; i >= 0; i-- {
			writeWord(a.region, d+uint32(i), readWord(a.region, s+uint32(i)))
		}
	}
}

func (a *Arena) resize(p Ptr, byteSize int) Ptr {
	if p == None {
		return a.allocate(byteSize, false)
	}
	if byteSize == 0 {
		a.release(p)
		return None
	}

	c := chunkFromData(p)
	if !checkMeta(a.region, c) {
		if a.logger != nil {
			a.logger.Warn("resize: corrupt metadata",
				utils.String("arena_id", a.id.String()),
				utils.Err(ErrCorruptMetadata),
			)
		}
		return None
	}
	if headerVal(a.region, c) >= 0 {
		if a.logger != nil {
			a.logger.Warn("resize: already free",
				utils.String("arena_id", a.id.String()),
				utils.Err(ErrDoubleFree),
			)
		}
		return None
	}

	if byteSize > len(a.region) {
		return None
	}
	n := words.RoundUp(byteSize)
	if n < minPayload {
		n = minPayload
	}

	// Case A: shrink or equal. No split on shrink, no data moves.
	if payloadWords(a.region, c) >= n {
		return p
	}

	// Case B: right-coalesce in place, no copy needed — the original
	// payload words are untouched by a merge with what lies to their
	// right.
	if probeRight(a.region, c)-2 >= n {
		merged := a.mergeRight(c)
		a.allocateChunk(merged, n, false)
		return dataPtr(merged)
	}

	// Case C: bilateral coalesce. The merged chunk's start may shift
	// left, so the payload must be copied to the new data pointer. The
	// -2 accounts for the tag words the merge of L, C, and R leaves
	// behind as a single chunk's header/footer (C's own space is counted
	// once via probeLeft, once via probeRight, so it is only subtracted
	// once here, then the pair's worth of tags is subtracted again).
	if probeLeft(a.region, c)+probeRight(a.region, c)-space(a.region, c)-2 >= n {
		src := dataPtr(c)
		srcWords := payloadWords(a.region, c)
		merged := a.mergeLeft(a.mergeRight(c))
		a.allocateChunk(merged, n, false)
		dst := dataPtr(merged)
		a.transfer(dst, src, srcWords)
		return dst
	}

	// Case D: relocate, copy, release the original.
	np := a.allocate(byteSize, false)
	if np == None {
		return None
	}
	a.transfer(np, dataPtr(c), payloadWords(a.region, c))
	a.release(p)
	return np
}
