package arena

import "github.com/nmxmxh/inos-arena/internal/utils"

// mergeRight marks c free and repeatedly merges it with a physically
// adjacent free chunk to its right, reclaiming the 2 tag words between
// each pair. It does not reinsert c into any free list — the caller
// decides what happens to the merged chunk next.
func (a *Arena) mergeRight(c chunk) chunk {
	setSize(a.region, c, int32(payloadWords(a.region, c)))
	for {
		r := right(a.region, c)
		if !r.valid() || !isFree(a.region, r) {
			break
		}
		a.removeFree(r)
		merged := payloadWords(a.region, c) + payloadWords(a.region, r) + 2
		setSize(a.region, c, int32(merged))
	}
	return c
}

// mergeLeft repeatedly merges c with a physically adjacent free chunk to
// its left, returning the merged chunk (which may now start at a lower
// word offset than c did).
func (a *Arena) mergeLeft(c chunk) chunk {
	for {
		l := left(a.region, c)
		if !l.valid() || !isFree(a.region, l) {
			break
		}
		a.removeFree(l)
		merged := payloadWords(a.region, l) + payloadWords(a.region, c) + 2
		setSize(a.region, l, int32(merged))
		c = l
	}
	return c
}

func (a *Arena) release(p Ptr) {
	if p == None {
		return
	}
	c := chunkFromData(p)
	if !checkMeta(a.region, c) {
		if a.logger != nil {
			a.logger.Warn("release: corrupt metadata",
				utils.String("arena_id", a.id.String()),
				utils.Err(ErrCorruptMetadata),
			)
		}
		return
	}
	if headerVal(a.region, c) >= 0 {
		if a.logger != nil {
			a.logger.Warn("release: double free",
				utils.String("arena_id", a.id.String()),
				utils.Err(ErrDoubleFree),
			)
		}
		return
	}

	c = a.mergeRight(c)
	c = a.mergeLeft(c)
	a.insertFree(c)
}
