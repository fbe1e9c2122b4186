package arena

import "github.com/nmxmxh/inos-arena/internal/words"

// NumClasses is K, the number of segregated size classes.
const NumClasses = 8

// classOf returns the smallest i in [0, NumClasses-1] such that
// n < 2^((i+1)*power); otherwise NumClasses-1. With power=2 this yields
// payload-word ranges <4, <16, <64, <256, <1024, <4096, <16384, >=16384.
func classOf(power uint32, n uint32) int {
	comp := uint32(1) << power
	for i := 0; i < NumClasses; i++ {
		if n < comp {
			return i
		}
		comp <<= power
	}
	return NumClasses - 1
}

// insertFree splices c into its size class, ordered by ascending payload
// size, keeping next/prev links symmetric.
func (a *Arena) insertFree(c chunk) {
	n := payloadWords(a.region, c)
	k := classOf(a.power, n)

	curr := chunk(a.heads[k])
	var prev chunk = noChunk
	for curr.valid() {
		if payloadWords(a.region, curr) >= n {
			break
		}
		prev = curr
		curr = chunk(nextLink(a.region, curr))
	}

	setNextLink(a.region, c, uint32(curr))
	if curr.valid() {
		setPrevLink(a.region, curr, uint32(c))
	}

	if !prev.valid() {
		setPrevLink(a.region, c, words.NIL)
		a.heads[k] = uint32(c)
		return
	}

	setPrevLink(a.region, c, uint32(prev))
	setNextLink(a.region, prev, uint32(c))
}

// removeFree unsplices c from its size class using its own links; it
// never searches.
func (a *Arena) removeFree(c chunk) {
	n := payloadWords(a.region, c)
	k := classOf(a.power, n)
	prev := chunk(prevLink(a.region, c))
	next := chunk(nextLink(a.region, c))

	if prev.valid() {
		setNextLink(a.region, prev, uint32(next))
	} else {
		a.heads[k] = uint32(next)
	}
	if next.valid() {
		setPrevLink(a.region, next, uint32(prev))
	}
}

// findBest scans classes c(n), c(n)+1, ..., K-1 and returns the first
// chunk whose payload is >= n. Because each class list is sorted
// ascending, the first hit within a class is the best fit available in
// that class.
func (a *Arena) findBest(n uint32) chunk {
	for k := classOf(a.power, n); k < NumClasses; k++ {
		curr := chunk(a.heads[k])
		for curr.valid() {
			if payloadWords(a.region, curr) >= n {
				return curr
			}
			curr = chunk(nextLink(a.region, curr))
		}
	}
	return noChunk
}
