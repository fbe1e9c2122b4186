package arena

import "github.com/nmxmxh/inos-arena/internal/words"

// right returns the chunk physically adjacent to c's right, or noChunk if
// c's footer abuts the region end.
func right(region []byte, c chunk) chunk {
	next := footerOffset(region, c) + 1
	if next*words.Size >= uint32(len(region)) {
		return noChunk
	}
	return chunk(next)
}

// left returns the chunk physically adjacent to c's left, or noChunk if
// c's header abuts the region start.
func left(region []byte, c chunk) chunk {
	if uint32(c) == 0 {
		return noChunk
	}
	return chunkFromFooter(region, uint32(c)-1)
}
