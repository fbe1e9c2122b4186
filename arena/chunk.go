package arena

import "github.com/nmxmxh/inos-arena/internal/words"

// chunk is a handle to a chunk's header word offset within a region. It
// replaces the source's raw pointer with a (region, offset) pair per the
// ownership-discipline note: neighbor traversal becomes index arithmetic
// and the underlying region layout is unchanged.
type chunk uint32

// noChunk is chunk's NIL value.
const noChunk = chunk(words.NIL)

func (c chunk) valid() bool { return uint32(c) != words.NIL }

// readWord reads the signed 32-bit word at word offset w.
func readWord(region []byte, w uint32) int32 {
	i := w * words.Size
	return int32(uint32(region[i]) | uint32(region[i+1])<<8 | uint32(region[i+2])<<16 | uint32(region[i+3])<<24)
}

// writeWord writes the signed 32-bit word v at word offset w.
func writeWord(region []byte, w uint32, v int32) {
	i := w * words.Size
	u := uint32(v)
	region[i] = byte(u)
	region[i+1] = byte(u >> 8)
	region[i+2] = byte(u >> 16)
	region[i+3] = byte(u >> 24)
}

// readLink and writeLink alias readWord/writeWord for the free-chunk
// link fields, which are unsigned offsets stored in the same word slot.
func readLink(region []byte, w uint32) uint32     { return uint32(readWord(region, w)) }
func writeLink(region []byte, w uint32, v uint32) { writeWord(region, w, int32(v)) }

// payloadWords returns |header(c)|.
func payloadWords(region []byte, c chunk) uint32 {
	h := readWord(region, uint32(c))
	if h < 0 {
		return uint32(-h)
	}
	return uint32(h)
}

// headerVal returns the raw signed header word, whose sign carries the
// free/taken status.
func headerVal(region []byte, c chunk) int32 {
	return readWord(region, uint32(c))
}

// isFree reports whether c's header is positive.
func isFree(region []byte, c chunk) bool {
	return headerVal(region, c) > 0
}

// space returns c's total word footprint: payload plus the two tag words.
func space(region []byte, c chunk) uint32 {
	return payloadWords(region, c) + 2
}

// footerOffset returns the word offset of c's footer.
func footerOffset(region []byte, c chunk) uint32 {
	return uint32(c) + 1 + payloadWords(region, c)
}

// checkMeta reports whether c's header and footer agree.
func checkMeta(region []byte, c chunk) bool {
	return readWord(region, uint32(c)) == readWord(region, footerOffset(region, c))
}

// setSize writes s to both c's header and footer in one logical step.
func setSize(region []byte, c chunk, s int32) {
	n := s
	if n < 0 {
		n = -n
	}
	writeWord(region, uint32(c), s)
	writeWord(region, uint32(c)+1+uint32(n), s)
}

// nextLink/prevLink read and write a free chunk's doubly-linked-list
// pointers, which alias its first two payload words. Callers must only
// touch these on chunks known to be free — the same words are caller
// payload once the chunk is taken.
func nextLink(region []byte, c chunk) uint32       { return readLink(region, uint32(c)+1) }
func setNextLink(region []byte, c chunk, v uint32) { writeLink(region, uint32(c)+1, v) }
func prevLink(region []byte, c chunk) uint32       { return readLink(region, uint32(c)+2) }
func setPrevLink(region []byte, c chunk, v uint32) { writeLink(region, uint32(c)+2, v) }

// dataPtr is the word offset callers see as an allocation's address: the
// first payload word, one past the header.
func dataPtr(c chunk) Ptr {
	if !c.valid() {
		return None
	}
	return Ptr(uint32(c) + 1)
}

// chunkFromData recovers the chunk handle from a data pointer.
func chunkFromData(p Ptr) chunk {
	if p == None {
		return noChunk
	}
	return chunk(uint32(p) - 1)
}

// chunkFromFooter derives a chunk's header offset from the word offset of
// its footer, using the footer's own magnitude to walk back over the
// payload.
func chunkFromFooter(region []byte, footer uint32) chunk {
	n := readWord(region, footer)
	if n < 0 {
		n = -n
	}
	return chunk(footer - uint32(n) - 1)
}
