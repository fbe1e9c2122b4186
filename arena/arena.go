// Package arena implements a bounded-buffer heap allocator over a caller-
// supplied byte slice: boundary-tag coalescing with segregated sorted free
// lists, addressed by region-relative word offsets rather than pointers.
package arena

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nmxmxh/inos-arena/internal/utils"
	"github.com/nmxmxh/inos-arena/internal/words"
)

// Ptr is a word offset into an Arena's region. None means "no allocation".
type Ptr uint32

// None is the sentinel Ptr returned on failure and accepted as a no-op
// argument to Resize and Release.
const None = Ptr(words.NIL)

// Arena manages a single fixed-size region as a bounded buffer heap. It is
// not safe for concurrent use without external synchronization.
type Arena struct {
	region []byte
	power  uint32
	heads  [NumClasses]uint32

	id     uuid.UUID
	logger *utils.Logger
}

// Stats is a snapshot of an Arena's occupancy, gathered by walking its
// free lists.
type Stats struct {
	RegionWords uint32
	FreeWords   uint32
	UsedWords   uint32
	ClassCounts [NumClasses]int
}

// New creates an Arena over region, which must be at least 16 bytes and a
// multiple of the word size. power controls the segregated size-class
// boundaries (class i holds payloads < 2^((i+1)*power)); it must be >= 1.
func New(region []byte, power uint32) (*Arena, error) {
	if len(region) < 16 {
		return nil, utils.WrapError(ErrInvalidRegion, fmt.Sprintf("region too small: %d bytes", len(region)))
	}
	if len(region)%words.Size != 0 {
		return nil, utils.WrapError(ErrInvalidRegion, fmt.Sprintf("region size %d is not a multiple of %d", len(region), words.Size))
	}
	if power < 1 {
		return nil, utils.WrapError(ErrInvalidRegion, "power must be >= 1")
	}

	a := &Arena{
		region: region,
		power:  power,
		id:     uuid.New(),
	}
	for i := range a.heads {
		a.heads[i] = words.NIL
	}

	total := words.RoundDown(len(region))
	whole := chunk(0)
	setSize(a.region, whole, int32(total-2))
	a.insertFree(whole)

	return a, nil
}

// WithLogger attaches a logger used for diagnostic Debug/Warn messages.
// Arena operations are silent without one.
func (a *Arena) WithLogger(l *utils.Logger) *Arena {
	a.logger = l
	return a
}

// ID returns the Arena's correlation id, useful for tagging log lines and
// metrics across multiple concurrently-managed arenas.
func (a *Arena) ID() uuid.UUID {
	return a.id
}

// Allocate reserves at least byteSize bytes and returns a Ptr to them, or
// None if no free chunk is large enough.
func (a *Arena) Allocate(byteSize int) Ptr {
	return a.allocate(byteSize, false)
}

// ClearAllocate behaves like Allocate but zero-fills the returned payload.
// count and elemSize follow calloc's overflow-checked-product convention.
func (a *Arena) ClearAllocate(count, elemSize int) Ptr {
	if count <= 0 || elemSize <= 0 {
		return None
	}
	total := count * elemSize
	if total/count != elemSize {
		return None
	}
	return a.allocate(total, true)
}

// Resize grows or shrinks the allocation at p to byteSize, preserving as
// much of the original payload as fits. A None p behaves as Allocate; a
// zero byteSize behaves as Release. The returned Ptr may differ from p.
func (a *Arena) Resize(p Ptr, byteSize int) Ptr {
	return a.resize(p, byteSize)
}

// Release returns the allocation at p to the free pool, coalescing with
// any physically adjacent free chunks. A None p is a no-op.
func (a *Arena) Release(p Ptr) {
	a.release(p)
}

// Read copies byteLen bytes starting at p out of the region. It does not
// validate that p names a live allocation of that length.
func (a *Arena) Read(p Ptr, byteLen int) []byte {
	if p == None || byteLen <= 0 {
		return nil
	}
	start := uint32(p) * words.Size
	out := make([]byte, byteLen)
	copy(out, a.region[start:start+uint32(byteLen)])
	return out
}

// Write copies data into the region starting at p. It does not validate
// that p names a live allocation large enough to hold data.
func (a *Arena) Write(p Ptr, data []byte) {
	if p == None || len(data) == 0 {
		return
	}
	start := uint32(p) * words.Size
	copy(a.region[start:start+uint32(len(data))], data)
}

// Stats walks every free-list class and reports occupancy.
func (a *Arena) Stats() Stats {
	s := Stats{RegionWords: words.RoundDown(len(a.region))}
	for k := 0; k < NumClasses; k++ {
		curr := chunk(a.heads[k])
		for curr.valid() {
			s.FreeWords += space(a.region, curr)
			s.ClassCounts[k]++
			curr = chunk(nextLink(a.region, curr))
		}
	}
	s.UsedWords = s.RegionWords - s.FreeWords
	return s
}

// Check walks the region physically, start to end, verifying that header
// and footer agree on every chunk and that the sum of every chunk's
// footprint accounts for the whole region. It is a diagnostic, not part
// of the hot path.
func (a *Arena) Check() error {
	total := words.RoundDown(len(a.region))
	var walked uint32
	var prevFree bool
	c := chunk(0)
	for walked < total {
		if !checkMeta(a.region, c) {
			return utils.WrapError(ErrCorruptMetadata, fmt.Sprintf("header/footer mismatch at word %d", uint32(c)))
		}
		free := isFree(a.region, c)
		if free && prevFree {
			return utils.WrapError(ErrCorruptMetadata, fmt.Sprintf("adjacent free chunks left uncoalesced at word %d", uint32(c)))
		}
		prevFree = free

		s := space(a.region, c)
		walked += s
		if walked > total {
			return utils.WrapError(ErrCorruptMetadata, fmt.Sprintf("chunk at word %d overruns region", uint32(c)))
		}
		c = chunk(uint32(c) + s)
	}
	return nil
}
