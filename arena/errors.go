package arena

import "errors"

// Sentinel errors for the conditions the public surface can hit. Allocate,
// Resize and Release report failure through None/no-op so hot-path callers
// aren't forced into error handling, but they attach these as log fields
// (via utils.Err) wherever a.logger is set, and Check and New return them
// directly, so a caller who wants to know precisely what went wrong can.
var (
	// ErrInvalidRegion is returned by New when the region is too small,
	// misaligned, or power is out of range.
	ErrInvalidRegion = errors.New("arena: region too small, misaligned, or power < 1")

	// ErrZeroSize marks an Allocate request for zero or fewer bytes.
	// ClearAllocate rejects a non-positive count or element size without
	// attaching it.
	ErrZeroSize = errors.New("arena: zero-size request")

	// ErrOutOfSpace marks a request no free chunk can satisfy.
	ErrOutOfSpace = errors.New("arena: no chunk large enough")

	// ErrCorruptMetadata marks a chunk whose header and footer disagree.
	ErrCorruptMetadata = errors.New("arena: header/footer mismatch")

	// ErrDoubleFree marks a Release/Resize on a chunk that is already free.
	ErrDoubleFree = errors.New("arena: chunk already free")
)
