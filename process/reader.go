package process

// ReadChunk is the granularity of safe memory reads. Prefix reads accumulate
// whole chunks and stop at the first chunk that fails, so a partially mapped
// range yields its valid prefix rounded down to this granularity.
const ReadChunk = 64

// MemoryReader reads byte ranges from an address space without ever faulting
// the calling process. Implementations must report unreadable memory as an
// error, never as a crash.
type MemoryReader interface {
	// ReadStrict reads exactly size bytes starting at addr. If any part of the
	// range is unreadable the whole read fails. size 0 returns an empty slice.
	ReadStrict(addr Address, size Size) ([]byte, error)

	// ReadPrefix reads up to size bytes starting at addr, in ReadChunk-sized
	// steps, stopping at the first unreadable chunk. It returns the readable
	// prefix, which may be shorter than requested. An error is returned only
	// when not a single chunk could be read.
	ReadPrefix(addr Address, size Size) ([]byte, error)
}
