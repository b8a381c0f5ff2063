// Package memblob implements a snapshot-backed process.MemoryReader: a set of
// captured memory segments addressed at their original locations. Blobs serve
// offline re-analysis of saved captures and stand in for live memory in tests,
// where holes between segments model unmapped pages.
package memblob

import (
	"fmt"
	"sort"

	"memgraph/process"
)

// Segment is one captured span of memory at its original base address.
type Segment struct {
	Base process.Address
	Data []byte
}

// End returns the first address past the segment.
func (s Segment) End() process.Address {
	return s.Base.Add(process.Size(len(s.Data)))
}

// Blob is an immutable-after-build set of segments implementing
// process.MemoryReader with the same strict/prefix chunk semantics as a live
// reader.
type Blob struct {
	segments []Segment // sorted by Base
}

var _ process.MemoryReader = (*Blob)(nil)

// New builds a blob from the given segments. Segments must not overlap.
func New(segments ...Segment) *Blob {
	b := &Blob{segments: make([]Segment, len(segments))}
	copy(b.segments, segments)
	sort.Slice(b.segments, func(i, j int) bool {
		return b.segments[i].Base < b.segments[j].Base
	})
	return b
}

// Add appends a segment. Not safe to call once the blob is handed to readers.
func (b *Blob) Add(base process.Address, data []byte) {
	b.segments = append(b.segments, Segment{Base: base, Data: data})
	sort.Slice(b.segments, func(i, j int) bool {
		return b.segments[i].Base < b.segments[j].Base
	})
}

// Segments returns the segments in address order.
func (b *Blob) Segments() []Segment {
	return b.segments
}

// readExact copies size bytes starting at addr, walking across contiguous
// segments. Any gap fails the copy.
func (b *Blob) readExact(addr process.Address, size process.Size) ([]byte, error) {
	out := make([]byte, 0, size)
	for size > 0 {
		i := sort.Search(len(b.segments), func(i int) bool {
			return b.segments[i].End() > addr
		})
		if i >= len(b.segments) || b.segments[i].Base > addr {
			return nil, process.ErrAddressNotMapped
		}
		seg := b.segments[i]
		off := process.Size(addr.Diff(seg.Base))
		avail := process.Size(len(seg.Data)) - off
		n := size
		if n > avail {
			n = avail
		}
		out = append(out, seg.Data[off:off+n]...)
		addr = addr.Add(n)
		size -= n
	}
	return out, nil
}

// ReadStrict reads exactly size bytes at addr; a gap anywhere in the range
// fails the whole read.
func (b *Blob) ReadStrict(addr process.Address, size process.Size) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	return b.readExact(addr, size)
}

// ReadPrefix reads up to size bytes in ReadChunk steps, stopping at the first
// chunk that is not fully covered by segments.
func (b *Blob) ReadPrefix(addr process.Address, size process.Size) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, 0, size)
	for off := process.Size(0); off < size; off += process.ReadChunk {
		end := off + process.ReadChunk
		if end > size {
			end = size
		}
		chunk, err := b.readExact(addr.Add(off), end-off)
		if err != nil {
			break
		}
		buf = append(buf, chunk...)
	}

	if len(buf) == 0 {
		return nil, process.ErrAddressNotMapped
	}
	return buf, nil
}

// Capture reads size bytes (best effort, prefix semantics) from r at addr and
// stores whatever was readable as a new segment.
func (b *Blob) Capture(r process.MemoryReader, addr process.Address, size process.Size) error {
	data, err := r.ReadPrefix(addr, size)
	if err != nil {
		return fmt.Errorf("capture %s: %w", addr.Hex(), err)
	}
	b.Add(addr, data)
	return nil
}
