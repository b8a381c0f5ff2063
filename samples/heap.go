package samples

import (
	"unsafe"

	"memgraph/process"
)

// Heap is a recording allocator: every block it hands out is remembered by
// its real in-process address, so it can answer the classifier's heap
// metadata queries for fixture memory. Holding the Heap keeps all fixture
// blocks alive for the life of the run.
type Heap struct {
	blocks map[process.Address][]byte
}

var _ process.HeapSource = (*Heap)(nil)

// NewHeap creates an empty recording allocator.
func NewHeap() *Heap {
	return &Heap{blocks: make(map[process.Address][]byte)}
}

// Alloc returns a zeroed block of the given size and its address in this
// process.
func (h *Heap) Alloc(size int) (process.Address, []byte) {
	if size <= 0 {
		size = 1
	}
	buf := make([]byte, size)
	addr := process.Address(uintptr(unsafe.Pointer(&buf[0])))
	h.blocks[addr] = buf
	return addr, buf
}

// AllocationSize returns the size of the block starting exactly at addr, or
// 0 when addr is not a recorded allocation start.
func (h *Heap) AllocationSize(addr process.Address) process.Size {
	if buf, ok := h.blocks[addr]; ok {
		return process.Size(len(buf))
	}
	return 0
}

// Len returns the number of live fixture blocks.
func (h *Heap) Len() int {
	return len(h.blocks)
}
