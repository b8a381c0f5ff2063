//go:build linux

// Package process_linux implements the safe memory read primitive and the
// memory scanner for Linux targets, on top of the process_vm_readv syscall.
package process_linux

import (
	"fmt"
	"os"
	"sync"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"memgraph/process"
	"memgraph/process/memory_map"
)

// Reader reads the address space of one process without faulting. It
// implements process.MemoryReader with the chunked strict/prefix semantics
// the region engine depends on.
type Reader struct {
	pid int
	log *logger.Logger
	mm  []memory_map.Mapping
	mu  sync.Mutex
}

var _ process.MemoryReader = (*Reader)(nil)

// New opens a reader for the given pid and loads its memory map.
func New(pid int) (*Reader, error) {
	if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); err != nil {
		return nil, fmt.Errorf("process %d: %w", pid, err)
	}

	r := &Reader{
		pid: pid,
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("mem-%d", pid))),
	}
	if err := r.Refresh(); err != nil {
		return nil, fmt.Errorf("initialize memory map: %w", err)
	}
	r.log.Infoln("Reader opened,", len(r.mm), "mappings")
	return r, nil
}

// Self opens a reader for the calling process itself.
func Self() (*Reader, error) {
	return New(os.Getpid())
}

// PID returns the target process id.
func (r *Reader) PID() int {
	return r.pid
}

// Refresh re-reads /proc/<pid>/maps. The mapping list is only a pre-filter
// for obviously invalid addresses; the syscall remains the authority on
// readability.
func (r *Reader) Refresh() error {
	mm, err := memory_map.Read(r.pid)
	if err != nil {
		return fmt.Errorf("read memory map: %w", err)
	}
	r.mu.Lock()
	r.mm = mm
	r.mu.Unlock()
	return nil
}

// Mappings returns a copy of the current memory map.
func (r *Reader) Mappings() []memory_map.Mapping {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]memory_map.Mapping, len(r.mm))
	copy(out, r.mm)
	return out
}

// IsValidAddress reports whether addr falls inside a readable mapping.
func (r *Reader) IsValidAddress(addr process.Address) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isValidAddress(addr)
}

// Caller holds r.mu.
func (r *Reader) isValidAddress(addr process.Address) bool {
	// Null page and kernel half are never readable from here.
	if addr <= 0x10000 || addr > 0x7FFFFFFFFFFF {
		return false
	}
	return memory_map.IsReadableAddress(addr, r.mm)
}

// ReadStrict reads exactly size bytes at addr; any unreadable chunk fails the
// whole read.
func (r *Reader) ReadStrict(addr process.Address, size process.Size) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	r.mu.Lock()
	valid := r.isValidAddress(addr)
	r.mu.Unlock()
	if !valid {
		return nil, process.ErrAddressNotMapped
	}

	buf := make([]byte, size)
	for off := process.Size(0); off < size; off += process.ReadChunk {
		end := off + process.ReadChunk
		if end > size {
			end = size
		}
		chunk := buf[off:end]
		n, err := readProcessMemory(r.pid, addr.Add(off), chunk)
		if err != nil {
			return nil, err
		}
		if n != len(chunk) {
			return nil, fmt.Errorf("short read at %s: %d of %d bytes", addr.Add(off).Hex(), n, len(chunk))
		}
	}
	return buf, nil
}

// ReadPrefix reads up to size bytes at addr in ReadChunk steps, stopping at
// the first chunk that fails. A range that becomes unmapped partway through
// yields the valid prefix rounded down to chunk granularity.
func (r *Reader) ReadPrefix(addr process.Address, size process.Size) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, 0, size)
	for off := process.Size(0); off < size; off += process.ReadChunk {
		end := off + process.ReadChunk
		if end > size {
			end = size
		}
		chunk := make([]byte, end-off)

		r.mu.Lock()
		valid := r.isValidAddress(addr.Add(off))
		r.mu.Unlock()
		if !valid {
			break
		}

		n, err := readProcessMemory(r.pid, addr.Add(off), chunk)
		if err != nil || n != len(chunk) {
			r.log.Debugln("prefix read stopped at", addr.Add(off).Hex())
			break
		}
		buf = append(buf, chunk...)
	}

	if len(buf) == 0 {
		return nil, process.ErrAddressNotMapped
	}
	return buf, nil
}
