// Package process provides the value types and collaborator interfaces shared
// by every layer of the memory graph engine: addresses, sizes, the safe memory
// read contract, and the classification sources (symbols, heap metadata,
// runtime type descriptors).
package process

import (
	"encoding/binary"
	"fmt"
)

// PointerSize is the width of a machine word on the supported targets
// (linux/amd64). Pointer candidates are decoded at this granularity.
const PointerSize = 8

// Address represents a byte location in a process address space.
// Equality, ordering and map hashing are by numeric value.
type Address uint64

// Add returns the address offset forward by size bytes.
func (a Address) Add(size Size) Address {
	return a + Address(size)
}

// Diff returns the signed distance a - other. It is only meaningful when both
// addresses belong to the same address space and a is at or after other.
func (a Address) Diff(other Address) int64 {
	return int64(a) - int64(other)
}

// Hex returns the canonical debugger form of the address, e.g. "0x7f2a10".
func (a Address) Hex() string {
	return fmt.Sprintf("0x%x", uint64(a))
}

func (a Address) String() string {
	return a.Hex()
}

// Size represents a byte count within a process address space.
type Size uint64

func (s Size) String() string {
	return fmt.Sprintf("%d bytes", uint64(s))
}

// DecodePointer interprets the first PointerSize bytes of data as a
// little-endian machine word. The caller guarantees len(data) >= PointerSize.
func DecodePointer(data []byte) Address {
	return Address(binary.LittleEndian.Uint64(data[:PointerSize]))
}

// EncodePointer writes addr as a little-endian machine word into dst.
// The caller guarantees len(dst) >= PointerSize.
func EncodePointer(dst []byte, addr Address) {
	binary.LittleEndian.PutUint64(dst[:PointerSize], uint64(addr))
}
