// Package memory_map models the virtual memory layout of a process as a
// sorted list of mappings, and answers "is this address backed by readable
// memory" queries against it.
package memory_map

import (
	"fmt"
	"sort"

	"memgraph/process"
)

// Mapping is one region of a process's address space.
type Mapping struct {
	Start process.Address // starting address of the mapping
	Size  process.Size    // length in bytes
	Perms string          // e.g. "r-xp"
	Path  string          // backing file, or "" for anonymous mappings
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s +%d %s %s", m.Start.Hex(), uint64(m.Size), m.Perms, m.Path)
}

// End returns the first address past the mapping.
func (m Mapping) End() process.Address {
	return m.Start.Add(m.Size)
}

// Contains reports whether addr falls inside the mapping.
func (m Mapping) Contains(addr process.Address) bool {
	return addr >= m.Start && addr < m.End()
}

func (m Mapping) IsReadable() bool {
	return len(m.Perms) > 0 && m.Perms[0] == 'r'
}

func (m Mapping) IsWritable() bool {
	return len(m.Perms) > 1 && m.Perms[1] == 'w'
}

func (m Mapping) IsExecutable() bool {
	return len(m.Perms) > 2 && m.Perms[2] == 'x'
}

// Sort orders mappings by start address, the order Find requires.
func Sort(mappings []Mapping) {
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].Start < mappings[j].Start
	})
}

// Find returns the mapping containing addr, or nil. mappings must be sorted
// by start address.
func Find(addr process.Address, mappings []Mapping) *Mapping {
	i := sort.Search(len(mappings), func(i int) bool {
		return mappings[i].End() > addr
	})
	if i < len(mappings) && mappings[i].Start <= addr {
		return &mappings[i]
	}
	return nil
}

// IsReadableAddress reports whether addr falls inside a readable mapping.
// mappings must be sorted by start address.
func IsReadableAddress(addr process.Address, mappings []Mapping) bool {
	m := Find(addr, mappings)
	return m != nil && m.IsReadable()
}
