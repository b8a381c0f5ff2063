// Package region turns raw addresses into classified, immutable byte
// snapshots: it infers a length for each address, captures the bytes, and
// derives the facts traversal needs (pointer candidates, printable strings,
// a classification label).
package region

import (
	"fmt"

	"memgraph/process"
)

// Kind is the coarse classification of a region, ordered by the priority of
// the query that produced it.
type Kind int

const (
	// KindUnknown is an address nothing else claimed.
	KindUnknown Kind = iota
	// KindHeap is the start of a live heap allocation.
	KindHeap
	// KindSymbol is the exact start of an exported symbol.
	KindSymbol
	// KindInstance is a runtime object whose first word points at a known
	// type descriptor.
	KindInstance
	// KindDescriptor is the exact address of a runtime type descriptor.
	KindDescriptor
)

func (k Kind) String() string {
	switch k {
	case KindDescriptor:
		return "type descriptor"
	case KindInstance:
		return "object"
	case KindSymbol:
		return "symbol"
	case KindHeap:
		return "heap block"
	default:
		return "unknown"
	}
}

// Classification is the label attached to a region: its kind plus the most
// specific name the classifier could attach (type name, symbol name, "").
type Classification struct {
	Kind  Kind
	Label string
}

func (c Classification) String() string {
	if c.Label == "" {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Label)
}

// Classifier answers the independent, side-effect-free queries region
// construction needs. Every collaborator except Mem is optional; a nil source
// simply never claims an address.
type Classifier struct {
	Mem       process.MemoryReader
	Heap      process.HeapSource
	Symbols   process.SymbolSource
	Types     process.TypeTable
	Demangler process.Demangler
}

// HeapAllocationSize returns the usable size of the heap allocation starting
// exactly at addr, or 0.
func (c *Classifier) HeapAllocationSize(addr process.Address) process.Size {
	if c.Heap == nil {
		return 0
	}
	return c.Heap.AllocationSize(addr)
}

// SymbolAt returns the exported symbol starting exactly at addr. Pointers
// into the middle of a symbol are not symbol starts.
func (c *Classifier) SymbolAt(addr process.Address) (process.Symbol, bool) {
	if c.Symbols == nil {
		return process.Symbol{}, false
	}
	sym, ok := c.Symbols.Resolve(addr)
	if !ok || sym.Addr != addr {
		return process.Symbol{}, false
	}
	return sym, true
}

// NextDistinctSymbolOffset walks forward from addr one byte at a time until
// the owning symbol changes, and returns the distance walked. It fails
// closed: when addr is not owned by any symbol or the walk passes limit
// without finding a boundary, the second return is false.
func (c *Classifier) NextDistinctSymbolOffset(addr process.Address, limit process.Size) (process.Size, bool) {
	if c.Symbols == nil {
		return 0, false
	}
	owner, ok := c.Symbols.Resolve(addr)
	if !ok {
		return 0, false
	}
	for off := process.Size(1); off <= limit; off++ {
		next, ok := c.Symbols.Resolve(addr.Add(off))
		if !ok || next.Addr != owner.Addr {
			return off, true
		}
	}
	return 0, false
}

// DescriptorName returns the runtime type name registered at exactly addr.
func (c *Classifier) DescriptorName(addr process.Address) (string, bool) {
	if c.Types == nil {
		return "", false
	}
	return c.Types.DescriptorName(addr)
}

// InstanceDescriptorName reads the pointer-sized word at addr (the descriptor
// pointer every runtime object stores at offset 0) and looks it up in the
// type table. It returns false when the read fails or the word is not a known
// descriptor address.
func (c *Classifier) InstanceDescriptorName(addr process.Address) (string, bool) {
	if c.Types == nil {
		return "", false
	}
	word, err := c.Mem.ReadStrict(addr, process.PointerSize)
	if err != nil {
		return "", false
	}
	return c.Types.DescriptorName(process.DecodePointer(word))
}

// Classify labels an address. The chain runs identity checks before generic
// heuristics: an object's descriptor word can coincidentally alias a heap
// block, so descriptor and instance matches must win over heap metadata.
func (c *Classifier) Classify(addr process.Address) Classification {
	if name, ok := c.DescriptorName(addr); ok {
		return Classification{Kind: KindDescriptor, Label: name}
	}
	if name, ok := c.InstanceDescriptorName(addr); ok {
		return Classification{Kind: KindInstance, Label: name}
	}
	if sym, ok := c.SymbolAt(addr); ok {
		return Classification{Kind: KindSymbol, Label: c.demangle(sym.Name)}
	}
	if c.HeapAllocationSize(addr) > 0 {
		return Classification{Kind: KindHeap}
	}
	return Classification{Kind: KindUnknown}
}

func (c *Classifier) demangle(name string) string {
	if c.Demangler == nil {
		return name
	}
	return c.Demangler.Demangle(name)
}
