package region

import (
	"fmt"

	"memgraph/process"
)

// ProbeLength is the best-effort read window for addresses whose true extent
// is unknowable. It is a display ceiling, not a semantic value; tune freely.
var ProbeLength = process.Size(128)

// SymbolScanLimit bounds the forward walk that measures an unknown-sized
// symbol against the next distinct symbol.
var SymbolScanLimit = process.Size(4096)

// minStringRun is the shortest printable run reported by PrintableStrings.
const minStringRun = 4

// PointerCandidate is one pointer-sized word of a region, tagged with its
// byte offset. Candidates are a superset of real pointers; words that do not
// resolve to readable memory are dropped during traversal.
type PointerCandidate struct {
	Offset process.Size
	Target process.Address
}

// Region is an immutable snapshot of one span of memory: the bytes captured
// at discovery time plus the classifier's verdict. Later mutation of the live
// memory is not reflected.
type Region struct {
	Addr          process.Address
	Bytes         []byte
	Class         Classification
	HeapAllocated bool
	SymbolName    string // demangled name when Addr is an exact symbol start
}

// New constructs a region at an address whose size is not known to the
// caller. Length is inferred in priority order: distance to the next distinct
// symbol when addr is an exact symbol start, else the heap allocation size,
// else a ProbeLength best-effort window. Derived lengths must read in full;
// the probe path accepts any non-empty prefix.
func New(addr process.Address, c *Classifier) (*Region, error) {
	return construct(addr, 0, false, c)
}

// NewSized constructs a region whose size the caller knows. The full range
// must read, and an explicit size of 0 builds an empty region (a genuinely
// zero-sized value).
func NewSized(addr process.Address, size process.Size, c *Classifier) (*Region, error) {
	return construct(addr, size, true, c)
}

func construct(addr process.Address, knownSize process.Size, hasKnown bool, c *Classifier) (*Region, error) {
	// Heap and symbol facts feed classification regardless of which rule ends
	// up deciding the length.
	heapSize := c.HeapAllocationSize(addr)
	sym, isSymbolStart := c.SymbolAt(addr)

	var data []byte
	var err error
	switch {
	case hasKnown:
		data, err = c.Mem.ReadStrict(addr, knownSize)
	default:
		length := process.Size(0)
		if isSymbolStart {
			if off, ok := c.NextDistinctSymbolOffset(addr, SymbolScanLimit); ok {
				length = off
			}
		}
		if length == 0 {
			length = heapSize
		}
		if length > 0 {
			data, err = c.Mem.ReadStrict(addr, length)
		} else {
			data, err = c.Mem.ReadPrefix(addr, ProbeLength)
			if err == nil && len(data) == 0 {
				err = process.ErrAddressNotMapped
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", process.ErrRegionNotUnderstood, addr.Hex(), err)
	}

	r := &Region{
		Addr:          addr,
		Bytes:         data,
		Class:         c.Classify(addr),
		HeapAllocated: heapSize > 0,
	}
	if isSymbolStart {
		r.SymbolName = c.demangle(sym.Name)
	}
	return r, nil
}

// Len returns the snapshot length in bytes.
func (r *Region) Len() process.Size {
	return process.Size(len(r.Bytes))
}

func (r *Region) String() string {
	return fmt.Sprintf("%s at %s, %d bytes", r.Class, r.Addr.Hex(), len(r.Bytes))
}

// PointerCandidates returns every complete pointer-aligned word of the
// snapshot, offset-tagged, in offset order. A trailing partial word is
// ignored.
func (r *Region) PointerCandidates() []PointerCandidate {
	var out []PointerCandidate
	for off := 0; off+process.PointerSize <= len(r.Bytes); off += process.PointerSize {
		out = append(out, PointerCandidate{
			Offset: process.Size(off),
			Target: process.DecodePointer(r.Bytes[off:]),
		})
	}
	return out
}

// PrintableStrings returns the maximal runs of printable ASCII (0x20-0x7E)
// of length >= 4, in offset order.
func (r *Region) PrintableStrings() []string {
	var out []string
	start := -1
	for i, b := range r.Bytes {
		printable := b >= 0x20 && b <= 0x7E
		if printable && start < 0 {
			start = i
		}
		if !printable && start >= 0 {
			if i-start >= minStringRun {
				out = append(out, string(r.Bytes[start:i]))
			}
			start = -1
		}
	}
	if start >= 0 && len(r.Bytes)-start >= minStringRun {
		out = append(out, string(r.Bytes[start:]))
	}
	return out
}
