package symtab

import (
	"strings"

	"memgraph/process"
)

// descriptor-marking name prefixes: Go runtime type descriptors and itabs,
// C++ vtables and typeinfo.
var descriptorPrefixes = []string{"type:", "type.", "go:itab.", "_ZTV", "_ZTI"}

// Types maps exact type-descriptor addresses to type names. Built once per
// target and reused for the run's lifetime.
type Types struct {
	byAddr map[process.Address]string
}

var _ process.TypeTable = (*Types)(nil)

// NewTypes builds an explicit address→name table. Used by fixtures and tests.
func NewTypes(entries map[process.Address]string) *Types {
	byAddr := make(map[process.Address]string, len(entries))
	for addr, name := range entries {
		byAddr[addr] = name
	}
	return &Types{byAddr: byAddr}
}

// TypesFromSymbols scans a symbol set for type-descriptor symbols and keys
// them by exact address.
func TypesFromSymbols(syms []process.Symbol) *Types {
	byAddr := make(map[process.Address]string)
	for _, sym := range syms {
		if name, ok := descriptorName(sym.Name); ok {
			byAddr[sym.Addr] = name
		}
	}
	return &Types{byAddr: byAddr}
}

// DescriptorName returns the type name registered at exactly addr. Pointers
// into the middle of a descriptor do not match.
func (t *Types) DescriptorName(addr process.Address) (string, bool) {
	name, ok := t.byAddr[addr]
	return name, ok
}

// Len returns the number of known descriptors.
func (t *Types) Len() int {
	return len(t.byAddr)
}

func descriptorName(symName string) (string, bool) {
	for _, prefix := range descriptorPrefixes {
		if strings.HasPrefix(symName, prefix) {
			if prefix == "type:" || prefix == "type." {
				return symName[len(prefix):], true
			}
			return symName, true
		}
	}
	return "", false
}
