// Package symtab resolves addresses against the exported symbols of a target
// process and maintains the runtime type-descriptor table used for region
// classification. A Table is built once per target and injected into the
// classifier; nothing in this package holds process-wide state.
package symtab

import (
	"sort"

	"memgraph/process"
)

// Table is a sorted, read-only view of a target's exported symbols.
type Table struct {
	syms []process.Symbol // sorted by Addr
}

var _ process.SymbolSource = (*Table)(nil)

// NewTable builds a table from an arbitrary symbol set. Used by fixtures and
// tests; live targets go through FromPID.
func NewTable(syms []process.Symbol) *Table {
	t := &Table{syms: make([]process.Symbol, len(syms))}
	copy(t.syms, syms)
	sort.Slice(t.syms, func(i, j int) bool {
		return t.syms[i].Addr < t.syms[j].Addr
	})
	return t
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.syms)
}

// Symbols returns the symbols in address order.
func (t *Table) Symbols() []process.Symbol {
	return t.syms
}

// Resolve returns the nearest symbol at or before addr. A symbol with a
// declared size owns only its own range; a zero-size symbol owns everything
// up to the next symbol start.
func (t *Table) Resolve(addr process.Address) (process.Symbol, bool) {
	i := sort.Search(len(t.syms), func(i int) bool {
		return t.syms[i].Addr > addr
	})
	if i == 0 {
		return process.Symbol{}, false
	}
	sym := t.syms[i-1]
	if sym.Size > 0 && addr >= sym.Addr.Add(sym.Size) {
		return process.Symbol{}, false
	}
	return sym, true
}
