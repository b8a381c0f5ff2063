//go:build linux

package symtab

import (
	"debug/elf"
	"fmt"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"memgraph/process"
	"memgraph/process/memory_map"
)

// FromPID builds the symbol table for a running process by reading the ELF
// symbol tables of every executable file mapping and rebasing them to their
// load addresses. Files that cannot be opened or carry no symbols are
// skipped; an empty table is a legal result.
func FromPID(pid int, mappings []memory_map.Mapping) *Table {
	log := logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("symtab-%d", pid)))

	var syms []process.Symbol
	seen := make(map[string]bool)
	for _, m := range mappings {
		if m.Path == "" || m.Path[0] == '[' || seen[m.Path] {
			continue
		}
		if !m.IsExecutable() {
			continue
		}
		seen[m.Path] = true

		base := lowestMappingFor(m.Path, mappings)
		fileSyms, err := readELFSymbols(m.Path, base)
		if err != nil {
			log.Debugln("skipping", m.Path, err)
			continue
		}
		syms = append(syms, fileSyms...)
	}

	log.Infoln("Collected", len(syms), "symbols from", len(seen), "modules")
	return NewTable(syms)
}

func lowestMappingFor(path string, mappings []memory_map.Mapping) process.Address {
	base := process.Address(0)
	for _, m := range mappings {
		if m.Path == path && (base == 0 || m.Start < base) {
			base = m.Start
		}
	}
	return base
}

func readELFSymbols(path string, mapBase process.Address) ([]process.Symbol, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Shared objects and PIE executables are rebased to where the loader put
	// them; fixed-address executables keep their link-time addresses.
	bias := process.Address(0)
	if f.Type == elf.ET_DYN {
		bias = mapBase - lowestLoadVaddr(f)
	}

	var out []process.Symbol
	appendSyms := func(elfSyms []elf.Symbol) {
		for _, s := range elfSyms {
			kind := elf.ST_TYPE(s.Info)
			if s.Value == 0 || (kind != elf.STT_FUNC && kind != elf.STT_OBJECT) {
				continue
			}
			out = append(out, process.Symbol{
				Addr: process.Address(s.Value) + bias,
				Size: process.Size(s.Size),
				Name: s.Name,
			})
		}
	}

	if syms, err := f.Symbols(); err == nil {
		appendSyms(syms)
	}
	if dynSyms, err := f.DynamicSymbols(); err == nil {
		appendSyms(dynSyms)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no symbols")
	}
	return out, nil
}

func lowestLoadVaddr(f *elf.File) process.Address {
	lowest := process.Address(0)
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		if lowest == 0 || process.Address(p.Vaddr) < lowest {
			lowest = process.Address(p.Vaddr)
		}
	}
	return lowest
}
