//go:build linux

package cli

import (
	"fmt"
	"os"

	"memgraph/demangle"
	"memgraph/process"
	"memgraph/process_linux"
	"memgraph/region"
	"memgraph/symtab"
)

// target is one opened process plus the classifier wiring for it.
type target struct {
	pid    int
	reader *process_linux.Reader
}

func openTarget(pid int) (*target, error) {
	reader, err := process_linux.New(pid)
	if err != nil {
		return nil, fmt.Errorf("open process %d: %w", pid, err)
	}
	return &target{pid: pid, reader: reader}, nil
}

func openSelf() (*target, error) {
	return openTarget(os.Getpid())
}

// resolveTarget picks the process from the --pid/--name/--self flag triple.
func resolveTarget(pid int, name string, self bool) (*target, error) {
	switch {
	case self:
		return openSelf()
	case name != "":
		p, err := process_linux.FindPID(name)
		if err != nil {
			return nil, err
		}
		return openTarget(p)
	case pid > 0:
		return openTarget(pid)
	default:
		return nil, fmt.Errorf("one of --pid, --name or --self is required")
	}
}

// newClassifier assembles the classifier for this target. When withSymbols
// is set the target's ELF symbol tables are loaded and, unless a type table
// is supplied, descriptor symbols become the type table.
func (t *target) newClassifier(cfg Config, heap process.HeapSource, types process.TypeTable, withSymbols bool) *region.Classifier {
	var symbols process.SymbolSource
	if withSymbols {
		table := symtab.FromPID(t.pid, t.reader.Mappings())
		symbols = table
		if types == nil {
			types = symtab.TypesFromSymbols(table.Symbols())
		}
	}
	return &region.Classifier{
		Mem:       t.reader,
		Heap:      heap,
		Symbols:   symbols,
		Types:     types,
		Demangler: demangle.New(cfg.Demangler),
	}
}
