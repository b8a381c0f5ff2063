package process

// Symbol is one exported, address-located entity published by a loaded module.
type Symbol struct {
	Addr Address // start of the symbol
	Size Size    // declared size, 0 when the module does not record one
	Name string  // raw (possibly mangled) name
}

// SymbolSource resolves addresses against the exported symbols of the target.
type SymbolSource interface {
	// Resolve returns the nearest symbol at or before addr. The second return
	// is false when no symbol owns the address.
	Resolve(addr Address) (Symbol, bool)
}

// HeapSource exposes allocator metadata for the target.
type HeapSource interface {
	// AllocationSize returns the usable size of the live heap allocation
	// starting exactly at addr, or 0 when addr is not an allocation start.
	AllocationSize(addr Address) Size
}

// TypeTable is a read-only lookup over every loaded runtime type descriptor.
// It is built once per process and injected wherever descriptor identity is
// needed; it must never be consulted through package-level state.
type TypeTable interface {
	// DescriptorName returns the type name for an exact descriptor address.
	DescriptorName(addr Address) (string, bool)
}

// Demangler converts a raw symbol name into a display name. Implementations
// are total: when demangling fails they return the input unchanged.
type Demangler interface {
	Demangle(name string) string
}

// IdentityDemangler returns names unchanged. Useful when no external
// demangling tool is available, and in tests.
type IdentityDemangler struct{}

func (IdentityDemangler) Demangle(name string) string { return name }
