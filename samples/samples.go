// Package samples builds the named fixture dumps the sample command runs:
// small in-process structures (chains, cycles, shared leaves, typed objects)
// whose memory the engine then discovers like any other target. This is
// demonstration and test plumbing, not engine behavior.
package samples

import (
	"fmt"
	"sort"

	"memgraph/graph"
	"memgraph/process"
	"memgraph/symtab"
)

// Dump names one runnable sample: a root address, an optional known size,
// and the traversal depth to use.
type Dump struct {
	Name        string
	Description string
	Addr        process.Address
	KnownSize   process.Size
	HasSize     bool
	MaxDepth    int
}

// Root converts the dump into a traversal root.
func (d Dump) Root() graph.Root {
	if d.HasSize {
		return graph.SizedRoot(d.Addr, d.KnownSize)
	}
	return graph.Root{Addr: d.Addr}
}

// Env is one built fixture set: the dumps plus the heap and type-table
// collaborators that classify their memory. Keep the Env alive for as long
// as its dumps are being traversed.
type Env struct {
	Heap  *Heap
	Types *symtab.Types

	dumps  []Dump
	byName map[string]Dump
}

// Names returns the sample names in registration order.
func (e *Env) Names() []string {
	names := make([]string, len(e.dumps))
	for i, d := range e.dumps {
		names[i] = d.Name
	}
	return names
}

// All returns every dump in registration order.
func (e *Env) All() []Dump {
	return e.dumps
}

// Lookup resolves a sample by name. An unknown name is a user-visible
// configuration error, the only error class this layer surfaces.
func (e *Env) Lookup(name string) (Dump, error) {
	if d, ok := e.byName[name]; ok {
		return d, nil
	}
	names := e.Names()
	sort.Strings(names)
	return Dump{}, fmt.Errorf("unknown sample %q (available: %v)", name, names)
}

// Select resolves a selection string: a sample name, or "all"/"" for every
// sample.
func (e *Env) Select(name string) ([]Dump, error) {
	if name == "" || name == "all" {
		return e.All(), nil
	}
	d, err := e.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []Dump{d}, nil
}

func (e *Env) add(d Dump) {
	e.dumps = append(e.dumps, d)
	e.byName[d.Name] = d
}

const defaultDepth = 10

// Fixture builds the full sample set in this process's memory.
func Fixture() *Env {
	e := &Env{
		Heap:   NewHeap(),
		byName: make(map[string]Dump),
	}
	types := make(map[process.Address]string)

	// simple-struct: three machine words holding 1, 2, 3, size known to the
	// caller the way a sizeof() is.
	{
		addr, buf := e.Heap.Alloc(24)
		process.EncodePointer(buf[0:], 1)
		process.EncodePointer(buf[8:], 2)
		process.EncodePointer(buf[16:], 3)
		e.add(Dump{
			Name:        "simple-struct",
			Description: "three plain words, no pointers",
			Addr:        addr,
			KnownSize:   24,
			HasSize:     true,
			MaxDepth:    defaultDepth,
		})
	}

	// linked-chain: four heap nodes of [next, data], each data pointing at a
	// printable string block; the last next is null.
	{
		texts := []string{"chain node one", "chain node two", "chain node three", "chain node tail"}
		next := process.Address(0)
		for i := len(texts) - 1; i >= 0; i-- {
			strAddr, strBuf := e.Heap.Alloc(16)
			copy(strBuf, texts[i])
			nodeAddr, nodeBuf := e.Heap.Alloc(16)
			process.EncodePointer(nodeBuf[0:], next)
			process.EncodePointer(nodeBuf[8:], strAddr)
			next = nodeAddr
		}
		e.add(Dump{
			Name:        "linked-chain",
			Description: "singly linked list with string payloads",
			Addr:        next,
			KnownSize:   16,
			HasSize:     true,
			MaxDepth:    defaultDepth,
		})
	}

	// self-loop: a block whose first word is its own address.
	{
		addr, buf := e.Heap.Alloc(24)
		process.EncodePointer(buf[0:], addr)
		copy(buf[16:], "loop")
		e.add(Dump{
			Name:        "self-loop",
			Description: "block pointing at itself",
			Addr:        addr,
			MaxDepth:    defaultDepth,
		})
	}

	// shared-leaf: two parents both pointing at one leaf; the root points at
	// both parents. The leaf must appear once in the graph.
	{
		leafAddr, leafBuf := e.Heap.Alloc(16)
		copy(leafBuf, "hello world")
		parentA, bufA := e.Heap.Alloc(8)
		process.EncodePointer(bufA, leafAddr)
		parentB, bufB := e.Heap.Alloc(8)
		process.EncodePointer(bufB, leafAddr)
		rootAddr, rootBuf := e.Heap.Alloc(16)
		process.EncodePointer(rootBuf[0:], parentA)
		process.EncodePointer(rootBuf[8:], parentB)
		e.add(Dump{
			Name:        "shared-leaf",
			Description: "diamond: two parents share one leaf",
			Addr:        rootAddr,
			KnownSize:   16,
			HasSize:     true,
			MaxDepth:    defaultDepth,
		})
	}

	// typed-object: a block whose first word points at a registered type
	// descriptor, exercising the instance classification path.
	{
		descAddr, descBuf := e.Heap.Alloc(16)
		copy(descBuf, "SampleWidget")
		types[descAddr] = "SampleWidget"

		objAddr, objBuf := e.Heap.Alloc(24)
		process.EncodePointer(objBuf[0:], descAddr)
		strAddr, strBuf := e.Heap.Alloc(16)
		copy(strBuf, "widget state")
		process.EncodePointer(objBuf[8:], strAddr)
		e.add(Dump{
			Name:        "typed-object",
			Description: "runtime object with a descriptor word",
			Addr:        objAddr,
			MaxDepth:    defaultDepth,
		})
	}

	// string-table: one block of pointers to string blocks.
	{
		texts := []string{"alpha", "bravo", "charlie", "delta"}
		tableAddr, tableBuf := e.Heap.Alloc(len(texts) * process.PointerSize)
		for i, text := range texts {
			strAddr, strBuf := e.Heap.Alloc(16)
			copy(strBuf, text)
			process.EncodePointer(tableBuf[i*process.PointerSize:], strAddr)
		}
		e.add(Dump{
			Name:        "string-table",
			Description: "array of pointers to strings",
			Addr:        tableAddr,
			MaxDepth:    defaultDepth,
		})
	}

	e.Types = symtab.NewTypes(types)
	return e
}
