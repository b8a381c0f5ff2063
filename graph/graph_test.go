package graph

import (
	"testing"

	"memgraph/memblob"
	"memgraph/process"
	"memgraph/region"
)

type fakeHeap map[process.Address]process.Size

func (h fakeHeap) AllocationSize(addr process.Address) process.Size { return h[addr] }

// threeWordScenario builds the reference fixture: region A of three words
// where word 0 points at A itself, word 1 at unmapped memory, and word 2 at
// a 16-byte leaf containing "hello world".
func threeWordScenario() (*region.Classifier, process.Address, process.Address) {
	const (
		a = process.Address(0x1000)
		b = process.Address(0x2000)
	)

	rootData := make([]byte, 24)
	process.EncodePointer(rootData[0:], a)
	process.EncodePointer(rootData[8:], 0xdead0000)
	process.EncodePointer(rootData[16:], b)

	leafData := make([]byte, 16)
	copy(leafData, "hello world")

	blob := memblob.New(
		memblob.Segment{Base: a, Data: rootData},
		memblob.Segment{Base: b, Data: leafData},
	)
	c := &region.Classifier{Mem: blob, Heap: fakeHeap{b: 16}}
	return c, a, b
}

func TestScenarioSelfLoopAndLeaf(t *testing.T) {
	c, a, b := threeWordScenario()
	g := NewBuilder(c, 10).Build(SizedRoot(a, 24))

	if g.Len() != 2 {
		t.Fatalf("nodes = %d, want 2", g.Len())
	}
	nodeA := g.Node(a)
	nodeB := g.Node(b)
	if nodeA == nil || nodeB == nil {
		t.Fatal("both nodes must exist")
	}

	if len(nodeA.Children) != 2 {
		t.Fatalf("A edges = %d, want 2 (unmapped word drops silently)", len(nodeA.Children))
	}
	if nodeA.Children[0].Offset != 0 || nodeA.Children[0].To != nodeA {
		t.Errorf("edge 0 = +%d -> %p, want self-loop at offset 0", nodeA.Children[0].Offset, nodeA.Children[0].To)
	}
	if nodeA.Children[1].Offset != 16 || nodeA.Children[1].To != nodeB {
		t.Errorf("edge 1 = +%d, want +16 -> leaf", nodeA.Children[1].Offset)
	}

	strings := nodeB.Region.PrintableStrings()
	if len(strings) != 1 || strings[0] != "hello world" {
		t.Errorf("leaf strings = %q", strings)
	}
}

func TestDepthBoundStopsExpansionNotDiscovery(t *testing.T) {
	c, a, b := threeWordScenario()
	g := NewBuilder(c, 1).Build(SizedRoot(a, 24))

	nodeB := g.Node(b)
	if nodeB == nil {
		t.Fatal("depth-exhausted child must still be discovered")
	}
	if nodeB.Scanned {
		t.Error("depth-exhausted child must not be scanned")
	}
	if len(nodeB.Children) != 0 {
		t.Errorf("leaf has %d edges, want 0", len(nodeB.Children))
	}
}

func TestCanonicalization(t *testing.T) {
	const (
		root = process.Address(0x1000)
		leaf = process.Address(0x2000)
	)

	// two words, both pointing at the same leaf
	rootData := make([]byte, 16)
	process.EncodePointer(rootData[0:], leaf)
	process.EncodePointer(rootData[8:], leaf)
	leafData := make([]byte, 16)

	blob := memblob.New(
		memblob.Segment{Base: root, Data: rootData},
		memblob.Segment{Base: leaf, Data: leafData},
	)
	c := &region.Classifier{Mem: blob, Heap: fakeHeap{leaf: 16}}
	g := NewBuilder(c, 10).Build(SizedRoot(root, 16))

	if g.Len() != 2 {
		t.Fatalf("nodes = %d, want 2", g.Len())
	}
	n := g.Node(root)
	if len(n.Children) != 2 {
		t.Fatalf("edges = %d, want 2", len(n.Children))
	}
	if n.Children[0].To != n.Children[1].To {
		t.Error("both edges must reference the identical node object")
	}
}

func TestCycleSafety(t *testing.T) {
	const addr = process.Address(0x1000)
	data := make([]byte, 8)
	process.EncodePointer(data, addr)

	blob := memblob.New(memblob.Segment{Base: addr, Data: data})
	c := &region.Classifier{Mem: blob}
	g := NewBuilder(c, 10).Build(SizedRoot(addr, 8))

	if g.Len() != 1 {
		t.Fatalf("nodes = %d, want exactly 1", g.Len())
	}
	n := g.Node(addr)
	if len(n.Children) != 1 || n.Children[0].To != n || n.Children[0].Offset != 0 {
		t.Errorf("want a single self-loop edge at offset 0")
	}
}

func TestReadFailureIsolation(t *testing.T) {
	const (
		root = process.Address(0x1000)
		leaf = process.Address(0x2000)
	)

	// word 0 is garbage, word 1 is valid: the bad sibling must not abort
	// discovery of the good one
	rootData := make([]byte, 16)
	process.EncodePointer(rootData[0:], 0xbbbbbbbb)
	process.EncodePointer(rootData[8:], leaf)

	blob := memblob.New(
		memblob.Segment{Base: root, Data: rootData},
		memblob.Segment{Base: leaf, Data: make([]byte, 16)},
	)
	c := &region.Classifier{Mem: blob, Heap: fakeHeap{leaf: 16}}
	g := NewBuilder(c, 10).Build(SizedRoot(root, 16))

	n := g.Node(root)
	if len(n.Children) != 1 {
		t.Fatalf("edges = %d, want 1", len(n.Children))
	}
	if n.Children[0].Offset != 8 || n.Children[0].To != g.Node(leaf) {
		t.Errorf("surviving edge = +%d", n.Children[0].Offset)
	}
}

func TestDepthMinimality(t *testing.T) {
	const (
		a = process.Address(0x1000)
		b = process.Address(0x2000)
		c = process.Address(0x3000)
	)

	// A -> B (word 0), A -> C (word 1), B -> C: C is reachable in one hop
	// and in two; its final depth must be the shorter path.
	aData := make([]byte, 16)
	process.EncodePointer(aData[0:], b)
	process.EncodePointer(aData[8:], c)
	bData := make([]byte, 8)
	process.EncodePointer(bData, c)

	blob := memblob.New(
		memblob.Segment{Base: a, Data: aData},
		memblob.Segment{Base: b, Data: bData},
		memblob.Segment{Base: c, Data: make([]byte, 16)},
	)
	cl := &region.Classifier{Mem: blob, Heap: fakeHeap{b: 8, c: 16}}
	g := NewBuilder(cl, 10).Build(SizedRoot(a, 16))

	if got := g.Node(c).Depth; got != 2 {
		t.Errorf("depth(C) = %d, want 2", got)
	}
	if got := g.Node(b).Depth; got != 2 {
		t.Errorf("depth(B) = %d, want 2", got)
	}
	if got := g.Node(a).Depth; got != 1 {
		t.Errorf("depth(A) = %d, want 1", got)
	}
}

func TestFailedRootContributesNothing(t *testing.T) {
	blob := memblob.New()
	c := &region.Classifier{Mem: blob}
	g := NewBuilder(c, 5).Build(Root{Addr: 0x4000})

	if g.Len() != 0 {
		t.Errorf("nodes = %d, want empty graph from a dangling root", g.Len())
	}
}

func TestMultipleRootsShareNodes(t *testing.T) {
	const (
		r1   = process.Address(0x1000)
		r2   = process.Address(0x2000)
		leaf = process.Address(0x3000)
	)
	d1 := make([]byte, 8)
	process.EncodePointer(d1, leaf)
	d2 := make([]byte, 8)
	process.EncodePointer(d2, leaf)

	blob := memblob.New(
		memblob.Segment{Base: r1, Data: d1},
		memblob.Segment{Base: r2, Data: d2},
		memblob.Segment{Base: leaf, Data: make([]byte, 16)},
	)
	c := &region.Classifier{Mem: blob, Heap: fakeHeap{leaf: 16}}
	g := NewBuilder(c, 10).Build(SizedRoot(r1, 8), SizedRoot(r2, 8))

	if g.Len() != 3 {
		t.Fatalf("nodes = %d, want 3", g.Len())
	}
	if g.Node(r1).Children[0].To != g.Node(r2).Children[0].To {
		t.Error("leaf reached from two roots must be one node")
	}
}
