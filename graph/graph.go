// Package graph implements the region discovery traversal: starting from one
// or more root addresses it builds a bounded, deduplicated directed graph of
// memory regions connected by offset-tagged pointer edges.
package graph

import (
	"sort"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"memgraph/process"
	"memgraph/region"
)

// Root names one traversal starting point. Size is honored only when HasSize
// is set; an explicit size of 0 is a legal, empty root.
type Root struct {
	Addr    process.Address
	Size    process.Size
	HasSize bool
}

// SizedRoot builds a root with a caller-known size.
func SizedRoot(addr process.Address, size process.Size) Root {
	return Root{Addr: addr, Size: size, HasSize: true}
}

// Edge is one outgoing pointer of a node: the byte offset of the word inside
// the source region and the target node it resolved to.
type Edge struct {
	Offset process.Size
	To     *Node
}

// Node wraps a Region with traversal state for one builder run. Nodes are
// owned by their run's node set and never shared across runs; a node may have
// any number of incoming edges.
type Node struct {
	Region   *region.Region
	Depth    int    // minimum pointer hops from any root, roots are depth 1
	Children []Edge // outgoing edges in offset order, filled by the scan pass
	Scanned  bool
}

// Graph is the result of one builder run: the canonical node set plus the
// edges attached to their source nodes.
type Graph struct {
	nodes map[process.Address]*Node
}

// Node returns the node at an exact address, or nil.
func (g *Graph) Node(addr process.Address) *Node {
	return g.nodes[addr]
}

// Len returns the number of discovered nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Edges returns the total number of recorded edges.
func (g *Graph) Edges() int {
	n := 0
	for _, node := range g.nodes {
		n += len(node.Children)
	}
	return n
}

// Nodes returns all nodes sorted by address, for deterministic output.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Region.Addr < out[j].Region.Addr
	})
	return out
}

// Builder runs depth-bounded breadth-first region discovery. A builder is
// single-threaded; one run owns its node set exclusively.
type Builder struct {
	classifier *region.Classifier
	maxDepth   int
	log        *logger.Logger
}

// NewBuilder creates a builder over the given classifier. maxDepth is the
// number of node layers expanded: nodes at depth maxDepth are discovered but
// kept as leaves.
func NewBuilder(c *region.Classifier, maxDepth int) *Builder {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &Builder{
		classifier: c,
		maxDepth:   maxDepth,
		log:        logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "graph")),
	}
}

// Build discovers the region graph reachable from the given roots. Roots that
// fail to construct contribute nothing; a run may legitimately return an
// empty graph. All memory faults degrade to missing nodes or edges, never to
// an error.
func (b *Builder) Build(roots ...Root) *Graph {
	g := &Graph{nodes: make(map[process.Address]*Node)}
	var pending []*Node

	for _, root := range roots {
		if _, ok := g.nodes[root.Addr]; ok {
			continue
		}
		var r *region.Region
		var err error
		if root.HasSize {
			r, err = region.NewSized(root.Addr, root.Size, b.classifier)
		} else {
			r, err = region.New(root.Addr, b.classifier)
		}
		if err != nil {
			b.log.Debugln("root dropped:", err)
			continue
		}
		n := &Node{Region: r, Depth: 1}
		g.nodes[root.Addr] = n
		pending = append(pending, n)
	}

	for len(pending) > 0 {
		n := pending[0]
		pending = pending[1:]

		// Depth-exhausted nodes stay in the graph as leaves.
		if n.Scanned || n.Depth > b.maxDepth {
			continue
		}

		for _, pc := range n.Region.PointerCandidates() {
			if existing, ok := g.nodes[pc.Target]; ok {
				// Canonicalization: wire to the one node per address. A
				// shallower rediscovery re-enqueues it so a previously
				// depth-exhausted subtree gets expanded; scanned nodes are
				// never re-scanned, so this only costs a queue pass.
				if n.Depth+1 < existing.Depth {
					existing.Depth = n.Depth + 1
				}
				n.Children = append(n.Children, Edge{Offset: pc.Offset, To: existing})
				pending = append(pending, existing)
				continue
			}

			child, err := region.New(pc.Target, b.classifier)
			if err != nil {
				// Expected: candidates are a superset of real pointers.
				continue
			}
			node := &Node{Region: child, Depth: n.Depth + 1}
			g.nodes[pc.Target] = node
			n.Children = append(n.Children, Edge{Offset: pc.Offset, To: node})
			pending = append(pending, node)
		}

		n.Scanned = true
	}

	b.log.Infoln("Discovered", g.Len(), "regions,", g.Edges(), "edges")
	return g
}
