// Package dot serializes a region graph to the Graphviz DOT format and,
// through go-graphviz, to rendered images.
package dot

import (
	"fmt"
	"io"
	"strings"

	"memgraph/graph"
	"memgraph/hexdump"
	"memgraph/region"
)

// Options bounds the per-node label content.
type Options struct {
	// LabelBytes is the maximum number of snapshot bytes hex-dumped into a
	// node label.
	LabelBytes int

	// BytesPerLine is the hex dump line width inside labels.
	BytesPerLine int
}

// DefaultOptions returns the label bounds used by the CLI.
func DefaultOptions() Options {
	return Options{LabelBytes: 64, BytesPerLine: 16}
}

// Write emits the graph as a DOT digraph: one node statement per region, one
// edge statement per recorded pointer edge labeled with its byte offset.
func Write(w io.Writer, g *graph.Graph, opts Options) error {
	if opts.LabelBytes <= 0 {
		opts.LabelBytes = 64
	}
	if opts.BytesPerLine <= 0 {
		opts.BytesPerLine = 16
	}

	if _, err := fmt.Fprintln(w, "digraph memory {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  node [shape=box, fontname=\"Courier\"];")

	nodes := g.Nodes()
	for _, n := range nodes {
		fmt.Fprintf(w, "  %s [label=\"%s\"];\n", nodeID(n), nodeLabel(n.Region, opts))
	}
	for _, n := range nodes {
		for _, e := range n.Children {
			fmt.Fprintf(w, "  %s -> %s [label=\"+%d\"];\n", nodeID(n), nodeID(e.To), uint64(e.Offset))
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// Marshal returns the DOT text for a graph.
func Marshal(g *graph.Graph, opts Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, g, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func nodeID(n *graph.Node) string {
	return fmt.Sprintf("n%x", uint64(n.Region.Addr))
}

// nodeLabel builds the quoted label body: classification, address and length,
// a bounded hex prefix, then any decoded strings. Each line is escaped
// individually; lines are joined with \l so the rendered box left-justifies.
func nodeLabel(r *region.Region, opts Options) string {
	lines := []string{
		r.Class.String(),
		fmt.Sprintf("%s, %d bytes", r.Addr.Hex(), len(r.Bytes)),
	}

	dump := r.Bytes
	if len(dump) > opts.LabelBytes {
		dump = dump[:opts.LabelBytes]
	}
	lines = append(lines, hexdump.Plain(dump, opts.BytesPerLine, 0)...)
	if len(r.Bytes) > opts.LabelBytes {
		lines = append(lines, fmt.Sprintf("... %d more bytes", len(r.Bytes)-opts.LabelBytes))
	}

	for _, s := range r.PrintableStrings() {
		lines = append(lines, fmt.Sprintf("%q", s))
	}

	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = escape(line)
	}
	return strings.Join(escaped, `\l`) + `\l`
}

// escape protects backslashes and quotes for embedding in a quoted DOT label.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
