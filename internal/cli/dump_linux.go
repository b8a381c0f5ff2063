//go:build linux

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"memgraph/dot"
	"memgraph/graph"
	"memgraph/process"
	"memgraph/region"
)

func (c *CLI) dumpCommand() *cobra.Command {
	var (
		pid      int
		procName string
		self     bool
		blobDir  string
		addrs    []string
		size     int64
		aob      string
		maxRoots int
		depth    int
		output   string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Build and render the region graph of a process or saved snapshot",
		Long: `Dump follows pointer-sized words from one or more root addresses and
writes the discovered region graph.

The source is a live process (--pid, --name or --self) or a saved
snapshot directory (--blob). Roots come from --addr (repeatable, hex) or,
for live targets, from an --aob pattern scan. A --size applies when
exactly one --addr root is given; all other region lengths are inferred
from symbols, heap metadata, or a bounded probe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(addrs) == 0 && aob == "" {
				return fmt.Errorf("at least one --addr or an --aob pattern is required")
			}
			if blobDir != "" && aob != "" {
				return fmt.Errorf("--aob scans a live process and cannot be combined with --blob")
			}

			var roots []graph.Root
			for _, s := range addrs {
				addr, err := parseAddress(s)
				if err != nil {
					return err
				}
				if size >= 0 && len(addrs) == 1 {
					roots = append(roots, graph.SizedRoot(addr, process.Size(size)))
				} else {
					roots = append(roots, graph.Root{Addr: addr})
				}
			}

			var classifier *region.Classifier
			if blobDir != "" {
				var err error
				classifier, err = blobClassifier(c.Config, blobDir)
				if err != nil {
					return err
				}
			} else {
				t, err := resolveTarget(pid, procName, self)
				if err != nil {
					return err
				}

				if aob != "" {
					pattern, err := process.ParseAOB(aob)
					if err != nil {
						return err
					}
					matches, err := t.reader.Scan(pattern)
					if err != nil {
						return err
					}
					c.Logger.Info("pattern scan", "matches", len(matches))
					if maxRoots > 0 && len(matches) > maxRoots {
						matches = matches[:maxRoots]
					}
					for _, addr := range matches {
						roots = append(roots, graph.Root{Addr: addr})
					}
				}

				classifier = t.newClassifier(c.Config, nil, nil, true)
			}

			if depth <= 0 {
				depth = c.Config.MaxDepth
			}
			outFormat, err := resolveFormat(format, output)
			if err != nil {
				return err
			}

			g := graph.NewBuilder(classifier, depth).Build(roots...)
			c.Logger.Info("traversal done", "roots", len(roots), "nodes", g.Len(), "edges", g.Edges(), "depth", depth)

			opts := dot.Options{LabelBytes: c.Config.LabelBytes, BytesPerLine: c.Config.BytesPerLine}
			return c.writeGraph(cmd.Context(), g, opts, output, outFormat)
		},
	}

	cmd.Flags().IntVar(&pid, "pid", 0, "target process id")
	cmd.Flags().StringVar(&procName, "name", "", "target process name (first match)")
	cmd.Flags().BoolVar(&self, "self", false, "inspect this process")
	cmd.Flags().StringVar(&blobDir, "blob", "", "analyze a saved snapshot directory instead of a live process")
	cmd.Flags().StringArrayVar(&addrs, "addr", nil, "root address (hex, repeatable)")
	cmd.Flags().Int64Var(&size, "size", -1, "known size of the single root region")
	cmd.Flags().StringVar(&aob, "aob", "", "pick roots by byte pattern, e.g. '48,8b,??,f0'")
	cmd.Flags().IntVar(&maxRoots, "max-roots", 16, "cap on pattern-scan roots")
	cmd.Flags().IntVar(&depth, "depth", 0, "traversal depth bound (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when omitted)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg, png")

	return cmd
}
