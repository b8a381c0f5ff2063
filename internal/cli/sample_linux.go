//go:build linux

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"memgraph/dot"
	"memgraph/graph"
	"memgraph/hexdump"
	"memgraph/samples"
)

func (c *CLI) sampleCommand() *cobra.Command {
	var (
		list    bool
		outDir  string
		format  string
		depth   int
		showHex bool
	)

	cmd := &cobra.Command{
		Use:   "sample [name|all]",
		Short: "Run the built-in sample dumps against this process",
		Long: `Sample builds small fixture structures in this process's own memory
(linked chains, cycles, shared leaves, typed objects) and runs the graph
engine over them. Useful for demos and for eyeballing renderer output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := samples.Fixture()

			if list {
				for _, d := range env.All() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", d.Name, d.Description)
				}
				return nil
			}

			selection := ""
			if len(args) == 1 {
				selection = args[0]
			}
			dumps, err := env.Select(selection)
			if err != nil {
				return err
			}

			t, err := openSelf()
			if err != nil {
				return err
			}
			classifier := t.newClassifier(c.Config, env.Heap, env.Types, false)

			outFormat, err := resolveFormat(format, "")
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			for _, d := range dumps {
				runDepth := d.MaxDepth
				if depth > 0 {
					runDepth = depth
				}
				g := graph.NewBuilder(classifier, runDepth).Build(d.Root())
				c.Logger.Info("sample built", "name", d.Name, "nodes", g.Len(), "edges", g.Edges())

				if showHex {
					opts := hexdump.DefaultOptions()
					opts.BytesPerLine = c.Config.BytesPerLine
					for _, n := range g.Nodes() {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\n", n.Region)
						opts.StartOffset = uint64(n.Region.Addr)
						fmt.Fprint(cmd.OutOrStdout(), hexdump.Dump(n.Region.Bytes, opts))
					}
				}

				path := filepath.Join(outDir, d.Name+"."+outFormat)
				opts := dot.Options{LabelBytes: c.Config.LabelBytes, BytesPerLine: c.Config.BytesPerLine}
				if err := c.writeGraph(cmd.Context(), g, opts, path, outFormat); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list available samples")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().IntVar(&depth, "depth", 0, "override the sample's depth bound")
	cmd.Flags().BoolVar(&showHex, "hex", false, "print a hex dump of every discovered region")

	return cmd
}
