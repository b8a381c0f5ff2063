//go:build linux

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"memgraph/memblob"
	"memgraph/process"
)

func (c *CLI) snapshotCommand() *cobra.Command {
	var (
		pid      int
		procName string
		self     bool
		addrs    []string
		length   int64
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture memory windows from a live process for offline analysis",
		Long: `Snapshot reads a window of memory at each --addr from the target process
and saves the captured segments to a directory. Each capture is best
effort: a window that runs into unmapped memory keeps its readable
prefix. A saved snapshot can be re-analyzed later with dump --blob.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(addrs) == 0 {
				return fmt.Errorf("at least one --addr is required")
			}
			if outDir == "" {
				return fmt.Errorf("--out is required")
			}

			t, err := resolveTarget(pid, procName, self)
			if err != nil {
				return err
			}

			blob := memblob.New()
			for _, s := range addrs {
				addr, err := parseAddress(s)
				if err != nil {
					return err
				}
				if err := blob.Capture(t.reader, addr, process.Size(length)); err != nil {
					return err
				}
			}

			if err := blob.Save(outDir); err != nil {
				return err
			}
			c.Logger.Info("snapshot saved", "dir", outDir, "segments", len(blob.Segments()))
			return nil
		},
	}

	cmd.Flags().IntVar(&pid, "pid", 0, "target process id")
	cmd.Flags().StringVar(&procName, "name", "", "target process name (first match)")
	cmd.Flags().BoolVar(&self, "self", false, "inspect this process")
	cmd.Flags().StringArrayVar(&addrs, "addr", nil, "capture address (hex, repeatable)")
	cmd.Flags().Int64Var(&length, "length", 4096, "bytes to capture at each address")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "snapshot output directory")

	return cmd
}
