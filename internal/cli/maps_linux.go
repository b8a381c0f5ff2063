//go:build linux

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"memgraph/hexdump"
	"memgraph/process"
)

func (c *CLI) mapsCommand() *cobra.Command {
	var (
		pid      int
		procName string
		self     bool
		addr     string
		length   int64
	)

	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Show the memory map of a process, optionally with a hex dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTarget(pid, procName, self)
			if err != nil {
				return err
			}

			if addr == "" {
				for _, m := range t.reader.Mappings() {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
				return nil
			}

			start, err := parseAddress(addr)
			if err != nil {
				return err
			}
			data, err := t.reader.ReadPrefix(start, process.Size(length))
			if err != nil {
				return fmt.Errorf("read %s: %w", start.Hex(), err)
			}

			opts := hexdump.DefaultOptions()
			opts.BytesPerLine = c.Config.BytesPerLine
			opts.StartOffset = uint64(start)
			fmt.Fprint(cmd.OutOrStdout(), hexdump.Dump(data, opts))
			return nil
		},
	}

	cmd.Flags().IntVar(&pid, "pid", 0, "target process id")
	cmd.Flags().StringVar(&procName, "name", "", "target process name (first match)")
	cmd.Flags().BoolVar(&self, "self", false, "inspect this process")
	cmd.Flags().StringVar(&addr, "addr", "", "dump memory at this address instead of listing mappings")
	cmd.Flags().Int64Var(&length, "length", 256, "bytes to dump with --addr")

	return cmd
}
