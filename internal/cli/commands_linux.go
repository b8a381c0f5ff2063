//go:build linux

package cli

import "github.com/spf13/cobra"

func (c *CLI) commands() []*cobra.Command {
	return []*cobra.Command{
		c.dumpCommand(),
		c.snapshotCommand(),
		c.sampleCommand(),
		c.mapsCommand(),
	}
}
