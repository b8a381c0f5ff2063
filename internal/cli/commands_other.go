//go:build !linux

package cli

import "github.com/spf13/cobra"

// Live-process inspection needs process_vm_readv; on other platforms the
// root command exists but carries no subcommands.
func (c *CLI) commands() []*cobra.Command {
	return nil
}
