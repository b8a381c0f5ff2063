// Package cli implements the memgraph command-line interface: dumping region
// graphs from live processes, running the built-in sample dumps, and
// inspecting memory maps. Commands are built with cobra; progress output goes
// through charmbracelet/log.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// CLI carries the state shared by all commands: the logger and the resolved
// configuration.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// Execute runs the memgraph CLI and returns an error if any command fails.
func Execute() error {
	c := &CLI{}

	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "memgraph",
		Short:        "memgraph draws the pointer graph of a process's memory",
		Long: `memgraph inspects the memory of a running process starting from one or
more root addresses, follows pointer-sized words to build a bounded,
deduplicated graph of memory regions, and renders the result as a
Graphviz graph for inspection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			c.Logger = newLogger(os.Stderr, level)

			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Config.apply()
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.commands()...)
	return root.Execute()
}
