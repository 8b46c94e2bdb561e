// Package cli implements the chromata command-line interface.
//
// # Commands
//
//   - enumerate: print the first proper colorings of a graph
//   - validate:  check a graph for self-loops and out-of-range endpoints
//
// # Graph sources
//
// Exactly one of:
//   - --file graph.yaml   vertices/edges document (.toml also accepted)
//   - --graph6 CODE       graph6 string (decoded with gonum)
//   - --family NAME --n N [--m M]   builder family
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in usage and version output.
const appName = "chromata"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(logw, level), out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Chromata enumerates proper vertex colorings of small graphs",
		Long:          `Chromata lazily enumerates proper vertex colorings of a graph, trying every assignment over two colors, then three, and so on. It is exhaustive by design and intended for small graphs or as a reference oracle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetOut(c.out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.validateCommand())

	return root
}
