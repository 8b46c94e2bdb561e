package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromata/coloring"
)

func (c *CLI) validateCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a graph can be colored",
		Long:  `Validate loads a graph and reports self-loops or dangling edges, which would make enumeration run forever or fail.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			lg, err := src.load()
			if err != nil {
				return err
			}
			if err := coloring.Validate(lg.graph); err != nil {
				logger.Error("graph rejected", "source", lg.desc, "err", err)
				return err
			}

			edges := 0
			lg.graph.EachEdge(func(_, _ int) bool {
				edges++
				return true
			})
			comps, err := lg.components()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s has %d vertices, %d edges and %d components\n",
				lg.desc, lg.graph.VertexCount(), edges, comps)

			return nil
		},
	}
	src.register(cmd.Flags())

	return cmd
}
