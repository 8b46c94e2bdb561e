package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromata/coloring"
)

// Flag validation errors.
var (
	ErrBadStartBase = errors.New("cli: --start-base must be at least 1")
	ErrBadCount     = errors.New("cli: --count must not be negative")
)

type enumerateOpts struct {
	src          sourceFlags
	count        int
	startBase    int
	limit        uint64
	format       outputFormat
	skipValidate bool
}

func (c *CLI) enumerateCommand() *cobra.Command {
	opts := enumerateOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Print proper colorings of a graph in enumeration order",
		Long: `Enumerate tries every color assignment over the current number of colors,
then adds a color and starts over. Every coloring printed uses at most the
current number of colors; with the default --start-base of 2 the first one
uses the fewest colors possible for the graph.

Use --count 0 together with --limit to stream colorings until the candidate
budget runs out.`,
		Example: `  chromata enumerate --family cycle --n 5
  chromata enumerate --graph6 Bw --count 3 --format json
  chromata enumerate -f graph.yaml --limit 100000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runEnumerate(cmd, opts)
		},
	}

	fs := cmd.Flags()
	opts.src.register(fs)
	fs.IntVarP(&opts.count, "count", "k", 1, "number of colorings to print (0 = unbounded)")
	fs.IntVar(&opts.startBase, "start-base", coloring.DefaultStartBase, "number of colors to start from")
	fs.Uint64Var(&opts.limit, "limit", 0, "stop after testing this many candidates (0 = no limit)")
	fs.Var(&opts.format, "format", "output format: text or json")
	fs.BoolVar(&opts.skipValidate, "skip-validate", false, "do not reject self-loops before enumerating")

	return cmd
}

func (c *CLI) runEnumerate(cmd *cobra.Command, opts enumerateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.startBase < 1 {
		return fmt.Errorf("%w: got %d", ErrBadStartBase, opts.startBase)
	}
	if opts.count < 0 {
		return fmt.Errorf("%w: got %d", ErrBadCount, opts.count)
	}

	lg, err := opts.src.load()
	if err != nil {
		return err
	}
	if !opts.skipValidate {
		if err := coloring.Validate(lg.graph); err != nil {
			return err
		}
	}

	n := lg.graph.VertexCount()
	order := make([]string, n)
	for i := range order {
		order[i] = lg.label(i)
	}
	logger.Debug("graph loaded", "source", lg.desc, "vertices", n)

	lastBase := 0
	e := coloring.Exhaustive(lg.graph,
		coloring.WithContext(ctx),
		coloring.WithStartBase(opts.startBase),
		coloring.WithCandidateLimit(opts.limit),
		coloring.WithOnCandidate(func(_ []int, base int) {
			if base != lastBase {
				logger.Debug("trying colors", "base", base)
				lastBase = base
			}
		}),
	)

	prog := newProgress(logger)
	found := 0
	for col := range e.All() {
		found++
		r := record{
			Index:      found,
			Base:       e.Base(),
			Candidates: e.Candidates(),
			Colors:     make(map[string]int, n),
		}
		for i, v := range col {
			r.Colors[order[i]] = v
		}
		if err := writeRecord(cmd.OutOrStdout(), opts.format, r, order); err != nil {
			return err
		}
		if found == opts.count {
			break
		}
	}
	prog.done("enumeration finished", "colorings", found, "candidates", e.Candidates(), "base", e.Base())

	if err := e.Err(); err != nil {
		return fmt.Errorf("stopped after %d colorings: %w", found, err)
	}

	return nil
}
