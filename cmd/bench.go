package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlast/parser"
	"github.com/heathj/htmlast/parser/ast"
)

func (a *app) newBenchCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Time repeated parses of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return errors.New("--count must be at least 1")
			}
			name := argOrStdin(args)
			b, err := a.readInput(cmd, name)
			if err != nil {
				return err
			}

			var nodes []ast.Node
			start := time.Now()
			for i := 0; i < n; i++ {
				nodes, err = parser.ParseDoc(b)
				if err != nil {
					return errors.Wrapf(err, "parsing %s", displayName(name))
				}
			}
			elapsed := time.Since(start)

			perOp := elapsed / time.Duration(n)
			mbps := float64(len(b)) * float64(n) / elapsed.Seconds() / (1 << 20)
			fmt.Fprintf(cmd.OutOrStdout(), "%d bytes, %d nodes, %d runs: %v/op, %.1f MB/s\n",
				len(b), ast.Count(nodes), n, perOp, mbps)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of parses")
	return cmd
}
