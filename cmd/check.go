package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orel33/tsp/distmat"
	"github.com/orel33/tsp/solver"
)

func newCheckCommand(ctx context.Context) *cobra.Command {
	var first cityFlag

	cmd := &cobra.Command{
		Use:   "check <matrix-file> <mindist>",
		Short: "Solve an instance and verify the optimum against an expected value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mindist, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("mindist %q is not an integer", args[1])
			}

			m, err := distmat.Load(args[0])
			if err != nil {
				return err
			}

			p, err := solver.NewProblem(m, int(first), solver.Options{Optimize: true})
			if err != nil {
				return err
			}

			if m.Size() <= maxCitySize {
				fmt.Print(m)
			}
			res, err := solver.SolveContext(ctx, p)
			if err != nil {
				return err
			}
			fmt.Println(res.Tour)
			fmt.Printf("tsp dist: %d (expected: %d)\n", res.Tour.Dist(), mindist)

			if res.Tour.Dist() != mindist {
				return fmt.Errorf("optimum %d differs from expected %d", res.Tour.Dist(), mindist)
			}

			return nil
		},
	}
	cmd.Flags().VarP(&first, "first", "f", "first city (index or letter)")

	return cmd
}
