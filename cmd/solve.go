package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orel33/tsp/distmat"
	"github.com/orel33/tsp/solver"
)

func newSolveCommand(ctx context.Context) *cobra.Command {
	var (
		load     string
		size     int
		seed     int64
		distmax  int
		first    cityFlag
		optimize bool
		verbose  bool
		debug    bool
		report   string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a TSP instance exactly by backtracking search",
		Long: `Solve a TSP instance exactly by exhaustive backtracking search.

The distance matrix comes either from a text file (--load) or from seeded
random generation (--size/--seed/--distmax). With --optimize the search
prunes partial paths that already match the best tour found, which changes
nothing about the optimum but skips most of the search tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			applyConfigInt(cmd, "size", &size, cfg.Size)
			applyConfigInt64(cmd, "seed", &seed, cfg.Seed)
			applyConfigInt(cmd, "distmax", &distmax, cfg.DistMax)
			if !cmd.Flags().Changed("first") && cfg.First != 0 {
				first = cityFlag(cfg.First)
			}
			if !cmd.Flags().Changed("optimize") && cfg.Optimize {
				optimize = true
			}

			var m *distmat.Matrix
			if load != "" {
				if m, err = distmat.Load(load); err != nil {
					return err
				}
			} else {
				if size < 2 {
					return fmt.Errorf("either --load or --size is required")
				}
				if m, err = distmat.Random(size, seed, distmax); err != nil {
					return err
				}
			}
			if m.Size() > maxCitySize {
				return fmt.Errorf("size %d out of range [2,%d]", m.Size(), maxCitySize)
			}

			// Debug tracing implies the per-tour verbose report.
			if debug {
				verbose = true
			}
			p, err := solver.NewProblem(m, int(first), solver.Options{
				Verbose:  verbose,
				Debug:    debug,
				Optimize: optimize,
			})
			if err != nil {
				return err
			}

			fmt.Printf("TSP problem of size %d starting from city %s (seed %d).\n",
				m.Size(), distmat.CityName(int(first)), seed)
			fmt.Print(m)
			fmt.Println("Starting path exploration...")

			begin := time.Now()
			res, err := solver.SolveContext(ctx, p)
			if err != nil {
				return err
			}
			elapsed := time.Since(begin)
			log.Debugf("search finished in %s", elapsed)

			total := solver.Factorial(m.Size() - 1)
			fmt.Printf("TSP solved after %d paths fully explored over %d.\n", res.Explored, total)
			fmt.Println(res.Tour)

			if report != "" {
				if err := writeReport(report, newSolutionReport(p, res, elapsed)); err != nil {
					return err
				}
				log.Infof("solution report written to %s", report)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&load, "load", "l", "", "load distance matrix from file")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "problem size for random generation")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed for generation")
	cmd.Flags().IntVar(&distmax, "distmax", 10, "maximum distance between cities")
	cmd.Flags().VarP(&first, "first", "f", "first city (index or letter)")
	cmd.Flags().BoolVarP(&optimize, "optimize", "o", false, "enable branch-and-bound pruning")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every complete tour found")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "print every partial path visited (implies --verbose)")
	cmd.Flags().StringVar(&report, "report", "", "write a JSON solution report to file")

	return cmd
}
