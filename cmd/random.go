package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orel33/tsp/distmat"
)

func newRandomCommand() *cobra.Command {
	var (
		size    int
		seed    int64
		distmax int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random symmetric distance matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			applyConfigInt(cmd, "size", &size, cfg.Size)
			applyConfigInt64(cmd, "seed", &seed, cfg.Seed)
			applyConfigInt(cmd, "distmax", &distmax, cfg.DistMax)

			if size < 2 || size > maxCitySize {
				return fmt.Errorf("size %d out of range [2,%d]", size, maxCitySize)
			}
			// No explicit seed: draw one from the clock, like a fresh deal.
			if !cmd.Flags().Changed("seed") && cfg.Seed == 0 {
				seed = time.Now().Unix()
				log.Debugf("using time-based seed %d", seed)
			}

			m, err := distmat.Random(size, seed, distmax)
			if err != nil {
				return err
			}
			fmt.Print(m)

			if output != "" {
				if err := distmat.Save(output, m); err != nil {
					return err
				}
				log.Infof("matrix saved to %s", output)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 5, "problem size (number of cities)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (0: time-based)")
	cmd.Flags().IntVar(&distmax, "distmax", 10, "maximum distance between cities")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save matrix to file")

	return cmd
}

// applyConfigInt overrides *dst with the config value when the flag was not
// set explicitly and the config carries a non-zero value.
func applyConfigInt(cmd *cobra.Command, name string, dst *int, cfgVal int) {
	if !cmd.Flags().Changed(name) && cfgVal != 0 {
		*dst = cfgVal
	}
}

func applyConfigInt64(cmd *cobra.Command, name string, dst *int64, cfgVal int64) {
	if !cmd.Flags().Changed(name) && cfgVal != 0 {
		*dst = cfgVal
	}
}
