// Command taxi trains and evaluates tabular Q-learning agents on the
// OpenAI Gym Taxi environment
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seed  uint64
	color bool
	envID string
)

func main() {
	root := &cobra.Command{
		Use:   "taxi",
		Short: "Tabular Q-learning with reward shaping on Taxi",
	}
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for all randomness")
	root.PersistentFlags().BoolVar(&color, "color", false, "Color log output")
	root.PersistentFlags().StringVar(&envID, "env", "Taxi-v3",
		"OpenAI Gym environment name")

	root.AddCommand(TrainCommand())
	root.AddCommand(PlayCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
