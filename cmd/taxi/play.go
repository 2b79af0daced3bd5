package main

import (
	"fmt"

	"github.com/samuelfneumann/taxilearn/agent/tabular"
	"github.com/samuelfneumann/taxilearn/environment/gym"
	"github.com/samuelfneumann/taxilearn/experiment"
	"github.com/samuelfneumann/taxilearn/utils/matutils"
	"github.com/spf13/cobra"
)

func play(table string, episodes, maxSteps int, dump bool) error {
	t, err := tabular.Load(table)
	if err != nil {
		return err
	}
	if dump {
		fmt.Println(matutils.Format(t.Matrix()))
	}

	env, err := gym.New(envID, 1.0, seed)
	if err != nil {
		return err
	}
	defer gym.Shutdown()
	defer env.Close()

	for i := 0; i < episodes; i++ {
		reward, steps, err := experiment.Play(env, t, maxSteps)
		if err != nil {
			return err
		}
		fmt.Printf("episode=%d total_reward=%.2f steps=%d\n", i, reward, steps)
	}
	return nil
}

// PlayCommand returns the command which runs greedy episodes of a
// saved value table
func PlayCommand() *cobra.Command {
	var table string
	var episodes, maxSteps int
	var dump bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run greedy episodes of a saved value table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(table, episodes, maxSteps, dump)
		},
	}
	cmd.Flags().StringVar(&table, "table", "table.bin", "Saved value table")
	cmd.Flags().IntVar(&episodes, "episodes", 1, "Number of episodes to play")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "Maximum steps per episode")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the value table")
	return cmd
}
