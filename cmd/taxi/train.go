package main

import (
	"fmt"
	"log"
	"os"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/taxilearn/environment/gym"
	"github.com/samuelfneumann/taxilearn/environment/taxi"
	"github.com/samuelfneumann/taxilearn/experiment"
	"github.com/samuelfneumann/taxilearn/experiment/checkpointer"
	"github.com/samuelfneumann/taxilearn/experiment/trackers"
	"github.com/samuelfneumann/taxilearn/utils/progressbar"
	"github.com/spf13/cobra"
)

type trainFlags struct {
	config          string
	save            string
	saveConfig      string
	checkpointEvery int
	checkpointName  string
	returns         string
	lengths         string
	progress        bool

	episodes     int
	maxSteps     int
	logInterval  int
	counterReset string
	learningRate float64
	discount     float64
	epsilonMax   float64
	epsilonMin   float64
	decayRate    float64
}

// buildConfig returns the run configuration, starting from the JSON file
// if one was given and overriding it with any flags that were set
func (f *trainFlags) buildConfig(cmd *cobra.Command) (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if f.config != "" {
		var err error
		if c, err = experiment.LoadConfig(f.config); err != nil {
			return c, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("episodes") {
		c.TotalEpisodes = f.episodes
	}
	if flags.Changed("max-steps") {
		c.MaxSteps = f.maxSteps
	}
	if flags.Changed("log-interval") {
		c.LogInterval = f.logInterval
	}
	if flags.Changed("counter-reset") {
		c.CounterReset = experiment.CounterReset(f.counterReset)
	}

	q, ok := c.Agent.Config.(qlearning.Config)
	if !ok {
		return c, nil
	}
	if flags.Changed("learning-rate") {
		q.LearningRate = f.learningRate
	}
	if flags.Changed("discount") {
		q.DiscountRate = f.discount
	}
	if flags.Changed("epsilon-max") {
		q.Epsilon.Max = f.epsilonMax
	}
	if flags.Changed("epsilon-min") {
		q.Epsilon.Min = f.epsilonMin
	}
	if flags.Changed("decay-rate") {
		q.Epsilon.DecayRate = f.decayRate
	}
	c.Agent = agent.NewTypedConfig(q)

	return c, nil
}

func train(cmd *cobra.Command, f *trainFlags) error {
	c, err := f.buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if f.saveConfig != "" {
		if err := c.Save(f.saveConfig); err != nil {
			return err
		}
	}

	var discount float64
	if q, ok := c.Agent.Config.(qlearning.Config); ok {
		discount = q.DiscountRate
	}

	env, err := gym.New(envID, discount, seed)
	if err != nil {
		return err
	}
	defer gym.Shutdown()
	defer env.Close()

	logger := log.New(os.Stdout, "", log.LstdFlags)
	shaper := taxi.NewShaper()
	logger.Printf("training on %v: discount %v, shaped rewards in [%v, %v]",
		envID, env.Discount(), shaper.Min(), shaper.Max())

	opts := []experiment.Option{
		experiment.WithTask(shaper),
		experiment.WithLogger(logger),
		experiment.WithColor(color),
	}
	if f.returns != "" {
		opts = append(opts, experiment.WithTracker(trackers.NewReturn(f.returns)))
	}
	if f.lengths != "" {
		opts = append(opts,
			experiment.WithTracker(trackers.NewEpisodeLength(f.lengths)))
	}

	var bar *progressbar.ManualProgressBar
	if f.progress && c.TotalEpisodes > 0 {
		bar = progressbar.NewManualProgressBar(os.Stderr, 50, c.TotalEpisodes)
		opts = append(opts, experiment.WithProgress(func(int) {
			bar.Increment()
			bar.Display()
		}))
	}

	trainer, err := experiment.NewTrainer(env, c, seed, opts...)
	if err != nil {
		return err
	}
	if f.checkpointEvery > 0 {
		trainer.RegisterCheckpointer(checkpointer.NewNStep(f.checkpointEvery,
			trainer.Table(),
			checkpointer.FilenameEnumerator(0, f.checkpointName, ".bin")))
	}

	if err := trainer.Run(); err != nil {
		return err
	}
	if bar != nil {
		bar.Finish()
	}

	if f.save != "" {
		if err := trainer.Table().Save(f.save); err != nil {
			return err
		}
		fmt.Printf("saved value table to %v\n", f.save)
	}
	return nil
}

// TrainCommand returns the command which trains an agent
func TrainCommand() *cobra.Command {
	f := &trainFlags{}
	defaults := experiment.DefaultConfig()
	q := qlearning.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-learning agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return train(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.config, "config", "", "JSON run configuration file")
	flags.StringVar(&f.save, "save", "table.bin", "File to save the learned value table to")
	flags.StringVar(&f.saveConfig, "save-config", "", "File to save the run configuration to")
	flags.IntVar(&f.checkpointEvery, "checkpoint-every", 0,
		"Save the value table every N episodes (0 disables)")
	flags.StringVar(&f.checkpointName, "checkpoint-name", "checkpoint",
		"Filename prefix of value table checkpoints")
	flags.StringVar(&f.returns, "returns", "", "File to save episodic returns to")
	flags.StringVar(&f.lengths, "lengths", "", "File to save episode lengths to")
	flags.BoolVar(&f.progress, "progress", false, "Display a progress bar")

	flags.IntVar(&f.episodes, "episodes", defaults.TotalEpisodes, "Number of training episodes")
	flags.IntVar(&f.maxSteps, "max-steps", defaults.MaxSteps, "Maximum steps per episode")
	flags.IntVar(&f.logInterval, "log-interval", defaults.LogInterval, "Episodes between log records")
	flags.StringVar(&f.counterReset, "counter-reset", string(defaults.CounterReset),
		"When explore/exploit counts reset: never or interval")
	flags.Float64Var(&f.learningRate, "learning-rate", q.LearningRate, "Learning rate")
	flags.Float64Var(&f.discount, "discount", q.DiscountRate, "Discount rate")
	flags.Float64Var(&f.epsilonMax, "epsilon-max", q.Epsilon.Max, "Initial exploration rate")
	flags.Float64Var(&f.epsilonMin, "epsilon-min", q.Epsilon.Min, "Final exploration rate")
	flags.Float64Var(&f.decayRate, "decay-rate", q.Epsilon.DecayRate, "Exploration decay rate")

	return cmd
}
