package experiment

import (
	"fmt"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	"github.com/samuelfneumann/taxilearn/agent/tabular/policy"
	"github.com/samuelfneumann/taxilearn/environment"
	"github.com/samuelfneumann/taxilearn/environment/taxi"
)

// Play runs a single greedy episode of table on env, with rewards
// computed by the Taxi reward shaper. It returns the total shaped
// reward and the number of steps taken. The table is never modified.
func Play(env environment.Environment, table *tabular.ValueTable,
	maxSteps int) (float64, int, error) {
	return PlayTask(env, taxi.NewShaper(), table, maxSteps)
}

// PlayTask is like Play but computes rewards with task
func PlayTask(env environment.Environment, task environment.Task,
	table *tabular.ValueTable, maxSteps int) (float64, int, error) {
	if maxSteps < 1 {
		return 0, 0, fmt.Errorf("play: %w: max steps must be positive, "+
			"have %d", agent.ErrInvalidConfig, maxSteps)
	}

	states, _ := table.Dims()
	checkState := func(state int) error {
		if state < 0 || state >= states {
			return fmt.Errorf("play: %w: state %d not in [0, %d)",
				environment.ErrStateOutOfRange, state, states)
		}
		return nil
	}

	greedy := policy.NewGreedy(table)

	step, err := env.Reset()
	if err != nil {
		return 0, 0, fmt.Errorf("play: could not reset environment: %w",
			err)
	}
	if err := checkState(step.Observation); err != nil {
		return 0, 0, err
	}

	var total float64
	var steps int
	for steps < maxSteps {
		action, _ := greedy.SelectAction(step)

		next, done, err := env.Step(action)
		if err != nil {
			return total, steps, fmt.Errorf("play: could not step "+
				"environment: %w", err)
		}
		if err := checkState(next.Observation); err != nil {
			return total, steps, err
		}

		reward, err := task.GetReward(next.Reward, next.Observation, done,
			action)
		if err != nil {
			return total, steps, fmt.Errorf("play: %w", err)
		}

		total += reward
		steps++
		step = next

		if done {
			break
		}
	}

	return total, steps, nil
}
