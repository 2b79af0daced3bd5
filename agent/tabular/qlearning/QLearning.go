// Package qlearning implements the tabular Q-Learning algorithm with
// an ε-greedy behaviour policy.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	"github.com/samuelfneumann/taxilearn/agent/tabular/policy"
	"github.com/samuelfneumann/taxilearn/environment"
	"golang.org/x/exp/rand"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	agent.Learner
	*policy.EGreedy

	schedule policy.Schedule
}

// New creates a new QLearning struct. The agent's ValueTable is
// zero-initialized with one row per environment state and one column
// per environment action.
func New(env environment.Environment, c Config,
	source rand.Source) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	states, err := env.ObservationSpec().Size()
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	actions, err := env.ActionSpec().Size()
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	table := tabular.NewValueTable(states, actions)
	return NewWithTable(table, c, source), nil
}

// NewWithTable creates a new QLearning struct which learns the argument
// ValueTable in place. The Config is assumed to be valid.
func NewWithTable(table *tabular.ValueTable, c Config,
	source rand.Source) *QLearning {
	behaviour := policy.NewEGreedy(c.Epsilon.At(0), table, source)
	learner := NewQLearner(table, c.LearningRate, c.DiscountRate)

	return &QLearning{
		Learner:  learner,
		EGreedy:  behaviour,
		schedule: c.Epsilon,
	}
}

// BeginEpisode sets the exploration rate of the behaviour policy for
// the argument episode
func (q *QLearning) BeginEpisode(episode int) {
	q.SetEpsilon(q.schedule.At(episode))
}
