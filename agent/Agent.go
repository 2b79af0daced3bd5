// Package agent defines the agent interfaces shared by tabular agents
package agent

import (
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	ts "github.com/samuelfneumann/taxilearn/timestep"
)

// Selection records how a Policy selected an action
type Selection int

const (
	// Exploit indicates the action was the greedy action
	Exploit Selection = iota

	// Explore indicates the action was sampled at random
	Explore
)

func (s Selection) String() string {
	if s == Explore {
		return "explore"
	}
	return "exploit"
}

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// values the Policy acts on.
type Agent interface {
	Learner
	Policy

	// Table returns the ValueTable shared by the Learner and Policy
	Table() *tabular.ValueTable
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// ObserveFirst records the first timestep in an episode
	ObserveFirst(ts.TimeStep)

	// Observe records that an action lead to some timestep, where the
	// timestep's reward is the reward to learn from
	Observe(action int, nextStep ts.TimeStep)

	// Step performs a single update to the learner using the most
	// recently observed transition
	Step()

	// TdError returns the TD error of the most recently observed
	// transition
	TdError() float64
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should share the same ValueTable so that any
// changes the learner makes are reflected in the actions the Policy
// chooses
type Policy interface {
	SelectAction(t ts.TimeStep) (int, Selection)
}

// EGreedyPolicy is a Policy whose exploration rate can be set and
// retrieved
type EGreedyPolicy interface {
	Policy
	SetEpsilon(float64)
	Epsilon() float64
}

// Scheduler is an Agent whose hyperparameters change between episodes,
// such as an agent with a decaying exploration rate
type Scheduler interface {
	Agent

	// BeginEpisode adjusts the agent's hyperparameters for the argument
	// episode index
	BeginEpisode(episode int)
}
