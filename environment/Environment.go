// Package environment outlines the interfaces and structs needed to
// adapt concrete discrete environments for use with tabular agents
package environment

import (
	"errors"

	ts "github.com/samuelfneumann/taxilearn/timestep"
)

// Environment implements a simulated environment with a finite,
// discrete state space and a finite, discrete action space. The
// physics of the environment live entirely behind this interface: an
// Environment is owned by the caller and passed explicitly to the
// code that trains or evaluates on it.
type Environment interface {
	// Reset resets the environment between episodes and returns the
	// first TimeStep of the new episode
	Reset() (ts.TimeStep, error)

	// Step takes one environmental step with the argument action and
	// returns the next TimeStep, as well as whether the environment
	// reached a terminal state
	Step(action int) (ts.TimeStep, bool, error)

	ObservationSpec() Spec
	ActionSpec() Spec
}

// Task implements a reward scheme for transitions in some
// Environment. A Task computes its reward from the raw environment
// transition, replacing the reward that the environment itself
// returns.
type Task interface {
	GetReward(raw float64, state int, done bool, action int) (float64,
		error)
}

// Ender determines when episodes should be ended
type Ender interface {
	End(*ts.TimeStep) bool
}

// Closer is an Environment which holds resources that must be released
// when the Environment is no longer needed
type Closer interface {
	Environment
	Close() error
}

// ErrStateOutOfRange is returned when an environment produces a state
// outside of its observation space, or when a state cannot be
// interpreted by a Task. It indicates a mismatch between the
// environment and the code consuming its states.
var ErrStateOutOfRange = errors.New("state out of range")
