package agent

import (
	"errors"

	"github.com/samuelfneumann/taxilearn/environment"
	"golang.org/x/exp/rand"
)

// ErrInvalidConfig is returned when a Config holds invalid
// hyperparameters
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes. All
	// randomness the agent uses is drawn from source.
	CreateAgent(env environment.Environment, source rand.Source) (Agent,
		error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not. Returned errors wrap
	// ErrInvalidConfig.
	Validate() error

	// Type returns the type of agent the Config creates
	Type() Type
}
