package qlearning

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular/policy"
	"github.com/samuelfneumann/taxilearn/environment"
	"golang.org/x/exp/rand"
)

func init() {
	// Register Config type with its defaults so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EGreedyQLearningTabular, DefaultConfig())
}

// Config represents a configuration for the QLearning agent
type Config struct {
	LearningRate float64         // α, in (0, 1]
	DiscountRate float64         // γ, in [0, 1]
	Epsilon      policy.Schedule // Behaviour policy exploration rate
}

// DefaultConfig returns the hyperparameters used for the Taxi
// environment
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.8,
		DiscountRate: 0.95,
		Epsilon: policy.Schedule{
			Max:       1.0,
			Min:       0.01,
			DecayRate: 0.0005,
		},
	}
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	source rand.Source) (agent.Agent, error) {
	return New(env, c, source)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if math.IsNaN(c.LearningRate) || c.LearningRate <= 0 ||
		c.LearningRate > 1 {
		return fmt.Errorf("validate: %w: learning rate must be in (0, 1], "+
			"have %v", agent.ErrInvalidConfig, c.LearningRate)
	}
	if math.IsNaN(c.DiscountRate) || c.DiscountRate < 0 ||
		c.DiscountRate > 1 {
		return fmt.Errorf("validate: %w: discount rate must be in [0, 1], "+
			"have %v", agent.ErrInvalidConfig, c.DiscountRate)
	}
	if err := c.Epsilon.Validate(); err != nil {
		return fmt.Errorf("validate: %w: %v", agent.ErrInvalidConfig, err)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyQLearningTabular
}
