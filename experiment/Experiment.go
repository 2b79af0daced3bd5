// Package experiment implements functionality for training tabular
// agents on an environment and evaluating the policies they learn
package experiment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular/qlearning"
)

// CounterReset determines when the explore and exploit action counts
// of a RunStatistics are reset
type CounterReset string

const (
	// ResetNever accumulates the counts over the whole run, so that the
	// logged percentages describe all actions taken since training
	// began
	ResetNever CounterReset = "never"

	// ResetPerInterval resets the counts after each logged Record, so
	// that the logged percentages describe the most recent interval
	ResetPerInterval CounterReset = "interval"
)

// Config represents a configuration of a training run
type Config struct {
	TotalEpisodes int
	MaxSteps      int // Per-episode step cap
	LogInterval   int // Episodes between logged Records

	CounterReset
	Agent agent.TypedConfig
}

// DefaultConfig returns the configuration used to train on the Taxi
// environment
func DefaultConfig() Config {
	return Config{
		TotalEpisodes: 30_000,
		MaxSteps:      1000,
		LogInterval:   1000,
		CounterReset:  ResetNever,
		Agent:         agent.NewTypedConfig(qlearning.DefaultConfig()),
	}
}

// Validate ensures that the Config is valid. Returned errors wrap
// agent.ErrInvalidConfig.
func (c Config) Validate() error {
	if c.TotalEpisodes < 0 {
		return fmt.Errorf("validate: %w: total episodes must be "+
			"non-negative, have %d", agent.ErrInvalidConfig, c.TotalEpisodes)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("validate: %w: max steps per episode must be "+
			"positive, have %d", agent.ErrInvalidConfig, c.MaxSteps)
	}
	if c.LogInterval < 1 {
		return fmt.Errorf("validate: %w: log interval must be positive, "+
			"have %d", agent.ErrInvalidConfig, c.LogInterval)
	}

	switch c.CounterReset {
	case ResetNever, ResetPerInterval:
	default:
		return fmt.Errorf("validate: %w: no such counter reset policy %q",
			agent.ErrInvalidConfig, c.CounterReset)
	}

	if c.Agent.Config == nil {
		return fmt.Errorf("validate: %w: no agent configuration",
			agent.ErrInvalidConfig)
	}
	return c.Agent.Validate()
}

// LoadConfig loads a JSON Config from the file filename. Fields not
// present in the file keep their values in DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not read config: %w",
			err)
	}

	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode %v: %w",
			filename, err)
	}

	return c, nil
}

// Save saves the Config as JSON to the file filename
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config: %w", err)
	}
	return nil
}
