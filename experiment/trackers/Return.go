package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/taxilearn/timestep"
)

// Return tracks and saves the episodic return in an experiment. When
// the trainer produces a TimeStep, this Tracker will extract the reward
// and accumulate the return for each episode in the experiment.
//
// The trainer passes TimeSteps whose rewards are the shaped rewards
// the agent learns from, so the tracked return is the shaped episodic
// return and not the environment's native return.
//
// Note: An episode must finish for this Tracker to save its data.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	return &Return{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. When a new episode
// starts, this method will automatically detect this and start
// accumulating the rewards for this new episode separately from the
// rewards seen on previous episodes.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	if r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number))
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Returns returns the episodic returns of all finished episodes
func (r *Return) Returns() []float64 {
	out := make([]float64, len(r.episodeReturns))
	copy(out, r.episodeReturns)
	return out
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() error {
	return save(r.filename, r.episodeReturns)
}

// LoadReturns loads the episodic returns saved by a Return Tracker
func LoadReturns(filename string) ([]float64, error) {
	var returns []float64
	if err := load(filename, &returns); err != nil {
		return nil, fmt.Errorf("loadReturns: %w", err)
	}
	return returns, nil
}
