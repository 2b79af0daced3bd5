package experiment

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/utils/floatutils"
)

// EpisodeStats accumulates statistics over a single episode
type EpisodeStats struct {
	Reward  float64 // Sum of shaped rewards
	Explore int     // Non-terminal actions sampled at random
	Exploit int     // Non-terminal greedy actions
	Steps   int
	Done    bool // Whether the environment reached a terminal state
}

// add records a single step. The selection of the action that ends
// the episode is not counted.
func (e *EpisodeStats) add(reward float64, selection agent.Selection,
	done bool) {
	e.Reward += reward
	e.Steps++
	e.Done = done
	if done {
		return
	}
	if selection == agent.Explore {
		e.Explore++
	} else {
		e.Exploit++
	}
}

// RunStatistics accumulates statistics over a training run.
//
// Rewards are accumulated both over the whole run and over the current
// logging interval; the interval accumulators are cleared each time a
// Record is taken. Whether the explore and exploit counts are also
// cleared is determined by the CounterReset policy.
type RunStatistics struct {
	reset CounterReset

	Episodes    int
	TotalReward float64

	IntervalReward   float64
	IntervalEpisodes int

	Explore int
	Exploit int
}

// NewRunStatistics returns a new RunStatistics with the argument
// CounterReset policy
func NewRunStatistics(reset CounterReset) *RunStatistics {
	return &RunStatistics{reset: reset}
}

// AddEpisode adds the statistics of a finished episode
func (r *RunStatistics) AddEpisode(e EpisodeStats) {
	r.Episodes++
	r.TotalReward += e.Reward
	r.IntervalReward += e.Reward
	r.IntervalEpisodes++
	r.Explore += e.Explore
	r.Exploit += e.Exploit
}

// Record returns a Record of the current statistics and starts a new
// logging interval
func (r *RunStatistics) Record(episode int, epsilon float64,
	last EpisodeStats) Record {
	actions := r.Explore + r.Exploit

	var mean float64
	if r.IntervalEpisodes > 0 {
		mean = r.IntervalReward / float64(r.IntervalEpisodes)
	}

	record := Record{
		Episode:        episode,
		Epsilon:        epsilon,
		ExplorePercent: floatutils.Percent(r.Explore, actions),
		ExploitPercent: floatutils.Percent(r.Exploit, actions),
		Steps:          last.Steps,
		MeanReward:     mean,
		IntervalReward: r.IntervalReward,
		TotalReward:    r.TotalReward,
	}

	r.IntervalReward = 0
	r.IntervalEpisodes = 0
	if r.reset == ResetPerInterval {
		r.Explore = 0
		r.Exploit = 0
	}

	return record
}

// Record is a snapshot of training statistics, taken every logging
// interval and at the end of a run
type Record struct {
	Episode        int
	Epsilon        float64
	ExplorePercent float64
	ExploitPercent float64
	Steps          int // Steps taken in the most recent episode
	MeanReward     float64
	IntervalReward float64
	TotalReward    float64
}

func (r Record) String() string {
	return r.Format(aurora.NewAurora(false))
}

// Format formats the Record as a single line, using au to color the
// field labels
func (r Record) Format(au aurora.Aurora) string {
	label := func(s string) string {
		return au.Cyan(s).String()
	}

	return fmt.Sprintf("%v=%d %v=%.4f %v=%.2f %v=%.2f %v=%d %v=%.2f "+
		"%v=%.2f %v=%.2f",
		au.Bold(au.Green("episode")), r.Episode,
		label("epsilon"), r.Epsilon,
		label("explore"), r.ExplorePercent,
		label("exploit"), r.ExploitPercent,
		label("steps_taken"), r.Steps,
		label("mean_reward"), r.MeanReward,
		label("interval_reward"), r.IntervalReward,
		label("total_reward"), r.TotalReward,
	)
}
