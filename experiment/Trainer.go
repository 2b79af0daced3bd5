package experiment

import (
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	"github.com/samuelfneumann/taxilearn/environment"
	"github.com/samuelfneumann/taxilearn/environment/taxi"
	"github.com/samuelfneumann/taxilearn/experiment/checkpointer"
	"github.com/samuelfneumann/taxilearn/experiment/trackers"
	ts "github.com/samuelfneumann/taxilearn/timestep"
	"golang.org/x/exp/rand"
)

// Option configures a Trainer
type Option func(*Trainer)

// WithTask sets the Task which computes the rewards the agent learns
// from. By default the Taxi reward shaper is used.
func WithTask(task environment.Task) Option {
	return func(t *Trainer) { t.task = task }
}

// WithLogger sets the logger that Records are written to. By default
// Records are discarded.
func WithLogger(logger *log.Logger) Option {
	return func(t *Trainer) { t.logger = logger }
}

// WithColor enables or disables colored Record labels
func WithColor(color bool) Option {
	return func(t *Trainer) { t.au = aurora.NewAurora(color) }
}

// WithTracker registers a Tracker with the Trainer
func WithTracker(tracker trackers.Tracker) Option {
	return func(t *Trainer) { t.trackers = append(t.trackers, tracker) }
}

// WithProgress sets a function called after every finished episode
func WithProgress(progress func(episode int)) Option {
	return func(t *Trainer) { t.progress = progress }
}

// Trainer trains an agent on an environment for a fixed number of
// episodes.
//
// The rewards the agent learns from are computed by the Trainer's
// Task from the state the environment transitions into; the raw
// environment reward is passed to the Task but need not be used.
type Trainer struct {
	env   environment.Environment
	agent agent.Agent
	task  environment.Task
	limit environment.Ender
	c     Config

	stats   *RunStatistics
	records []Record

	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer
	progress      func(episode int)

	logger *log.Logger
	au     aurora.Aurora
}

// NewTrainer returns a new Trainer. The agent is created from the
// Config's agent configuration, with all of its randomness drawn from
// a single source seeded by seed.
func NewTrainer(env environment.Environment, c Config, seed uint64,
	opts ...Option) (*Trainer, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newTrainer: %w", err)
	}

	a, err := c.Agent.CreateAgent(env, rand.NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("newTrainer: could not create agent: %w", err)
	}

	t := &Trainer{
		env:    env,
		agent:  a,
		task:   taxi.NewShaper(),
		limit:  environment.NewStepLimit(c.MaxSteps),
		c:      c,
		stats:  NewRunStatistics(c.CounterReset),
		logger: log.New(io.Discard, "", 0),
		au:     aurora.NewAurora(false),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// RegisterCheckpointer registers a Checkpointer, which is called after
// every finished episode
func (t *Trainer) RegisterCheckpointer(c checkpointer.Checkpointer) {
	t.checkpointers = append(t.checkpointers, c)
}

// Table returns the agent's ValueTable
func (t *Trainer) Table() *tabular.ValueTable {
	return t.agent.Table()
}

// Agent returns the agent being trained
func (t *Trainer) Agent() agent.Agent {
	return t.agent
}

// Statistics returns the statistics of the run so far
func (t *Trainer) Statistics() RunStatistics {
	return *t.stats
}

// Records returns all Records taken so far
func (t *Trainer) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// epsilon returns the current exploration rate of the agent, or 0 if
// the agent does not have one
func (t *Trainer) epsilon() float64 {
	if e, ok := t.agent.(agent.EGreedyPolicy); ok {
		return e.Epsilon()
	}
	return 0
}

// checkState returns an error if state is not a row of the value table
func (t *Trainer) checkState(state int) error {
	states, _ := t.Table().Dims()
	if state < 0 || state >= states {
		return fmt.Errorf("%w: state %d not in [0, %d)",
			environment.ErrStateOutOfRange, state, states)
	}
	return nil
}

// RunEpisode runs a single episode, updating the agent after every
// transition. The episode ends when the environment signals that it is
// done or the per-episode step limit is reached.
func (t *Trainer) RunEpisode(episode int) (EpisodeStats, error) {
	var stats EpisodeStats

	if s, ok := t.agent.(agent.Scheduler); ok {
		s.BeginEpisode(episode)
	}

	step, err := t.env.Reset()
	if err != nil {
		return stats, fmt.Errorf("runEpisode: could not reset "+
			"environment: %w", err)
	}
	step = ts.New(ts.First, 0, step.Observation, 0)
	if err := t.checkState(step.Observation); err != nil {
		return stats, fmt.Errorf("runEpisode: %w", err)
	}

	t.agent.ObserveFirst(step)
	t.track(step)

	for !step.Last() {
		action, selection := t.agent.SelectAction(step)

		next, done, err := t.env.Step(action)
		if err != nil {
			return stats, fmt.Errorf("runEpisode: could not step "+
				"environment: %w", err)
		}
		if err := t.checkState(next.Observation); err != nil {
			return stats, fmt.Errorf("runEpisode: %w", err)
		}

		reward, err := t.task.GetReward(next.Reward, next.Observation,
			done, action)
		if err != nil {
			return stats, fmt.Errorf("runEpisode: could not compute "+
				"reward: %w", err)
		}

		next.Reward = reward
		next.Number = step.Number + 1
		if done {
			next.StepType = ts.Last
		} else {
			next.StepType = ts.Mid
			t.limit.End(&next)
		}

		stats.add(reward, selection, done)

		t.agent.Observe(action, next)
		t.agent.Step()
		t.track(next)

		step = next
	}

	return stats, nil
}

func (t *Trainer) track(step ts.TimeStep) {
	for _, tracker := range t.trackers {
		tracker.Track(step)
	}
}

// Run runs all episodes of the run. A Record is logged every
// LogInterval episodes and once more, stamped with the index of the
// last episode, when the run ends. Trackers are
// saved when the run ends.
func (t *Trainer) Run() error {
	var last EpisodeStats
	for episode := 0; episode < t.c.TotalEpisodes; episode++ {
		stats, err := t.RunEpisode(episode)
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", episode, err)
		}
		t.stats.AddEpisode(stats)
		last = stats

		for _, c := range t.checkpointers {
			if err := c.Checkpoint(episode); err != nil {
				return fmt.Errorf("run: %w", err)
			}
		}

		if t.progress != nil {
			t.progress(episode)
		}

		if episode%t.c.LogInterval == 0 {
			t.record(episode, last)
		}
	}

	final := t.c.TotalEpisodes - 1
	if final < 0 {
		final = 0
	}
	t.record(final, last)

	for _, tracker := range t.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("run: could not save tracker: %w", err)
		}
	}
	return nil
}

func (t *Trainer) record(episode int, last EpisodeStats) {
	r := t.stats.Record(episode, t.epsilon(), last)
	t.records = append(t.records, r)
	t.logger.Println(r.Format(t.au))
}

// Train trains a new agent on env for the episodes given by c and
// returns the learned ValueTable
func Train(env environment.Environment, c Config, seed uint64,
	opts ...Option) (*tabular.ValueTable, error) {
	t, err := NewTrainer(env, c, seed, opts...)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	if err := t.Run(); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	return t.Table(), nil
}
