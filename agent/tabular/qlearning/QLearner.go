package qlearning

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/taxilearn/agent/tabular"
	ts "github.com/samuelfneumann/taxilearn/timestep"
)

// QLearner implements the update functionality for the tabular
// Q-learning algorithm. Given a transition (s, a, r, s'), the value of
// (s, a) is corrected in place by
//
//	Q(s, a) += α * (r + γ * max_a' Q(s', a') - Q(s, a))
//
// The bootstrap target is read from the table before it is written,
// and the correction is added to the current estimate rather than
// interpolated toward the target.
type QLearner struct {
	table        *tabular.ValueTable
	step         ts.TimeStep
	action       int
	nextStep     ts.TimeStep
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// table is the ValueTable of the policy to learn
func NewQLearner(table *tabular.ValueTable, learningRate,
	discount float64) *QLearner {
	return &QLearner{
		table:        table,
		learningRate: learningRate,
		discount:     discount,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t ts.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}
	q.step = ts.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action int, nextStep ts.TimeStep) {
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
}

// Step updates the action value of the most recently observed
// state-action pair
func (q *QLearner) Step() {
	q.table.Add(q.step.Observation, q.action, q.TdError()*q.learningRate)
}

// TdError returns the TD error of the most recently observed
// transition
func (q *QLearner) TdError() float64 {
	target := q.nextStep.Reward + q.discount*q.table.Max(q.nextStep.Observation)
	return target - q.table.At(q.step.Observation, q.action)
}
