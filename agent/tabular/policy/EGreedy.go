// Package policy implements tabular policies over a ValueTable
package policy

import (
	"fmt"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	ts "github.com/samuelfneumann/taxilearn/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a ValueTable. With
// probability 1-ε the action with the highest value is selected, ties
// broken by the lowest action index. Otherwise an action is sampled
// uniformly from the full action space.
//
// The EGreedy policy does not own the table it reads from. A learner
// holding the same *tabular.ValueTable changes the actions the policy
// selects.
type EGreedy struct {
	table   *tabular.ValueTable
	epsilon float64

	uniform distuv.Uniform     // Decides between exploring and exploiting
	random  distuv.Categorical // Samples exploratory actions
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. All randomness
// is drawn from source.
func NewEGreedy(e float64, table *tabular.ValueTable,
	source rand.Source) *EGreedy {
	if table == nil {
		panic("newEGreedy: table cannot be nil")
	}
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("newEGreedy: epsilon must be in [0, 1], have %v",
			e))
	}

	_, actions := table.Dims()
	weights := make([]float64, actions)
	for i := range weights {
		weights[i] = 1.0 / float64(actions)
	}

	return &EGreedy{
		table:   table,
		epsilon: e,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: source},
		random:  distuv.NewCategorical(weights, source),
	}
}

// SelectAction selects an action in the state observed in t, and
// returns whether the action was chosen greedily or at random
func (p *EGreedy) SelectAction(t ts.TimeStep) (int, agent.Selection) {
	if p.uniform.Rand() > p.epsilon {
		return p.table.Argmax(t.Observation), agent.Exploit
	}
	return int(p.random.Rand()), agent.Explore
}

// SetEpsilon sets the probability of selecting a random action
func (p *EGreedy) SetEpsilon(e float64) {
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("setEpsilon: epsilon must be in [0, 1], have %v",
			e))
	}
	p.epsilon = e
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Table returns the ValueTable the policy acts on
func (p *EGreedy) Table() *tabular.ValueTable {
	return p.table
}
