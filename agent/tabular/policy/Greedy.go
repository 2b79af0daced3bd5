package policy

import (
	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	ts "github.com/samuelfneumann/taxilearn/timestep"
)

// Greedy always selects the action of highest value, breaking ties by
// the lowest action index. Greedy uses no randomness.
type Greedy struct {
	table *tabular.ValueTable
}

// NewGreedy creates a new Greedy policy
func NewGreedy(table *tabular.ValueTable) *Greedy {
	if table == nil {
		panic("newGreedy: table cannot be nil")
	}
	return &Greedy{table}
}

// SelectAction selects the greedy action in the state observed in t
func (g *Greedy) SelectAction(t ts.TimeStep) (int, agent.Selection) {
	return g.table.Argmax(t.Observation), agent.Exploit
}
