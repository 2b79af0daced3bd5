package policy

import (
	"testing"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	ts "github.com/samuelfneumann/taxilearn/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const seed uint64 = 192382

func TestEGreedyZeroEpsilonExploits(t *testing.T) {
	table := tabular.NewValueTable(3, 6)
	table.Set(1, 4, 2)
	table.Set(2, 1, 5)
	table.Set(2, 3, 5) // tie with action 1

	p := NewEGreedy(0, table, rand.NewSource(seed))

	want := []int{0, 4, 1}
	for i := 0; i < 1000; i++ {
		state := i % len(want)
		action, selection := p.SelectAction(ts.New(ts.Mid, 0, state, i))
		if selection != agent.Exploit {
			t.Fatalf("epsilon = 0 should always exploit, explored on "+
				"sample %d", i)
		}
		if action != want[state] {
			t.Errorf("state %d: want action %d, have %d", state,
				want[state], action)
		}
	}
}

func TestEGreedyOneEpsilonExploresUniformly(t *testing.T) {
	const actions = 6
	const samples = 60_000

	table := tabular.NewValueTable(1, actions)
	table.Set(0, 2, 100) // greedy action should not be favoured

	p := NewEGreedy(1, table, rand.NewSource(seed))

	observed := make([]float64, actions)
	for i := 0; i < samples; i++ {
		action, selection := p.SelectAction(ts.New(ts.Mid, 0, 0, i))
		if selection != agent.Explore {
			t.Fatalf("epsilon = 1 should always explore, exploited on "+
				"sample %d", i)
		}
		if action < 0 || action >= actions {
			t.Fatalf("action %d outside action space", action)
		}
		observed[action]++
	}

	expected := make([]float64, actions)
	for i := range expected {
		expected[i] = samples / actions
	}

	chi2 := stat.ChiSquare(observed, expected)
	pValue := distuv.ChiSquared{K: actions - 1}.Survival(chi2)
	if pValue < 0.001 {
		t.Errorf("exploratory actions not uniform: counts = %v, χ² = %v, "+
			"p = %v", observed, chi2, pValue)
	}
}

func TestEGreedyExplorationRate(t *testing.T) {
	const samples = 20_000
	const epsilon = 0.3

	table := tabular.NewValueTable(1, 6)
	p := NewEGreedy(epsilon, table, rand.NewSource(seed))

	explored := 0
	for i := 0; i < samples; i++ {
		if _, selection := p.SelectAction(ts.New(ts.Mid, 0, 0, i)); selection == agent.Explore {
			explored++
		}
	}

	rate := float64(explored) / samples
	if rate < epsilon-0.02 || rate > epsilon+0.02 {
		t.Errorf("exploration rate: want ≈ %v, have %v", epsilon, rate)
	}
}

func TestEGreedySeeded(t *testing.T) {
	table := tabular.NewValueTable(1, 6)
	p1 := NewEGreedy(0.5, table, rand.NewSource(seed))
	p2 := NewEGreedy(0.5, table, rand.NewSource(seed))

	for i := 0; i < 500; i++ {
		step := ts.New(ts.Mid, 0, 0, i)
		a1, s1 := p1.SelectAction(step)
		a2, s2 := p2.SelectAction(step)
		if a1 != a2 || s1 != s2 {
			t.Fatalf("sample %d: policies with equal seeds diverged", i)
		}
	}
}

func TestEGreedySetEpsilon(t *testing.T) {
	p := NewEGreedy(1, tabular.NewValueTable(1, 2), rand.NewSource(seed))
	p.SetEpsilon(0.25)
	if e := p.Epsilon(); e != 0.25 {
		t.Errorf("epsilon: want 0.25, have %v", e)
	}

	defer func() {
		if recover() == nil {
			t.Error("setting epsilon > 1 should panic")
		}
	}()
	p.SetEpsilon(1.5)
}

func TestGreedy(t *testing.T) {
	table := tabular.NewValueTable(2, 3)
	table.Set(1, 2, -1)
	table.Set(1, 0, -2)
	table.Set(1, 1, -2)

	g := NewGreedy(table)
	if a, _ := g.SelectAction(ts.New(ts.First, 0, 0, 0)); a != 0 {
		t.Errorf("state 0: want 0, have %d", a)
	}
	if a, s := g.SelectAction(ts.New(ts.Mid, 0, 1, 1)); a != 2 || s != agent.Exploit {
		t.Errorf("state 1: want (2, exploit), have (%d, %v)", a, s)
	}
}
