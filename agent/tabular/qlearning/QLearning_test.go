package qlearning

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/taxilearn/agent"
	"github.com/samuelfneumann/taxilearn/agent/tabular"
	"github.com/samuelfneumann/taxilearn/agent/tabular/policy"
	"github.com/samuelfneumann/taxilearn/environment"
	ts "github.com/samuelfneumann/taxilearn/timestep"
	"golang.org/x/exp/rand"
)

// chain is a minimal environment.Environment used to construct agents
type chain struct {
	states, actions int
}

func (c chain) Reset() (ts.TimeStep, error) {
	return ts.New(ts.First, 0, 0, 0), nil
}

func (c chain) Step(action int) (ts.TimeStep, bool, error) {
	return ts.New(ts.Last, 0, c.states-1, 1), true, nil
}

func (c chain) ObservationSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Observation, c.states)
}

func (c chain) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Action, c.actions)
}

func TestQLearnerUpdate(t *testing.T) {
	table := tabular.NewValueTable(3, 2)
	table.Set(0, 1, 2.0)
	table.Set(2, 0, 4.0)
	table.Set(2, 1, 10.0)

	learningRate, discount := 0.5, 0.9
	q := NewQLearner(table, learningRate, discount)

	q.ObserveFirst(ts.New(ts.First, 0, 0, 0))
	q.Observe(1, ts.New(ts.Mid, -4, 2, 1))

	// target = -4 + 0.9 * 10 = 5; error = 5 - 2 = 3
	if tdErr := q.TdError(); math.Abs(tdErr-3) > 1e-12 {
		t.Errorf("td error: want 3, have %v", tdErr)
	}

	q.Step()
	if v := table.At(0, 1); math.Abs(v-3.5) > 1e-12 {
		t.Errorf("Q(0, 1): want 3.5, have %v", v)
	}

	// No other entry changes
	if table.At(2, 1) != 10 || table.At(2, 0) != 4 || table.At(0, 0) != 0 {
		t.Errorf("update changed entries other than Q(0, 1): %v",
			table.NonZero())
	}
}

func TestQLearnerAdditiveCorrection(t *testing.T) {
	// With a self-loop, the bootstrap target is read before the write
	table := tabular.NewValueTable(1, 1)
	table.Set(0, 0, 1)

	q := NewQLearner(table, 1.0, 0.5)
	q.ObserveFirst(ts.New(ts.First, 0, 0, 0))
	q.Observe(0, ts.New(ts.Mid, 2, 0, 1))
	q.Step()

	// 1 + 1.0 * (2 + 0.5*1 - 1) = 2.5
	if v := table.At(0, 0); v != 2.5 {
		t.Errorf("want 2.5, have %v", v)
	}
}

func TestQLearnerBounded(t *testing.T) {
	const states, actions = 4, 3
	table := tabular.NewValueTable(states, actions)
	q := NewQLearner(table, 1.0, 1.0-1e-3)
	rng := rand.New(rand.NewSource(7))

	q.ObserveFirst(ts.New(ts.First, 0, 0, 0))
	for i := 1; i < 200_000; i++ {
		reward := 200*rng.Float64() - 100
		next := ts.New(ts.Mid, reward, rng.Intn(states), i)
		q.Observe(rng.Intn(actions), next)
		q.Step()
	}

	for _, e := range table.NonZero() {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			t.Fatalf("Q(%d, %d) = %v", e.State, e.Action, e.Value)
		}
	}
}

func TestNew(t *testing.T) {
	env := chain{states: 500, actions: 6}
	q, err := New(env, DefaultConfig(), rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}

	states, actions := q.Table().Dims()
	if states != 500 || actions != 6 {
		t.Errorf("table dims: want (500, 6), have (%d, %d)", states, actions)
	}
	if q.Epsilon() != 1.0 {
		t.Errorf("initial epsilon: want 1, have %v", q.Epsilon())
	}

	q.BeginEpisode(1000)
	want := DefaultConfig().Epsilon.At(1000)
	if q.Epsilon() != want {
		t.Errorf("epsilon at episode 1000: want %v, have %v", want,
			q.Epsilon())
	}

	var _ agent.Agent = q
	if !DefaultConfig().ValidAgent(q) {
		t.Error("config should accept its own agent")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	invalid := []Config{
		{LearningRate: 0, DiscountRate: 0.9,
			Epsilon: DefaultConfig().Epsilon},
		{LearningRate: 1.1, DiscountRate: 0.9,
			Epsilon: DefaultConfig().Epsilon},
		{LearningRate: 0.5, DiscountRate: -0.1,
			Epsilon: DefaultConfig().Epsilon},
		{LearningRate: 0.5, DiscountRate: 1.1,
			Epsilon: DefaultConfig().Epsilon},
		{LearningRate: math.NaN(), DiscountRate: 0.5,
			Epsilon: DefaultConfig().Epsilon},
		{LearningRate: 0.5, DiscountRate: 0.5,
			Epsilon: policy.Schedule{Max: 0.1, Min: 0.5}},
	}

	env := chain{states: 2, actions: 2}
	for _, c := range invalid {
		if err := c.Validate(); !errors.Is(err, agent.ErrInvalidConfig) {
			t.Errorf("%+v: want ErrInvalidConfig, have %v", c, err)
		}
		if _, err := c.CreateAgent(env, nil); !errors.Is(err,
			agent.ErrInvalidConfig) {
			t.Errorf("createAgent %+v: want ErrInvalidConfig, have %v", c,
				err)
		}
	}
}

func TestTypedConfigJSON(t *testing.T) {
	typed := agent.NewTypedConfig(DefaultConfig())

	data, err := json.Marshal(typed)
	if err != nil {
		t.Fatal(err)
	}

	var decoded agent.TypedConfig
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Type != agent.EGreedyQLearningTabular {
		t.Errorf("type: want %v, have %v", agent.EGreedyQLearningTabular,
			decoded.Type)
	}
	c, ok := decoded.Config.(Config)
	if !ok {
		t.Fatalf("config has type %T", decoded.Config)
	}
	if c != DefaultConfig() {
		t.Errorf("want %+v, have %+v", DefaultConfig(), c)
	}

	bad := []byte(`{"Type": "Sarsa-Tabular", "Config": {}}`)
	if err := json.Unmarshal(bad, &decoded); !errors.Is(err,
		agent.ErrInvalidConfig) {
		t.Errorf("unregistered type: want ErrInvalidConfig, have %v", err)
	}
}

func TestTypedConfigPartialJSON(t *testing.T) {
	partial := []byte(`{"Type": "EGreedyQLearning-Tabular",
		"Config": {"LearningRate": 0.5}}`)

	// Missing fields take the registered defaults
	var decoded agent.TypedConfig
	if err := json.Unmarshal(partial, &decoded); err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.LearningRate = 0.5
	if c, ok := decoded.Config.(Config); !ok || c != want {
		t.Errorf("want %+v, have %+v", want, decoded.Config)
	}

	// Missing fields keep the values of the current Config
	current := DefaultConfig()
	current.DiscountRate = 0.5
	current.Epsilon.Min = 0.1
	decoded = agent.NewTypedConfig(current)
	if err := json.Unmarshal(partial, &decoded); err != nil {
		t.Fatal(err)
	}
	want = current
	want.LearningRate = 0.5
	if c, ok := decoded.Config.(Config); !ok || c != want {
		t.Errorf("want %+v, have %+v", want, decoded.Config)
	}
	if err := decoded.Validate(); err != nil {
		t.Error(err)
	}
}

func BenchmarkQLearningStep(b *testing.B) {
	env := chain{states: 500, actions: 6}
	q, err := New(env, DefaultConfig(), rand.NewSource(1))
	if err != nil {
		b.Fatal(err)
	}

	step, _ := env.Reset()
	q.ObserveFirst(step)
	a, _ := q.SelectAction(step)
	next, _, _ := env.Step(a)
	q.Observe(a, next)

	for i := 0; i < b.N; i++ {
		q.Step()
	}
}
