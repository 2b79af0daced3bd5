// Package gym provides access to OpenAI Gym's discrete environments,
// such as Taxi-v3, through the Go bindings for OpenAI Gym found at
// https://github.com/samuelfneumann/GoGym.
//
// Only environments whose observation and action spaces are both
// one-dimensional discrete spaces can be used, since states and actions
// index rows and columns of a tabular value function.
package gym

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gogym"
	env "github.com/samuelfneumann/taxilearn/environment"
	ts "github.com/samuelfneumann/taxilearn/timestep"
	"gonum.org/v1/gonum/mat"
)

// Taxi is the name of the Taxi environment in the OpenAI Gym suite
const Taxi = "Taxi-v3"

var _ env.Closer = &GymEnv{}

// GymEnv implements access to a discrete OpenAI Gym environment using
// GoGym
type GymEnv struct {
	gogym.Environment

	currentStep ts.TimeStep
	discount    float64
	action      *mat.VecDense
}

// New returns a new GymEnv with the given name, which must be a legal
// name from the OpenAI Gym suite. The environment is seeded with seed
// and reset before being returned.
func New(name string, discount float64, seed uint64) (*GymEnv, error) {
	goGymEnv, err := gogym.Make(name)
	if err != nil {
		return nil, fmt.Errorf("new: could not create environment: %w", err)
	}
	goGymEnv.Seed(int(seed))

	g := &GymEnv{
		Environment: goGymEnv,
		discount:    discount,
		action:      mat.NewVecDense(1, nil),
	}

	for _, s := range []env.Spec{g.ObservationSpec(), g.ActionSpec()} {
		if _, err := s.Size(); err != nil {
			goGymEnv.Close()
			return nil, fmt.Errorf("new: environment %v is not tabular: "+
				"%w", name, err)
		}
	}

	if _, err := g.Reset(); err != nil {
		goGymEnv.Close()
		return nil, fmt.Errorf("new: %w", err)
	}

	return g, nil
}

// state converts a GoGym observation to a state index
func state(obs *mat.VecDense) (int, error) {
	if obs.Len() != 1 {
		return 0, fmt.Errorf("state: %w: observation has %d dimensions",
			env.ErrStateOutOfRange, obs.Len())
	}

	s := obs.AtVec(0)
	if s != math.Trunc(s) {
		return 0, fmt.Errorf("state: %w: observation %v is not an integer",
			env.ErrStateOutOfRange, s)
	}
	return int(s), nil
}

// Step takes a single environmental step
func (g *GymEnv) Step(action int) (ts.TimeStep, bool, error) {
	g.action.SetVec(0, float64(action))
	obs, reward, done, err := g.Environment.Step(g.action)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not step "+
			"GoGym environment: %w", err)
	}

	s, err := state(obs)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", err)
	}

	t := ts.New(ts.Mid, reward, s, g.currentStep.Number+1)
	if done {
		t.StepType = ts.Last
	}
	g.currentStep = t

	return t, done, nil
}

// Reset resets the environment to some starting state
func (g *GymEnv) Reset() (ts.TimeStep, error) {
	obs, err := g.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not reset "+
			"environment: %w", err)
	}

	s, err := state(obs)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	t := ts.New(ts.First, 0, s, 0)
	g.currentStep = t

	return t, nil
}

// Discount returns the discount the environment was created with
func (g *GymEnv) Discount() float64 {
	return g.discount
}

// ObservationSpec returns the observation spec of the environment
func (g *GymEnv) ObservationSpec() env.Spec {
	return spec(g.ObservationSpace(), env.Observation)
}

// ActionSpec returns the action specification of the environment
func (g *GymEnv) ActionSpec() env.Spec {
	return spec(g.ActionSpace(), env.Action)
}

// space is the part of a GoGym space that is needed to build a Spec
type space interface {
	Low() []*mat.VecDense
	High() []*mat.VecDense
}

func spec(sp space, t env.SpecType) env.Spec {
	var low, high *mat.VecDense
	var cardinality env.Cardinality

	switch sp.(type) {
	case *gogym.DiscreteSpace:
		cardinality = env.Discrete
	case *gogym.BoxSpace:
		cardinality = env.Continuous
	default:
		panic(fmt.Sprintf("spec: invalid %v space type, package gym "+
			"supports only GoGym's BoxSpace or DiscreteSpace", t))
	}
	low = sp.Low()[0]
	high = sp.High()[0]

	shape := mat.NewVecDense(low.Len(), nil)
	return env.NewSpec(shape, t, low, high, cardinality)
}

// Close performs resource cleanup after the environment is no longer
// needed
func (g *GymEnv) Close() error {
	g.Environment.Close()
	return nil
}

// Shutdown finalizes GoGym. It should be called once, after all
// environments have been closed.
func Shutdown() {
	gogym.Close()
}
