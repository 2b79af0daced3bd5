package experiment

import (
	"github.com/samuelfneumann/taxilearn/environment"
	"github.com/samuelfneumann/taxilearn/environment/taxi"
	ts "github.com/samuelfneumann/taxilearn/timestep"
)

// pair is a state-action pair
type pair struct {
	state, action int
}

// stubTaxi is a deterministic environment over the Taxi state space.
// A drop-off ends the episode in place, and every other action moves
// to a state determined by the current state and the action.
type stubTaxi struct {
	state    int
	resets   int
	steps    int
	neverEnd bool

	// Movement and pickup lead to states in [0, reachable)
	reachable int

	// errors to return, after failAfter successful steps
	resetErr  error
	stepErr   error
	failAfter int

	// state returned by every step when badState is set
	badState    bool
	outOfBounds int

	visited map[pair]int // next state of each visited state-action pair
}

func newStubTaxi() *stubTaxi {
	return &stubTaxi{reachable: taxi.States, visited: make(map[pair]int)}
}

func (s *stubTaxi) next(state, action int) int {
	if action == taxi.Dropoff {
		return state
	}
	return (state*7 + action*13 + 1) % s.reachable
}

func (s *stubTaxi) Reset() (ts.TimeStep, error) {
	if s.resetErr != nil {
		return ts.TimeStep{}, s.resetErr
	}
	s.state = (s.resets * 37) % taxi.States
	s.resets++
	return ts.New(ts.First, 0, s.state, 0), nil
}

func (s *stubTaxi) Step(action int) (ts.TimeStep, bool, error) {
	if s.stepErr != nil && s.steps >= s.failAfter {
		return ts.TimeStep{}, true, s.stepErr
	}
	s.steps++

	n := s.next(s.state, action)
	s.visited[pair{s.state, action}] = n
	s.state = n

	if s.badState {
		return ts.New(ts.Mid, -1, s.outOfBounds, s.steps), false, nil
	}

	done := action == taxi.Dropoff && !s.neverEnd
	t := ts.New(ts.Mid, -1, n, s.steps)
	if done {
		t.StepType = ts.Last
	}
	return t, done, nil
}

func (s *stubTaxi) ObservationSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Observation, taxi.States)
}

func (s *stubTaxi) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Action, taxi.Actions)
}
