//go:build gym
// +build gym

package gym_test

import (
	"testing"

	"github.com/samuelfneumann/taxilearn/environment/gym"
	"github.com/samuelfneumann/taxilearn/environment/taxi"
	ts "github.com/samuelfneumann/taxilearn/timestep"
)

func TestTaxi(t *testing.T) {
	defer gym.Shutdown()

	env, err := gym.New(gym.Taxi, 0.95, 123)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer env.Close()

	if env.Discount() != 0.95 {
		t.Errorf("discount: want 0.95 have %v", env.Discount())
	}

	states, err := env.ObservationSpec().Size()
	if err != nil {
		t.Fatalf("observationSpec: %v", err)
	}
	actions, err := env.ActionSpec().Size()
	if err != nil {
		t.Fatalf("actionSpec: %v", err)
	}
	if states < taxi.States || actions != taxi.Actions {
		t.Errorf("size: want at least (%d, %d) have (%d, %d)", taxi.States,
			taxi.Actions, states, actions)
	}

	step, err := env.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !step.First() || step.Number != 0 {
		t.Errorf("reset: unexpected timestep %v", step)
	}

	for i := 0; i < 50; i++ {
		next, done, err := env.Step(i % taxi.Actions)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if _, err := taxi.Decode(next.Observation); err != nil {
			t.Errorf("step %d: %v", i, err)
		}
		if done != (next.StepType == ts.Last) {
			t.Errorf("step %d: done %v but step type %v", i, done,
				next.StepType)
		}
		if done {
			if _, err := env.Reset(); err != nil {
				t.Fatalf("reset: %v", err)
			}
		}
	}
}
