package taxi

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Shaped rewards
const (
	DropoffReward      float64 = 100.0
	PickupReward       float64 = 50.0
	IllegalReward      float64 = -20.0
	LoadedStepReward   float64 = -2.0
	UnloadedStepReward float64 = -4.0
)

// Shaper implements the environment.Task interface, replacing the
// native Taxi reward with a shaped reward. Moving without the passenger
// costs more than moving with the passenger, which encourages picking
// the passenger up first, and only a drop-off which ends the episode at
// the correct destination is rewarded.
//
// The shaped reward is a pure function of the state, the termination
// flag, and the action. The raw environment reward is ignored.
type Shaper struct{}

// NewShaper returns a new Shaper
func NewShaper() Shaper {
	return Shaper{}
}

// GetReward returns the shaped reward for taking action and observing
// state and done. The reward is the sum of a drop-off component, a
// pickup component, and a movement component, of which at most one is
// non-zero for any action.
func (s Shaper) GetReward(_ float64, state int, done bool,
	action int) (float64, error) {
	decoded, err := Decode(state)
	if err != nil {
		return 0, fmt.Errorf("getReward: %w", err)
	}
	taxi := decoded.Taxi()

	var drop, pickup, step float64

	switch action {
	case Dropoff:
		dest, _ := Landmark(decoded.Destination)
		if done && dest == taxi {
			drop = DropoffReward
		} else {
			drop = IllegalReward
		}

	case Pickup:
		// A passenger in the taxi has no landmark coordinate and can
		// never match the taxi position
		if loc, ok := Landmark(decoded.Passenger); ok && loc == taxi {
			pickup = PickupReward
		} else {
			pickup = IllegalReward
		}
	}

	if action < Pickup {
		if decoded.PassengerInTaxi() {
			step = LoadedStepReward
		} else {
			step = UnloadedStepReward
		}
	}

	return drop + pickup + step, nil
}

// Min returns the minimum reward attainable in a single step
func (s Shaper) Min() float64 {
	return floats.Min(s.rewards())
}

// Max returns the maximum reward attainable in a single step
func (s Shaper) Max() float64 {
	return floats.Max(s.rewards())
}

func (s Shaper) rewards() []float64 {
	return []float64{DropoffReward, PickupReward, IllegalReward,
		LoadedStepReward, UnloadedStepReward}
}
