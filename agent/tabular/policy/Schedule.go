package policy

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/taxilearn/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// Schedule is an exponentially decaying exploration rate:
//
//	ε(episode) = Min + (Max - Min) * exp(-DecayRate * episode)
//
// ε starts at Max on episode 0 and decays toward Min. A Schedule holds
// no state, so ε is recomputed from the episode index alone.
type Schedule struct {
	Max       float64
	Min       float64
	DecayRate float64
}

// At returns ε for the argument episode
func (s Schedule) At(episode int) float64 {
	e := s.Min + (s.Max-s.Min)*math.Exp(-s.DecayRate*float64(episode))
	return floatutils.ClipInterval(e, s.Interval())
}

// Interval returns the interval that ε is always contained in
func (s Schedule) Interval() r1.Interval {
	return r1.Interval{Min: s.Min, Max: s.Max}
}

// Validate ensures that the Schedule is valid
func (s Schedule) Validate() error {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min < 0 || s.Max > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], have [%v, %v]", s.Min,
			s.Max)
	}
	if s.Min > s.Max {
		return fmt.Errorf("minimum epsilon %v > maximum epsilon %v", s.Min,
			s.Max)
	}
	if s.DecayRate < 0 || math.IsNaN(s.DecayRate) ||
		math.IsInf(s.DecayRate, 0) {
		return fmt.Errorf("decay rate must be finite and non-negative, "+
			"have %v", s.DecayRate)
	}
	return nil
}
