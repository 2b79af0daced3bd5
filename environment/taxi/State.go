// Package taxi implements the state encoding and reward shaping of the
// Taxi environment.
//
// The Taxi environment is a 5x5 grid with four landmark locations. A
// passenger waits at one landmark and must be dropped off at another.
// The environment itself is supplied externally (see package gym);
// this package only knows how the environment packs its state into a
// single integer and how transitions should be rewarded.
//
// The state encoding is an environment-specific contract, not a general
// algorithm. A state s is the positional-radix number
//
//	s = ((taxiRow*5 + taxiCol)*5 + passenger)*4 + destination
//
// and is decoded least-significant first with radices 4, 5 and 5, the
// remainder being the taxi row. Changing the order of the radices
// silently produces nonsensical rewards.
package taxi

import (
	"fmt"

	"github.com/samuelfneumann/taxilearn/environment"
)

const (
	Rows      int = 5
	Cols      int = 5
	Landmarks int = 4

	// InTaxi is the passenger location used when the passenger is
	// riding in the taxi
	InTaxi int = Landmarks

	States  int = Rows * Cols * (Landmarks + 1) * Landmarks // 500
	Actions int = 6
)

// Actions of the Taxi environment. Indices below Pickup are movement.
const (
	South int = iota
	North
	East
	West
	Pickup
	Dropoff
)

// ErrStateOutOfRange is returned when an integer state cannot be
// decoded into a Taxi state. This indicates that the environment's
// state space does not match the Taxi encoding.
var ErrStateOutOfRange = environment.ErrStateOutOfRange

// Coord is a (row, col) position on the grid
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// landmarks are the fixed grid coordinates of the four locations at
// which passengers are picked up and dropped off
var landmarks = [Landmarks]Coord{
	{0, 0},
	{0, 4},
	{4, 0},
	{4, 3},
}

// Landmark returns the coordinate of landmark i. The second return
// value is false if i is not a landmark, which is the case for InTaxi.
func Landmark(i int) (Coord, bool) {
	if i < 0 || i >= Landmarks {
		return Coord{}, false
	}
	return landmarks[i], true
}

// State is a decoded Taxi state
type State struct {
	TaxiRow     int
	TaxiCol     int
	Passenger   int // landmark index, or InTaxi
	Destination int // landmark index
}

// Decode decodes an integer state of the Taxi environment
func Decode(state int) (State, error) {
	if state < 0 {
		return State{}, fmt.Errorf("decode: %w: %d < 0", ErrStateOutOfRange,
			state)
	}

	s := state
	destination := s % Landmarks
	s /= Landmarks
	passenger := s % (Landmarks + 1)
	s /= Landmarks + 1
	col := s % Cols
	s /= Cols
	row := s

	if row >= Rows {
		return State{}, fmt.Errorf("decode: %w: state %d has taxi row %d",
			ErrStateOutOfRange, state, row)
	}

	return State{
		TaxiRow:     row,
		TaxiCol:     col,
		Passenger:   passenger,
		Destination: destination,
	}, nil
}

// Encode encodes the State as an integer. Encode is the inverse of
// Decode for valid states.
func (s State) Encode() int {
	state := s.TaxiRow
	state = state*Cols + s.TaxiCol
	state = state*(Landmarks+1) + s.Passenger
	state = state*Landmarks + s.Destination
	return state
}

// Taxi returns the coordinate of the taxi
func (s State) Taxi() Coord {
	return Coord{s.TaxiRow, s.TaxiCol}
}

// PassengerInTaxi returns whether the passenger is riding in the taxi
func (s State) PassengerInTaxi() bool {
	return s.Passenger == InTaxi
}

func (s State) String() string {
	passenger := "in taxi"
	if c, ok := Landmark(s.Passenger); ok {
		passenger = c.String()
	}
	dest, _ := Landmark(s.Destination)

	return fmt.Sprintf("Taxi | At: %v  |  Passenger: %v  |  Destination: %v",
		s.Taxi(), passenger, dest)
}
