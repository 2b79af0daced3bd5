package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion or an observation
type SpecType int

const (
	Action SpecType = iota
	Observation
)

func (s SpecType) String() string {
	if s == Action {
		return "Action"
	}
	return "Observation"
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// shape, and bounds of an action or observation in an environment
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new environment specification
// The shape argument outlines the shape of the data described by the
// specification. The argument t outlines what the specification is
// describing (e.g. actions, observations). The cardinality
// arguments describes whether the values that the spec describes are
// continuous or discrete.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic(fmt.Sprintf("shape length %v must match lower bounds length %v",
			shape.Len(), lowerBound.Len()))
	}
	if shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("shape length %v must match upper bounds length %v",
			shape.Len(), upperBound.Len()))
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// NewDiscreteSpec returns the Spec of a 1-dimensional discrete space
// with n elements, {0, 1, ..., n-1}
func NewDiscreteSpec(t SpecType, n int) Spec {
	if n < 1 {
		panic(fmt.Sprintf("discrete space must have at least one element, "+
			"have %d", n))
	}
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0.0})
	upperBound := mat.NewVecDense(1, []float64{float64(n - 1)})

	return NewSpec(shape, t, lowerBound, upperBound, Discrete)
}

// Size returns the number of elements in the 1-dimensional discrete
// space described by the Spec
func (s Spec) Size() (int, error) {
	if s.Cardinality != Discrete {
		return 0, fmt.Errorf("size: %v space is not discrete", s.Type)
	}
	if s.Shape.Len() != 1 {
		return 0, fmt.Errorf("size: %v space must be 1-dimensional, have "+
			"%d dimensions", s.Type, s.Shape.Len())
	}
	if s.LowerBound.AtVec(0) != 0 {
		return 0, fmt.Errorf("size: %v space must start at 0, starts at %v",
			s.Type, s.LowerBound.AtVec(0))
	}

	return int(s.UpperBound.AtVec(0)) + 1, nil
}
