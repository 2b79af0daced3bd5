package environment

import (
	"testing"

	ts "github.com/samuelfneumann/taxilearn/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestDiscreteSpecSize(t *testing.T) {
	for _, n := range []int{1, 6, 500} {
		size, err := NewDiscreteSpec(Observation, n).Size()
		if err != nil {
			t.Errorf("size %d: %v", n, err)
		} else if size != n {
			t.Errorf("size: want %d have %d", n, size)
		}
	}
}

func TestSpecSizeErrors(t *testing.T) {
	one := mat.NewVecDense(1, nil)
	specs := []Spec{
		NewSpec(one, Action, one, mat.NewVecDense(1, []float64{1}),
			Continuous),
		NewSpec(mat.NewVecDense(2, nil), Action, mat.NewVecDense(2, nil),
			mat.NewVecDense(2, []float64{3, 3}), Discrete),
		NewSpec(one, Action, mat.NewVecDense(1, []float64{1}),
			mat.NewVecDense(1, []float64{5}), Discrete),
	}

	for i, spec := range specs {
		if _, err := spec.Size(); err == nil {
			t.Errorf("spec %d: expected an error", i)
		}
	}
}

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	for n := 0; n < 5; n++ {
		step := ts.New(ts.Mid, 0, 0, n)
		ended := limit.End(&step)
		if ended != (n >= 3) {
			t.Errorf("step %d: want ended %v have %v", n, n >= 3, ended)
		}
		if ended != step.Last() {
			t.Errorf("step %d: step type %v does not match ended %v", n,
				step.StepType, ended)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("non-positive step limit should panic")
		}
	}()
	NewStepLimit(0)
}
