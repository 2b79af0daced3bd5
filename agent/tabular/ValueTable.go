// Package tabular implements the dense action-value table shared by
// tabular agents
package tabular

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/taxilearn/utils/matutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ValueTable is a dense (states x actions) table of action-value
// estimates. Row s holds the estimates of all actions in state s.
//
// The dimensions of a ValueTable never change after construction, and
// every entry is updated in place.
type ValueTable struct {
	values *mat.Dense
}

// NewValueTable returns a new zero-initialized ValueTable
func NewValueTable(states, actions int) *ValueTable {
	if states < 1 || actions < 1 {
		panic(fmt.Sprintf("value table must have at least one state and "+
			"action, have (%d x %d)", states, actions))
	}
	return &ValueTable{mat.NewDense(states, actions, nil)}
}

// Dims returns the number of states and actions in the table
func (v *ValueTable) Dims() (states, actions int) {
	return v.values.Dims()
}

// At returns the value of action in state
func (v *ValueTable) At(state, action int) float64 {
	return v.values.At(state, action)
}

// Set sets the value of action in state
func (v *ValueTable) Set(state, action int, value float64) {
	v.values.Set(state, action, value)
}

// Add adds delta to the value of action in state
func (v *ValueTable) Add(state, action int, delta float64) {
	v.values.Set(state, action, v.values.At(state, action)+delta)
}

// Row returns the action values of state. The returned slice shares
// the backing data of the table and must not be modified.
func (v *ValueTable) Row(state int) []float64 {
	return v.values.RawRowView(state)
}

// Max returns the maximum action value in state
func (v *ValueTable) Max(state int) float64 {
	return floats.Max(v.Row(state))
}

// Argmax returns the action with the maximum value in state. If
// multiple actions have the maximum value, the lowest action index is
// returned.
func (v *ValueTable) Argmax(state int) int {
	return floats.MaxIdx(v.Row(state))
}

// Matrix returns the table as a matrix with states as rows and actions
// as columns. The returned matrix is a copy.
func (v *ValueTable) Matrix() *mat.Dense {
	return mat.DenseCopyOf(v.values)
}

// Clone returns a deep copy of the table
func (v *ValueTable) Clone() *ValueTable {
	return &ValueTable{mat.DenseCopyOf(v.values)}
}

// Equal returns whether two tables have the same dimensions and
// entries
func (v *ValueTable) Equal(other *ValueTable) bool {
	return mat.Equal(v.values, other.values)
}

// Entry is a single (state, action) entry of a ValueTable
type Entry struct {
	State, Action int
	Value         float64
}

// NonZero returns all non-zero entries of the table in row-major order
func (v *ValueTable) NonZero() []Entry {
	var entries []Entry
	states, actions := v.Dims()
	for s := 0; s < states; s++ {
		for a := 0; a < actions; a++ {
			if value := v.values.At(s, a); value != 0 {
				entries = append(entries, Entry{s, a, value})
			}
		}
	}
	return entries
}

// WriteTo writes the table to w as a dense (states x actions) grid of
// float64 values in gonum's binary matrix format
func (v *ValueTable) WriteTo(w io.Writer) (int64, error) {
	n, err := v.values.MarshalBinaryTo(w)
	if err != nil {
		return int64(n), fmt.Errorf("writeTo: could not encode table: %w",
			err)
	}
	return int64(n), nil
}

// Save saves the table to the file filename
func (v *ValueTable) Save(filename string) error {
	return matutils.SaveFile(filename, v)
}

// ReadFrom reads a table written by WriteTo
func ReadFrom(r io.Reader) (*ValueTable, error) {
	var values mat.Dense
	if _, err := values.UnmarshalBinaryFrom(r); err != nil {
		return nil, fmt.Errorf("readFrom: could not decode table: %w", err)
	}

	if values.IsEmpty() {
		return nil, fmt.Errorf("readFrom: table is empty")
	}

	return &ValueTable{&values}, nil
}

// Load loads a table saved with Save
func Load(filename string) (*ValueTable, error) {
	var table *ValueTable
	err := matutils.LoadFile(filename, func(r io.Reader) error {
		var err error
		table, err = ReadFrom(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return table, nil
}

func (v *ValueTable) String() string {
	states, actions := v.Dims()
	return fmt.Sprintf("ValueTable | Shape: (%d, %d)  |  Non-zero: %d",
		states, actions, len(v.NonZero()))
}
