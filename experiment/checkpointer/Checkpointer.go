// Package checkpointer implements checkpointing of objects, such as
// value tables, during training
package checkpointer

// Saver is an object that can be saved to a file
type Saver interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves objects based on the index of the
// episode which has just finished
type Checkpointer interface {
	Checkpoint(episode int) error
}
