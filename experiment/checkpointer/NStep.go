package checkpointer

import (
	"fmt"
)

// NStep implements checkpointing every N episodes
type NStep struct {
	interval int
	object   Saver

	// filename returns the filename of the file to save the object in.
	//
	// If each checkpoint should be saved in a separate file with an
	// incremented number as a suffix (e.g. table1.bin, table2.bin, ...,
	// tableK.bin), use FilenameEnumerator to create the function.
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n episodes.
func NewNStep(n int, object Saver, filename func() string) *NStep {
	if n < 1 {
		panic(fmt.Sprintf("newNStep: checkpoint interval must be "+
			"positive, have %d", n))
	}
	return &NStep{
		interval: n,
		object:   object,
		filename: filename,
	}
}

// Checkpoint saves the tracked object if episode is a multiple of the
// checkpoint interval
func (n *NStep) Checkpoint(episode int) error {
	if episode%n.interval != 0 {
		return nil
	}
	if err := n.object.Save(n.filename()); err != nil {
		return fmt.Errorf("checkpoint: episode %d: %w", episode, err)
	}
	return nil
}
