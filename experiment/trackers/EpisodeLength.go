package trackers

import (
	"fmt"

	"github.com/samuelfneumann/taxilearn/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength saver which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Lengths returns the lengths of all finished episodes
func (e *EpisodeLength) Lengths() []int {
	out := make([]int, len(e.episodeLengths))
	copy(out, e.episodeLengths)
	return out
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	return save(e.filename, e.episodeLengths)
}

// LoadLengths loads the episode lengths saved by an EpisodeLength
// Tracker
func LoadLengths(filename string) ([]int, error) {
	var lengths []int
	if err := load(filename, &lengths); err != nil {
		return nil, fmt.Errorf("loadLengths: %w", err)
	}
	return lengths, nil
}
