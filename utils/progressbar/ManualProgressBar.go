// Package progressbar implements a progress bar for the terminal
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implements a progress bar that must be manually
// managed. Increment records progress and Display redraws the bar on
// the current line of its writer.
type ManualProgressBar struct {
	out             io.Writer
	width           int
	maxProgress     int
	currentProgress int
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar of width
// characters which is full after max increments
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	if width < 1 || max < 1 {
		panic(fmt.Sprintf("newManualProgressBar: width and max must be "+
			"positive, have %d and %d", width, max))
	}
	return &ManualProgressBar{
		out:         out,
		width:       width,
		maxProgress: max,
		startTime:   time.Now(),
	}
}

// Increment increments the internal progress counter
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of progress completed in [0, 1]
func (p *ManualProgressBar) Progress() float64 {
	return float64(p.currentProgress) / float64(p.maxProgress)
}

// String returns the progress bar without timing information
func (p *ManualProgressBar) String() string {
	filled := p.currentProgress * p.width / p.maxProgress

	p.bar.Reset()
	p.bar.WriteString("|")
	p.bar.WriteString(strings.Repeat("█", filled))
	p.bar.WriteString(strings.Repeat(" ", p.width-filled))
	p.bar.WriteString(fmt.Sprintf("| [%.2f%%]", p.Progress()*100))
	return p.bar.String()
}

// Display redraws the progress bar
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v elapsed: %v", p, time.Since(
		p.startTime).Truncate(time.Second))
}

// Finish displays the progress bar a final time and ends its line
func (p *ManualProgressBar) Finish() {
	p.Display()
	fmt.Fprintln(p.out)
}
