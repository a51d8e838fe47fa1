// Package headless runs the simulation without a screen, reporting
// progress on a text progress bar.
package headless

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"termlife/internal/core"
)

// Progress is a Renderer that advances a progress bar once per frame and
// remembers the last frame it saw.
type Progress struct {
	bar        *pb.ProgressBar
	frames     int
	generation int
	population int
	ended      bool
}

// NewProgress starts a bar writing to w. total is the generation cap; zero
// means unbounded and shows a plain counter.
func NewProgress(w io.Writer, total int) *Progress {
	bar := pb.New(total).SetWriter(w)
	if total <= 0 {
		bar.SetTemplateString(`{{counters . }} generations`)
	}
	return &Progress{bar: bar.Start()}
}

// Render implements core.Renderer.
func (p *Progress) Render(f core.Frame) error {
	p.generation = f.Generation
	p.population = f.Grid.Population()
	if f.Ended {
		p.ended = true
		p.bar.SetCurrent(int64(f.Generation))
		p.bar.Finish()
		return nil
	}
	p.frames++
	p.bar.Increment()
	return nil
}

// Frames returns how many running frames were drawn.
func (p *Progress) Frames() int { return p.frames }

// Ended reports whether the closing frame was drawn.
func (p *Progress) Ended() bool { return p.ended }

// Population returns the live-cell count of the last frame.
func (p *Progress) Population() int { return p.population }

// Limit is an InputSource that never changes speed and asks to quit once
// Max generations have run. Max zero never quits.
type Limit struct {
	Max   int
	Speed int
	polls int
}

// Poll implements core.InputSource.
func (l *Limit) Poll() core.Input {
	l.polls++
	return core.Input{Quit: l.Max > 0 && l.polls >= l.Max, Speed: l.Speed}
}
