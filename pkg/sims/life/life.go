// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid
// together with the halt test used by the simulation loop.
package life

import "termlife/internal/core"

// CountLiveNeighbors returns the number of live cells among the eight
// toroidal neighbours of (row, col). The cell itself is not counted.
func CountLiveNeighbors(g *core.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance writes the generation following current into next. current is
// only read.
func Advance(current, next *core.Grid) {
	for row := 0; row < current.H; row++ {
		for col := 0; col < current.W; col++ {
			n := CountLiveNeighbors(current, row, col)
			next.Set(row, col, NextState(current.Get(row, col), n))
		}
	}
}

// Verdict classifies the newest generation against the two before it.
type Verdict int

const (
	// Running means the pattern is still changing.
	Running Verdict = iota
	// StillLife means next equals current.
	StillLife
	// Oscillating means next equals prev (period 2).
	Oscillating
)

func (v Verdict) String() string {
	switch v {
	case StillLife:
		return "still life"
	case Oscillating:
		return "period-2 oscillation"
	default:
		return "running"
	}
}

// Classify compares next with current and then with prev. Only period-1 and
// period-2 repeats are detected.
func Classify(prev, current, next *core.Grid) Verdict {
	if next.Equal(current) {
		return StillLife
	}
	if next.Equal(prev) {
		return Oscillating
	}
	return Running
}

// ShouldContinue reports whether the simulation should keep going after
// next was produced from current.
func ShouldContinue(prev, current, next *core.Grid) bool {
	return Classify(prev, current, next) == Running
}
