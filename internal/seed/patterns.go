package seed

import (
	"errors"
	"fmt"
	"sort"

	"termlife/internal/core"
)

// ErrUnknownPattern is returned for names missing from the catalogue.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int // {row, col}
}

// Bounds returns the pattern height and width.
func (p Pattern) Bounds() (h, w int) {
	for _, c := range p.Cells {
		if c[0]+1 > h {
			h = c[0] + 1
		}
		if c[1]+1 > w {
			w = c[1] + 1
		}
	}
	return h, w
}

// Place draws the pattern centred on g. Cells wrap if the pattern is
// larger than the grid.
func (p Pattern) Place(g *core.Grid) {
	h, w := p.Bounds()
	top, left := (g.H-h)/2, (g.W-w)/2
	for _, c := range p.Cells {
		g.Set(top+c[0], left+c[1], true)
	}
}

var patterns = map[string]Pattern{}

// Register adds a pattern to the catalogue under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Patterns lists the catalogue sorted by name.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func init() {
	Register(Pattern{Name: "block", Description: "2x2 still life",
		Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}})
	Register(Pattern{Name: "beehive", Description: "six-cell still life",
		Cells: [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}}})
	Register(Pattern{Name: "blinker", Description: "period-2 oscillator",
		Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}})
	Register(Pattern{Name: "toad", Description: "period-2 oscillator",
		Cells: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}})
	Register(Pattern{Name: "glider", Description: "diagonal spaceship, never halts on a torus",
		Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}})
	Register(Pattern{Name: "r-pentomino", Description: "methuselah, settles after ~1100 generations on an open plane",
		Cells: [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}})

	var pulsar [][2]int
	for _, r := range []int{0, 5, 7, 12} {
		for _, c := range []int{2, 3, 4, 8, 9, 10} {
			pulsar = append(pulsar, [2]int{r, c}, [2]int{c, r})
		}
	}
	Register(Pattern{Name: "pulsar", Description: "period-3 oscillator, runs until quit", Cells: pulsar})
}
