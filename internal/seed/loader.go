// Package seed produces initial grids: from a 0/1 integer stream, from the
// built-in pattern catalogue, or from a seeded random fill.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"termlife/internal/core"
	pcore "termlife/pkg/core"
)

// Read fills g row-major from whitespace-separated integers in r. A value
// of 1 is alive, anything else dead. Reading stops at the first token that
// is not an integer or once every cell is filled; cells without a value
// keep their prior state. It returns how many cells were assigned. Only
// failures of r itself are reported.
func Read(r io.Reader, g *core.Grid) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	total := g.W * g.H
	n := 0
	for n < total && sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			break
		}
		g.Set(n/g.W, n%g.W, v == 1)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("reading initial state: %w", err)
	}
	return n, nil
}

// Random fills g from a deterministic RNG.
func Random(g *core.Grid, seed int64, density float64) {
	pcore.NewRNG(seed).FillBinary(g.Cells(), density)
}
