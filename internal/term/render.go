package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/core"
)

const tabWidth = 8

// Render draws a frame. Running frames carry a status header above the
// board; the ended frame draws the board at the top with the closing label
// beneath it.
func (t *Terminal) Render(f core.Frame) error {
	t.screen.Clear()
	if f.Ended {
		t.drawBoard(f.Grid, 0)
		t.drawText(0, f.Grid.H+2, fmt.Sprintf("\t\t\t\tGAME ENDED AT %d GEN", f.Generation), t.styles.text)
	} else {
		t.drawText(0, 0, Header(f.Generation, f.Speed), t.styles.text)
		t.drawBoard(f.Grid, 1)
	}
	t.screen.Show()
	return nil
}

// Header is the status line shown above running frames.
func Header(generation, speed int) string {
	return fmt.Sprintf("GEN %d;\t SPEED: %d", generation, speed)
}

func (t *Terminal) drawBoard(g *core.Grid, top int) {
	glyph := t.opts.Glyphs
	for x := 0; x < g.W+2; x++ {
		t.screen.SetContent(x, top, glyph.Border, nil, t.styles.border)
		t.screen.SetContent(x, top+g.H+1, glyph.Border, nil, t.styles.border)
	}
	for row := 0; row < g.H; row++ {
		y := top + 1 + row
		t.screen.SetContent(0, y, glyph.Border, nil, t.styles.border)
		for col := 0; col < g.W; col++ {
			if g.Get(row, col) {
				t.screen.SetContent(col+1, y, glyph.Alive, nil, t.styles.alive)
			} else {
				t.screen.SetContent(col+1, y, glyph.Dead, nil, t.styles.dead)
			}
		}
		t.screen.SetContent(g.W+1, y, glyph.Border, nil, t.styles.border)
	}
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(expandTabs(s)) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(s string) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
