//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"termlife/internal/config"
	"termlife/internal/core"
	"termlife/internal/loop"
	"termlife/internal/render"
	"termlife/internal/term"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const statusBand = 20

// Game adapts a simulation loop to the ebiten.Game interface. It is also
// the loop's Renderer and InputSource.
type Game struct {
	loop    *loop.Loop
	painter *render.GridPainter
	timer   *core.FixedStep

	keys  term.Keys
	speed core.SpeedControl

	// Input gathered between generations.
	quit     bool
	curSpeed int

	shown      *core.Grid
	generation int
	shownSpeed int
	ended      bool

	scale int
	err   error
}

// New constructs a Game for a w*h grid.
func New(w, h, scale int, opts term.Options) *Game {
	return &Game{
		painter:  render.NewGridPainter(w, h, render.DefaultPalette()),
		timer:    core.NewFixedStep(0),
		keys:     opts.Keys,
		speed:    opts.Speed,
		curSpeed: opts.Speed.Clamp(opts.InitialSpeed),
		shown:    core.NewGrid(w, h),
		scale:    scale,
	}
}

// Attach binds the loop the game drives.
func (g *Game) Attach(l *loop.Loop) {
	g.loop = l
	g.timer.SetInterval(l.Delay())
}

// Render implements core.Renderer by snapshotting the frame for Draw.
func (g *Game) Render(f core.Frame) error {
	g.shown.CopyFrom(f.Grid)
	g.generation = f.Generation
	g.shownSpeed = f.Speed
	g.ended = f.Ended
	return nil
}

// Poll implements core.InputSource with the keys captured since the last
// generation.
func (g *Game) Poll() core.Input {
	in := core.Input{Quit: g.quit, Speed: g.curSpeed}
	g.quit = false
	return in
}

func (g *Game) captureInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		switch r {
		case g.keys.Quit:
			g.quit = true
		case g.keys.Slower:
			g.curSpeed = g.speed.Slower(g.curSpeed)
		case g.keys.Faster:
			g.curSpeed = g.speed.Faster(g.curSpeed)
		}
	}
}

// Update handles per-frame logic and advances the simulation when its
// delay has elapsed. After the ended frame any key closes the window.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.ended {
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}
	g.captureInput()
	if !g.timer.ShouldStep() {
		return nil
	}
	if _, err := g.loop.Step(); err != nil {
		g.err = err
		return err
	}
	g.timer.SetInterval(g.loop.Delay())
	return nil
}

// Draw renders the last snapshot and its status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.shown.Cells(), g.scale)
	_, fh := g.painter.Size()
	label := term.Header(g.generation, g.shownSpeed)
	if g.ended {
		label = fmt.Sprintf("GAME ENDED AT %d GEN", g.generation)
	}
	text.Draw(screen, label, basicfont.Face7x13, 4, fh*g.scale+14, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fw, fh := g.painter.Size()
	return fw * g.scale, fh*g.scale + statusBand
}

// Run opens a window and drives a loop seeded with seed until the user
// closes it.
func Run(seed *core.Grid, cfg *config.Config, opts loop.Options, scale int) (*loop.Loop, error) {
	if scale <= 0 {
		scale = 8
	}
	game := New(seed.W, seed.H, scale, term.FromConfig(cfg))
	l := loop.New(seed, game, game, opts)
	game.Attach(l)

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("termlife")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return l, err
	}
	return l, nil
}
