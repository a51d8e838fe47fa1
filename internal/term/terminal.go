// Package term renders the simulation to a terminal with tcell and polls
// the keyboard without blocking.
package term

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/config"
	"termlife/internal/core"
)

// Glyphs are the three symbol classes drawn on screen.
type Glyphs struct {
	Border, Alive, Dead rune
}

// Keys are the runes bound to loop controls.
type Keys struct {
	Quit, Slower, Faster rune
}

// Options configures a Terminal.
type Options struct {
	Glyphs       Glyphs
	Keys         Keys
	Speed        core.SpeedControl
	InitialSpeed int
}

// FromConfig converts validated settings into terminal options.
func FromConfig(c *config.Config) Options {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return Options{
		Glyphs:       Glyphs{Border: first(c.Glyphs.Border), Alive: first(c.Glyphs.Alive), Dead: first(c.Glyphs.Dead)},
		Keys:         Keys{Quit: first(c.Keys.Quit), Slower: first(c.Keys.Slower), Faster: first(c.Keys.Faster)},
		Speed:        c.Speed(),
		InitialSpeed: c.InitialSpeed,
	}
}

// Terminal is both the Renderer and the InputSource for terminal runs.
type Terminal struct {
	screen tcell.Screen
	opts   Options
	styles styles
	speed  int
}

type styles struct {
	border, alive, dead, text tcell.Style
}

// The 8-colour palette: the border keeps the terminal defaults, live cells
// are blue on white and dead cells cyan on white.
func defaultStyles() styles {
	return styles{
		border: tcell.StyleDefault,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorSilver),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorTeal).Background(tcell.ColorSilver),
		text:   tcell.StyleDefault,
	}
}

// Open creates and initialises the process terminal.
func Open(opts Options) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return New(s, opts)
}

// New initialises s and wraps it. The caller must Close the Terminal.
func New(s tcell.Screen, opts Options) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Terminal{
		screen: s,
		opts:   opts,
		styles: defaultStyles(),
		speed:  opts.Speed.Clamp(opts.InitialSpeed),
	}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// WaitForKey blocks until a key is pressed, the screen is closed or ctx is
// done.
func (t *Terminal) WaitForKey(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			switch t.screen.PollEvent().(type) {
			case nil, *tcell.EventKey:
				return
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
}
