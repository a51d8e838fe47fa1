package term

import (
	"github.com/gdamore/tcell/v2"

	"termlife/internal/core"
)

// Poll drains pending events without blocking and reports the quit signal
// and the adjusted speed.
func (t *Terminal) Poll() core.Input {
	quit := false
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if t.handleKey(ev) {
				quit = true
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			return core.Input{Quit: true, Speed: t.speed}
		}
	}
	return core.Input{Quit: quit, Speed: t.speed}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case t.opts.Keys.Quit:
		return true
	case t.opts.Keys.Slower:
		t.speed = t.opts.Speed.Slower(t.speed)
	case t.opts.Keys.Faster:
		t.speed = t.opts.Speed.Faster(t.speed)
	}
	return false
}
