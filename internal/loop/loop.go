// Package loop drives a Life simulation generation by generation, keeping
// the three-generation window used for halt detection.
package loop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"termlife/internal/core"
	"termlife/internal/logging"
	"termlife/pkg/sims/life"
)

// State is the loop's position in its two-state lifecycle.
type State int

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}
	return "running"
}

// Reason explains why a loop halted.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonQuit        Reason = "quit"
	ReasonStillLife   Reason = "still life"
	ReasonOscillating Reason = "oscillating"
	ReasonCancelled   Reason = "cancelled"
)

// Options configures a Loop.
type Options struct {
	Speed core.SpeedControl
	// InitialSpeed is clamped to Speed before use.
	InitialSpeed int
	// FrameUnit is the delay per speed step between generations.
	FrameUnit time.Duration
	Logger    *slog.Logger
}

// Loop owns the prev/current/next buffers and advances them one generation
// per Step.
type Loop struct {
	prev, current, next *core.Grid

	renderer core.Renderer
	input    core.InputSource
	opts     Options
	log      *slog.Logger

	generation int
	speed      int
	state      State
	reason     Reason

	sleep func(ctx context.Context, d time.Duration) error
}

// New builds a loop around seed. The seed grid is copied; prev starts as a
// second copy of it, so the period-2 check cannot fire on generation 0.
func New(seed *core.Grid, r core.Renderer, in core.InputSource, opts Options) *Loop {
	if opts.Speed.Min <= 0 {
		opts.Speed.Min = 1
	}
	if opts.Speed.Max < opts.Speed.Min {
		opts.Speed.Max = opts.Speed.Min
	}
	lg := opts.Logger
	if lg == nil {
		lg = logging.NewLogger("info", io.Discard)
	}
	return &Loop{
		prev:     seed.Clone(),
		current:  seed.Clone(),
		next:     core.NewGrid(seed.W, seed.H),
		renderer: r,
		input:    in,
		opts:     opts,
		log:      lg,
		speed:    opts.Speed.Clamp(opts.InitialSpeed),
		state:    Running,
		sleep:    sleepContext,
	}
}

// Generation returns the number of completed iterations.
func (l *Loop) Generation() int { return l.generation }

// Speed returns the most recently polled speed.
func (l *Loop) Speed() int { return l.speed }

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Reason returns why the loop halted, or ReasonNone while running.
func (l *Loop) Reason() Reason { return l.reason }

// Current exposes the current generation. Callers must not modify it.
func (l *Loop) Current() *core.Grid { return l.current }

// Previous exposes the generation before Current.
func (l *Loop) Previous() *core.Grid { return l.prev }

// Delay is the pause that follows a generation at the current speed.
func (l *Loop) Delay() time.Duration {
	return time.Duration(l.speed) * l.opts.FrameUnit
}

// Step performs one iteration: advance, poll input, test for halt, render
// the pre-rotation generation, then rotate buffers. It reports whether the
// loop is still running. On the halting iteration the ended frame is drawn
// after rotation. Step on a halted loop does nothing.
func (l *Loop) Step() (bool, error) {
	if l.state == Halted {
		return false, nil
	}

	life.Advance(l.current, l.next)

	in := l.input.Poll()
	l.speed = l.opts.Speed.Clamp(in.Speed)

	verdict := life.Classify(l.prev, l.current, l.next)
	cont := !in.Quit && verdict == life.Running

	if err := l.renderer.Render(core.Frame{Grid: l.current, Generation: l.generation, Speed: l.speed}); err != nil {
		return false, fmt.Errorf("render generation %d: %w", l.generation, err)
	}
	if l.log.Enabled(context.Background(), logging.LevelTrace) {
		l.log.Log(context.Background(), logging.LevelTrace, "generation",
			"gen", l.generation, "population", l.current.Population(), "speed", l.speed)
	}

	l.generation++
	l.rotate()

	if cont {
		return true, nil
	}
	switch {
	case in.Quit:
		l.reason = ReasonQuit
	case verdict == life.StillLife:
		l.reason = ReasonStillLife
	default:
		l.reason = ReasonOscillating
	}
	return false, l.halt()
}

// rotate shifts the window: prev takes current, current takes next. The
// oldest buffer is recycled as the next write target.
func (l *Loop) rotate() {
	l.prev, l.current, l.next = l.current, l.next, l.prev
}

func (l *Loop) halt() error {
	l.state = Halted
	l.log.Info("simulation halted", "reason", string(l.reason), "generation", l.generation)
	if err := l.renderer.Render(core.Frame{Grid: l.current, Generation: l.generation, Speed: l.speed, Ended: true}); err != nil {
		return fmt.Errorf("render final frame: %w", err)
	}
	return nil
}

// Run steps until the loop halts or ctx is cancelled, sleeping Delay between
// generations. Cancellation halts the loop with ReasonCancelled and still
// draws the ended frame.
func (l *Loop) Run(ctx context.Context) error {
	for {
		running, err := l.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		if err := l.sleep(ctx, l.Delay()); err != nil {
			l.reason = ReasonCancelled
			return l.halt()
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
