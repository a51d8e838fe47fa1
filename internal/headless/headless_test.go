package headless

import (
	"bytes"
	"context"
	"testing"
	"time"

	"termlife/internal/core"
	"termlife/internal/loop"
)

func TestLimitQuitsAtMax(t *testing.T) {
	l := &Limit{Max: 3, Speed: 4}
	for i := 1; i <= 3; i++ {
		in := l.Poll()
		if in.Speed != 4 {
			t.Fatalf("speed = %d", in.Speed)
		}
		if in.Quit != (i == 3) {
			t.Fatalf("poll %d quit=%v", i, in.Quit)
		}
	}
}

func TestLimitZeroNeverQuits(t *testing.T) {
	l := &Limit{}
	for i := 0; i < 100; i++ {
		if l.Poll().Quit {
			t.Fatal("unbounded limit quit")
		}
	}
}

func TestHeadlessRunStopsAtCap(t *testing.T) {
	seed := core.NewGrid(10, 10)
	for _, c := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		seed.Set(c[0], c[1], true)
	}
	var out bytes.Buffer
	progress := NewProgress(&out, 20)
	l := loop.New(seed, progress, &Limit{Max: 20, Speed: 1}, loop.Options{
		Speed:        core.SpeedControl{Min: 1, Max: 10},
		InitialSpeed: 1,
		FrameUnit:    0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if l.Reason() != loop.ReasonQuit || l.Generation() != 20 {
		t.Fatalf("reason=%q generation=%d", l.Reason(), l.Generation())
	}
	if progress.Frames() != 20 || !progress.Ended() {
		t.Fatalf("frames=%d ended=%v", progress.Frames(), progress.Ended())
	}
	if progress.Population() != 5 {
		t.Fatalf("glider population = %d, want 5", progress.Population())
	}
	if out.Len() == 0 {
		t.Fatal("progress bar wrote nothing")
	}
}
