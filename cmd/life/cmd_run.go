package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"termlife/internal/app"
	"termlife/internal/config"
	"termlife/internal/core"
	"termlife/internal/headless"
	"termlife/internal/journal"
	"termlife/internal/logging"
	"termlife/internal/loop"
	"termlife/internal/seed"
	"termlife/internal/term"
)

type runOptions struct {
	ui        string
	pattern   string
	useRandom bool
	random    int64
	density   float64
	input     string
	maxGen    int
	scale     int
}

func newRunCmd() *cobra.Command {
	flagCfg := config.Default()
	opts := runOptions{ui: "term", density: 0.3, scale: 8}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation",
		Example: `  life run < glider.txt
  life run --pattern pulsar
  life run --ui headless --random 42 --max-gen 500 --frame-unit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.useRandom = cmd.Flags().Changed("random")
			return runSimulation(cmd, cfg, opts)
		},
	}
	flagCfg.Bind(cmd.Flags())
	cmd.Flags().StringVar(&opts.ui, "ui", opts.ui, "front-end: term, gui, headless")
	cmd.Flags().StringVar(&opts.pattern, "pattern", "", "start from a built-in pattern (see 'life patterns')")
	cmd.Flags().Int64Var(&opts.random, "random", 0, "start from a random fill with this seed")
	cmd.Flags().Float64Var(&opts.density, "density", opts.density, "live-cell probability for --random")
	cmd.Flags().StringVar(&opts.input, "input", "", "read the initial state from this file instead of stdin")
	cmd.Flags().IntVar(&opts.maxGen, "max-gen", 0, "headless: stop after this many generations (0 = until stable)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "gui: pixels per cell")
	return cmd
}

// loadSeed builds the initial grid and a short description of its origin.
func loadSeed(cmd *cobra.Command, cfg *config.Config, opts runOptions) (*core.Grid, string, error) {
	g := core.NewGrid(cfg.Width, cfg.Height)
	switch {
	case opts.pattern != "":
		p, err := seed.Lookup(opts.pattern)
		if err != nil {
			return nil, "", err
		}
		p.Place(g)
		return g, "pattern:" + p.Name, nil
	case opts.useRandom:
		seed.Random(g, opts.random, opts.density)
		return g, fmt.Sprintf("random:%d", opts.random), nil
	}

	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, "", fmt.Errorf("opening initial state: %w", err)
		}
		defer f.Close()
		r, source = f, "file:"+opts.input
	}
	if _, err := seed.Read(r, g); err != nil {
		return nil, "", err
	}
	return g, source, nil
}

func runSimulation(cmd *cobra.Command, cfg *config.Config, opts runOptions) error {
	grid, source, err := loadSeed(cmd, cfg, opts)
	if err != nil {
		return err
	}

	var fallback io.Writer = io.Discard
	if opts.ui == "headless" {
		fallback = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.Open(cfg.Logging.Level, cfg.Logging.File, fallback)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("starting run", "source", source, "width", cfg.Width, "height", cfg.Height,
		"population", grid.Population(), "ui", opts.ui)

	loopOpts := loop.Options{
		Speed:        cfg.Speed(),
		InitialSpeed: cfg.InitialSpeed,
		FrameUnit:    cfg.FrameUnit,
		Logger:       logger,
	}

	started := time.Now()
	var l *loop.Loop
	switch opts.ui {
	case "gui":
		// ebiten must own the main goroutine, so the GUI path skips the
		// errgroup used below.
		l, err = app.Run(grid, cfg, loopOpts, opts.scale)
	case "term", "headless":
		l, err = runWithSignals(cmd.Context(), cmd.ErrOrStderr(), grid, cfg, opts, loopOpts)
	default:
		return fmt.Errorf("unknown ui %q (valid: term, gui, headless)", opts.ui)
	}
	if err != nil {
		return err
	}

	reason := string(l.Reason())
	if l.State() == loop.Running {
		reason = "closed"
	}
	logger.Info("run finished", "generation", l.Generation(), "reason", reason)
	if opts.ui == "headless" {
		fmt.Fprintf(cmd.OutOrStdout(), "halted at generation %d: %s (population %d)\n",
			l.Generation(), reason, l.Current().Population())
	}
	return recordRun(cmd.Context(), cfg, logger, journal.Run{
		StartedAt:   started,
		FinishedAt:  time.Now(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Source:      source,
		Generations: l.Generation(),
		Reason:      reason,
		Population:  l.Current().Population(),
	})
}

// runWithSignals drives the loop on its own goroutine while a second one
// turns SIGINT/SIGTERM into cancellation.
func runWithSignals(parent context.Context, progressOut io.Writer, grid *core.Grid, cfg *config.Config, opts runOptions, loopOpts loop.Options) (*loop.Loop, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	notifySignals(sigCh)
	defer signal.Stop(sigCh)

	var l *loop.Loop
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		var err error
		l, err = runFrontEnd(gctx, progressOut, grid, cfg, opts, loopOpts)
		return err
	})
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			loopOpts.Logger.Info("received signal", "signal", sig.String())
			cancel()
		case <-gctx.Done():
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return l, nil
}

func runFrontEnd(ctx context.Context, progressOut io.Writer, grid *core.Grid, cfg *config.Config, opts runOptions, loopOpts loop.Options) (*loop.Loop, error) {
	if opts.ui == "headless" {
		progress := headless.NewProgress(progressOut, opts.maxGen)
		l := loop.New(grid, progress, &headless.Limit{Max: opts.maxGen, Speed: cfg.InitialSpeed}, loopOpts)
		return l, l.Run(ctx)
	}

	t, err := term.Open(term.FromConfig(cfg))
	if err != nil {
		return nil, err
	}
	defer t.Close()
	l := loop.New(grid, t, t, loopOpts)
	if err := l.Run(ctx); err != nil {
		return l, err
	}
	t.WaitForKey(ctx)
	return l, nil
}

func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, run journal.Run) error {
	if cfg.Journal.Path == "" {
		return nil
	}
	j, err := journal.Open(ctx, cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()
	id, err := j.Record(ctx, run)
	if err != nil {
		return err
	}
	logger.Debug("run journaled", "id", id, "path", cfg.Journal.Path)
	return nil
}
