package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/metrics"
	"github.com/san-kum/rodopios/internal/sink"
	"github.com/san-kum/rodopios/internal/viz"
	"github.com/san-kum/rodopios/internal/watch"
)

func animateTrace(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	opts := viz.Options{
		Name:     src.name,
		Interval: cfg.Interval(),
		Theme:    cfg.Theme,
		Sink:     sink.NewLogged(animator.NopSink{}, logger),
	}

	if watchFile {
		if src.path == "" {
			return fmt.Errorf("--watch needs a trace file, %s is a stored run", args[0])
		}
		w, err := watch.New(src.path, logger)
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go w.Run(ctx)
		opts.Reload = w.Traces()
	}

	logger.Info("animating", zap.String("run", src.name), zap.Duration("interval", cfg.Interval()))
	return viz.Run(src.trace(), a, opts)
}

// callPrinter writes one line per sink command, stamped with the time
// since the session began.
type callPrinter struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Duration
}

func (p *callPrinter) SetHighlight(slot alphabet.SlotID, active bool) {
	p.print(sink.Highlight(slot, active))
}

func (p *callPrinter) SetCenterLabel(text string) {
	p.print(sink.Label(text))
}

func (p *callPrinter) print(c sink.Call) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "%8s  %s\n", p.now().Round(time.Millisecond), c)
}

func replayTrace(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	board := sink.NewBoard()
	counter := metrics.NewCounter(a.Len())
	printer := &callPrinter{w: out}
	opts := []animator.Option{
		animator.WithInterval(cfg.Interval()),
		animator.WithObserver(counter),
		animator.WithLogger(logger),
	}

	if realtime {
		start := time.Now()
		printer.now = func() time.Duration { return time.Since(start) }
		anim := animator.New(sink.Tee{board, printer}, opts...)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		s := anim.Start(src.trace(), a)
		select {
		case <-s.Done():
		case <-ctx.Done():
			anim.Cancel()
		}
	} else {
		clock := animator.NewManualScheduler()
		printer.now = clock.Now
		anim := animator.New(sink.Tee{board, printer}, append(opts, animator.WithScheduler(clock))...)
		anim.Start(src.trace(), a)
		clock.RunUntilIdle(0)
	}

	c := counter.Counts()
	snap := board.Snapshot()
	fmt.Fprintf(out, "\nsteps: %d  resolved: %d  unresolved: %d  travel: %d\n",
		c.Steps, c.Resolved, c.Unresolved, c.Travel)
	fmt.Fprintf(out, "final label: %q  highlighted: %v\n", snap.Label, snap.Highlighted)

	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile, counter); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", zap.String("path", metricsFile))
	}
	return nil
}
