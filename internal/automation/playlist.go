// Package automation plays scripted sequences of traces.
package automation

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/config"
	"github.com/san-kum/rodopios/internal/metrics"
	"github.com/san-kum/rodopios/internal/sink"
	"github.com/san-kum/rodopios/internal/storage"
	"github.com/san-kum/rodopios/internal/trace"
)

// Playlist defines a scripted sequence of animations
type Playlist struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Items       []Item `yaml:"items"`
}

// Item is one trace in a playlist. Exactly one of Source and Symbols
// should be set.
type Item struct {
	Source     string `yaml:"source"`
	Symbols    string `yaml:"symbols"`
	Preset     string `yaml:"preset"`
	IntervalMs int    `yaml:"interval_ms"`
	SaveAs     string `yaml:"save_as"`
}

// LoadPlaylist loads a playlist from a YAML file
func LoadPlaylist(path string) (*Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pl Playlist
	if err := yaml.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("parse playlist %s: %w", path, err)
	}
	return &pl, nil
}

// Result summarises one played item.
type Result struct {
	Item        int
	Label       string
	Steps       int
	Resolved    int
	Unresolved  int
	Final       string
	Highlighted []alphabet.SlotID
	Interval    time.Duration
	Elapsed     time.Duration
	RunID       string
	Cancelled   bool
}

// Runner plays playlist items one after another.
type Runner struct {
	Alphabet *alphabet.Alphabet
	Interval time.Duration
	// Resolve loads an item's Source.
	Resolve func(src string) (trace.Trace, error)
	// NewScheduler returns the clock for each item; nil means wall clock.
	NewScheduler func() animator.Scheduler
	// Sink additionally receives every command.
	Sink   animator.Sink
	Store  *storage.Store
	Logger *zap.Logger
}

// idler is a clock that can be driven to completion without waiting.
type idler interface {
	RunUntilIdle(limit int) int
}

// Run plays every item. It stops at the first error, or when ctx is done,
// returning the results gathered so far.
func (r *Runner) Run(ctx context.Context, pl *Playlist) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]Result, 0, len(pl.Items))

	for i, item := range pl.Items {
		logger.Info("playing item",
			zap.Int("item", i+1),
			zap.Int("of", len(pl.Items)),
			zap.String("source", item.label()))

		res, err := r.play(ctx, i, item, logger)
		if err != nil {
			return results, fmt.Errorf("item %d: %w", i+1, err)
		}
		results = append(results, res)
		if res.Cancelled {
			return results, ctx.Err()
		}
	}
	return results, nil
}

func (it Item) label() string {
	if it.Source != "" {
		return it.Source
	}
	return it.Symbols
}

func (r *Runner) interval(item Item) (time.Duration, error) {
	switch {
	case item.IntervalMs > 0:
		return time.Duration(item.IntervalMs) * time.Millisecond, nil
	case item.Preset != "":
		p := config.GetPreset(item.Preset)
		if p == nil {
			return 0, fmt.Errorf("unknown preset %q", item.Preset)
		}
		return p.Interval(), nil
	case r.Interval > 0:
		return r.Interval, nil
	}
	return animator.DefaultInterval, nil
}

func (r *Runner) load(item Item) (trace.Trace, error) {
	switch {
	case item.Symbols != "":
		return trace.FromSymbols(item.Symbols, r.Alphabet)
	case item.Source != "" && r.Resolve != nil:
		return r.Resolve(item.Source)
	case item.Source != "":
		k, err := trace.Load(item.Source)
		if err != nil {
			return nil, err
		}
		return k.Trace(), nil
	}
	return nil, trace.ErrEmptyInput
}

func (r *Runner) play(ctx context.Context, idx int, item Item, logger *zap.Logger) (Result, error) {
	tr, err := r.load(item)
	if err != nil {
		return Result{}, err
	}
	interval, err := r.interval(item)
	if err != nil {
		return Result{}, err
	}

	board := sink.NewBoard()
	var target animator.Sink = board
	if r.Sink != nil {
		target = sink.Tee{board, r.Sink}
	}
	counter := metrics.NewCounter(r.Alphabet.Len())
	opts := []animator.Option{
		animator.WithInterval(interval),
		animator.WithObserver(counter),
		animator.WithLogger(logger),
	}
	var sched animator.Scheduler
	if r.NewScheduler != nil {
		sched = r.NewScheduler()
		opts = append(opts, animator.WithScheduler(sched))
	}

	anim := animator.New(target, opts...)
	start := time.Now()
	s := anim.Start(tr, r.Alphabet)
	if c, ok := sched.(idler); ok {
		c.RunUntilIdle(0)
	}

	res := Result{Item: idx + 1, Label: item.label(), Interval: interval}
	select {
	case <-s.Done():
	case <-ctx.Done():
		anim.Release()
		res.Cancelled = true
	}
	res.Elapsed = time.Since(start)

	n := counter.Counts()
	snap := board.Snapshot()
	res.Steps = n.Steps
	res.Resolved = n.Resolved
	res.Unresolved = n.Unresolved
	res.Final = snap.Label
	res.Highlighted = snap.Highlighted

	if item.SaveAs != "" && r.Store != nil && !res.Cancelled {
		runID, err := r.Store.Save(item.SaveAs, trace.NewKeyData(tr))
		if err != nil {
			return res, err
		}
		res.RunID = runID
	}
	return res, nil
}
