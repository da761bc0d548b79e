package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/automation"
	"github.com/san-kum/rodopios/internal/trace"
	"github.com/san-kum/rodopios/internal/tui"
	"github.com/san-kum/rodopios/internal/viz"
)

func runPlaylist(cmd *cobra.Command, args []string) error {
	pl, err := automation.LoadPlaylist(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	r := &automation.Runner{
		Alphabet: a,
		Interval: cfg.Interval(),
		Resolve: func(src string) (trace.Trace, error) {
			s, err := loadSource(src)
			if err != nil {
				return nil, err
			}
			return s.trace(), nil
		},
		Store:  store(),
		Logger: logger,
	}
	if !realtime {
		r.NewScheduler = func() animator.Scheduler { return animator.NewManualScheduler() }
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if pl.Name != "" {
		fmt.Fprintf(out, "playlist: %s\n", pl.Name)
	}
	if pl.Description != "" {
		fmt.Fprintf(out, "%s\n", pl.Description)
	}
	fmt.Fprintln(out)

	results, runErr := r.Run(ctx, pl)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSOURCE\tSTEPS\tRESOLVED\tINTERVAL\tFINAL\tSAVED")
	for _, res := range results {
		final := res.Final
		if res.Cancelled {
			final = "(cancelled)"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
			res.Item, viz.Ellipsize(res.Label, 32), res.Steps, res.Resolved,
			res.Interval, final, res.RunID)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

// pickRun backs the bare command: choose a stored run and animate it.
func pickRun(cmd *cobra.Command, args []string) error {
	runs, err := store().List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return cmd.Help()
	}

	id, err := tui.Pick(runs)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	logger.Debug("picked run", zap.String("id", id))
	return animateTrace(cmd, []string{id})
}
