package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rodopios/internal/analysis"
	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/config"
	"github.com/san-kum/rodopios/internal/export"
	"github.com/san-kum/rodopios/internal/layout"
	"github.com/san-kum/rodopios/internal/sink"
	"github.com/san-kum/rodopios/internal/trace"
)

// writeOutput sends fn's output to the -o file, or to the command's
// stdout when none was given.
func writeOutput(cmd *cobra.Command, fn func(io.Writer) error) error {
	if outFile == "" {
		return fn(cmd.OutOrStdout())
	}
	return export.WriteFile(outFile, fn)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	return writeOutput(cmd, func(w io.Writer) error {
		return export.WriteCSV(w, src.trace())
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	return writeOutput(cmd, func(w io.Writer) error {
		return export.WriteJSON(w, src.key)
	})
}

func renderSVG(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	board := sink.NewBoard()
	clock := animator.NewManualScheduler()
	anim := animator.New(board, animator.WithScheduler(clock), animator.WithLogger(logger))
	anim.Start(src.trace(), a)
	clock.RunUntilIdle(stopAt)
	anim.Release()

	svg := export.WheelSVG(layout.NewWheel(cfg.Size), a, board.Snapshot())
	return writeOutput(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, svg+"\n")
		return err
	})
}

func plotTrace(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	tr := src.trace()
	if len(tr) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", src.name)
	fmt.Fprintf(out, "steps: %d\n\n", len(tr))

	series := []struct {
		data    []float64
		caption string
	}{
		{analysis.SlotSeries(tr, a), "slot (-1 unresolved)"},
		{analysis.Rodopios(tr, a), "rodopios"},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, analysis.HistogramToASCII(analysis.Summarize(tr, a), a, 40))

	if sp := analysis.CircularSpectrum(tr, a); sp.Peak != 0 {
		dir := "forward"
		if sp.Peak < 0 {
			dir = "backward"
		}
		fmt.Fprintf(out, "\ndominant cycle: %.1f steps per turn, %s (strength %.2f)\n",
			sp.Period(), dir, sp.Strength)
	}
	return nil
}

func reportTrace(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	tr := src.trace()
	fields := src.fields()
	if sp := analysis.CircularSpectrum(tr, a); sp.Peak != 0 {
		fields = append(fields, [2]string{"Dominant cycle",
			fmt.Sprintf("%.1f steps per turn (bin %+d)", sp.Period(), sp.Peak)})
	}

	md := analysis.Markdown(analysis.Report{
		Title:   src.name,
		Fields:  fields,
		Summary: analysis.Summarize(tr, a),
	}, a)

	out := cmd.OutOrStdout()
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprint(out, md)
		return nil
	}
	rendered, err := r.Render(md)
	if err != nil {
		fmt.Fprint(out, md)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}

func encodeValue(cmd *cobra.Command, args []string) error {
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}
	v, ok := new(big.Int).SetString(args[0], 0)
	if !ok {
		return fmt.Errorf("invalid number %q", args[0])
	}

	out := cmd.OutOrStdout()
	encoded, err := a.Encode(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, encoded)
	if !showTrace {
		return nil
	}

	tr, err := trace.FromSymbols(encoded, a)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSYMBOL\tANGLE\tRODOPIOS")
	for _, s := range tr {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Ordinal, s.Symbol, optional(s.Meta.Angle), optional(s.Meta.Rodopios))
	}
	return w.Flush()
}

func decodeSymbols(cmd *cobra.Command, args []string) error {
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}
	v, err := a.Decode(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n0x%x\n", v.String(), v)
	return nil
}

func listAlphabet(cmd *cobra.Command, args []string) error {
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tSYMBOL\tANGLE")
	for i, s := range a.Symbols() {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i, s, a.NumberToAngle(i))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTERVAL\t")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		mark := ""
		if p.IntervalMs == cfg.IntervalMs {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%dms\t%s\n", name, p.IntervalMs, mark)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 20))
	fmt.Fprintf(cmd.OutOrStdout(), "current: %v\n", cfg.Interval())
	return nil
}
