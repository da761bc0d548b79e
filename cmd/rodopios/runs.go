package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func importTrace(cmd *cobra.Command, args []string) error {
	results := store().ImportAll(cmd.Context(), args, runName, workers)

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn("import failed", zap.String("path", r.Path), zap.Error(r.Err))
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			continue
		}
		logger.Info("run imported", zap.String("id", r.RunID), zap.Int("steps", r.Steps))
		fmt.Fprintln(out, r.RunID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d imports failed", failed, len(results))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store().List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSTEPS\tLAST")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.LastSymbol,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	a, err := wheelAlphabet()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tr := src.trace()
	fmt.Fprintf(out, "run: %s\n", src.name)
	for _, f := range src.fields() {
		if f[1] != "" {
			fmt.Fprintf(out, "%s: %s\n", strings.ToLower(f[0]), f[1])
		}
	}
	fmt.Fprintf(out, "steps: %d (%d resolved)\n\n", len(tr), tr.Resolved(a))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tBIT\tOPERATION\tSYMBOL\tSLOT\tANGLE\tRODOPIOS")
	for _, s := range tr {
		slot, _ := a.Locate(s.Symbol)
		sym := s.Symbol
		if sym == "" {
			sym = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Ordinal, s.Meta.Bit, s.Meta.Operation, sym, slot,
			optional(s.Meta.Angle), optional(s.Meta.Rodopios))
	}
	return w.Flush()
}

func deleteRun(cmd *cobra.Command, args []string) error {
	if err := store().Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
