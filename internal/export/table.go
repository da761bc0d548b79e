// Package export writes traces and wheel snapshots to files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/rodopios/internal/trace"
)

// WriteCSV writes the steps table. The point at infinity is written as
// "Infinity" and missing numbers as empty cells.
func WriteCSV(w io.Writer, t trace.Trace) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(trace.CSVHeader); err != nil {
		return err
	}

	for _, s := range t {
		x, y := trace.Infinity, trace.Infinity
		if p := s.Meta.Point; p != nil {
			x, y = p.X, p.Y
		}
		row := []string{
			strconv.Itoa(s.Ordinal),
			s.Meta.Bit,
			s.Meta.Operation,
			x,
			y,
			optional(s.Meta.Angle),
			s.Symbol,
			optional(s.Meta.Rodopios),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func optional(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// WriteJSON writes v indented by two spaces.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFile creates path and hands it to fn.
func WriteFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
