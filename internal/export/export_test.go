package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/layout"
	"github.com/san-kum/rodopios/internal/sink"
	"github.com/san-kum/rodopios/internal/trace"
)

func intPtr(v int) *int { return &v }

func sampleTrace() trace.Trace {
	return trace.Trace{
		{Ordinal: 1, Symbol: "", Meta: trace.Metadata{Bit: "0", Operation: "Double", Rodopios: intPtr(0)}},
		{Ordinal: 2, Symbol: "β", Meta: trace.Metadata{
			Bit: "1", Operation: "Double & Add G",
			Point: &trace.Point{X: "0x79be", Y: "0x483a"},
			Angle: intPtr(9), Rodopios: intPtr(0),
		}},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTrace()); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Step,Bit,Operation,Point_X_Hex,Point_Y_Hex,Base40_Angle,Base40_Symbol,Rodopios" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "1,0,Double,Infinity,Infinity,,,0" {
		t.Errorf("unexpected first row %q", lines[1])
	}

	got, err := trace.DecodeCSV(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(got))
	}
	if got[0].Meta.Point != nil {
		t.Error("infinity should decode to a nil point")
	}
	if got[1].Symbol != "β" || got[1].Meta.Point.X != "0x79be" || *got[1].Meta.Angle != 9 {
		t.Errorf("unexpected second step %+v", got[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, trace.NewKeyData(sampleTrace())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"scalar_multiplication_steps\"") {
		t.Errorf("expected two-space indentation, got:\n%s", buf.String())
	}

	k, err := trace.DecodeJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	tr := k.Trace()
	if len(tr) != 2 || tr[0].Symbol != "" || tr[1].Symbol != "β" {
		t.Errorf("unexpected trace %+v", tr)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.csv")
	err := WriteFile(path, func(w io.Writer) error { return WriteCSV(w, sampleTrace()) })
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("Step,")) {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestWheelSVG(t *testing.T) {
	a := alphabet.Default()
	w := layout.NewWheel(320)

	board := sink.NewBoard()
	board.SetHighlight(1, true)
	board.SetCenterLabel("β")

	svg := WheelSVG(w, a, board.Snapshot())

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete svg document")
	}
	if n := strings.Count(svg, `<line id="line-s`); n != 40 {
		t.Errorf("expected 40 spokes, got %d", n)
	}
	if !strings.Contains(svg, `<line id="line-s1" `) || !strings.Contains(svg, `stroke="#FFFF00" stroke-width="3"`) {
		t.Error("highlighted spoke not styled")
	}
	if strings.Count(svg, `stroke="#FFFF00"`) != 1 {
		t.Error("expected exactly one highlighted spoke")
	}
	if !strings.Contains(svg, `font-size="24" text-anchor="middle" dominant-baseline="central" font-weight="bold">β</text>`) {
		t.Error("centre label missing")
	}

	empty := WheelSVG(w, a, sink.Snapshot{})
	if !strings.Contains(empty, `>N/A</text>`) {
		t.Error("expected N/A for empty label")
	}
}
