package trace

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// KeyData is the payload returned by the key-derivation backend.
type KeyData struct {
	PrivateKeyHex        string     `json:"private_key_hex,omitempty"`
	PrivateKeyBase40     string     `json:"private_key_base40,omitempty"`
	PublicKeyHex         string     `json:"public_key_uncompressed_hex,omitempty"`
	PublicKeyXBase40     string     `json:"public_key_x_base40,omitempty"`
	HashedPublicKeyHex   string     `json:"hashed_public_key_ripemd160_hex,omitempty"`
	AddressBase40        string     `json:"address_base40,omitempty"`
	AddressBase58Check   string     `json:"address_bitcoin_base58check,omitempty"`
	ScalarMultiplication []WireStep `json:"scalar_multiplication_steps"`
}

// WireStep is one step as the backend serialises it. The symbol is null
// when the running point is at infinity.
type WireStep struct {
	StepNumber int     `json:"step_number"`
	BitValue   string  `json:"bit_value"`
	Operation  string  `json:"operation"`
	PointHex   *Point  `json:"point_value_hex"`
	Angle      *int    `json:"base40_angle"`
	Symbol     *string `json:"base40_symbol"`
	Rodopios   *int    `json:"rodopios"`
}

// Trace converts the wire steps. Missing step numbers fall back to the
// 1-based position.
func (k *KeyData) Trace() Trace {
	t := make(Trace, len(k.ScalarMultiplication))
	for i, w := range k.ScalarMultiplication {
		t[i] = w.Step(i)
	}
	return t
}

func (w WireStep) Step(i int) Step {
	ord := w.StepNumber
	if ord == 0 {
		ord = i + 1
	}
	s := Step{
		Ordinal: ord,
		Meta: Metadata{
			Bit:       w.BitValue,
			Operation: w.Operation,
			Point:     w.PointHex,
			Angle:     w.Angle,
			Rodopios:  w.Rodopios,
		},
	}
	if w.Symbol != nil {
		s.Symbol = *w.Symbol
	}
	return s
}

// Wire converts a step back to its serialised form.
func (s Step) Wire() WireStep {
	w := WireStep{
		StepNumber: s.Ordinal,
		BitValue:   s.Meta.Bit,
		Operation:  s.Meta.Operation,
		PointHex:   s.Meta.Point,
		Angle:      s.Meta.Angle,
		Rodopios:   s.Meta.Rodopios,
	}
	if s.Symbol != "" {
		sym := s.Symbol
		w.Symbol = &sym
	}
	return w
}

// NewKeyData wraps a bare trace in a payload.
func NewKeyData(t Trace) *KeyData {
	k := &KeyData{ScalarMultiplication: make([]WireStep, len(t))}
	for i, s := range t {
		k.ScalarMultiplication[i] = s.Wire()
	}
	return k
}

// DecodeJSON reads a backend payload. A bare JSON array of steps is also
// accepted.
func DecodeJSON(r io.Reader) (*KeyData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	if strings.HasPrefix(trimmed, "[") {
		var steps []WireStep
		if err := json.Unmarshal(data, &steps); err != nil {
			return nil, fmt.Errorf("decode steps: %w", err)
		}
		return &KeyData{ScalarMultiplication: steps}, nil
	}

	var k KeyData
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("decode key data: %w", err)
	}
	return &k, nil
}

// CSVHeader is the column layout of the steps table export.
var CSVHeader = []string{
	"Step", "Bit", "Operation",
	"Point_X_Hex", "Point_Y_Hex",
	"Base40_Angle", "Base40_Symbol", "Rodopios",
}

// DecodeCSV reads a steps table in the CSVHeader layout.
func DecodeCSV(r io.Reader) (Trace, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	t := make(Trace, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < len(CSVHeader) {
			return nil, fmt.Errorf("csv row %d: expected %d fields, got %d", i+2, len(CSVHeader), len(rec))
		}

		ord, err := optionalInt(rec[0])
		if err != nil {
			return nil, fmt.Errorf("csv row %d step: %w", i+2, err)
		}
		angle, err := optionalInt(rec[5])
		if err != nil {
			return nil, fmt.Errorf("csv row %d angle: %w", i+2, err)
		}
		rod, err := optionalInt(rec[7])
		if err != nil {
			return nil, fmt.Errorf("csv row %d rodopios: %w", i+2, err)
		}

		s := Step{
			Symbol: rec[6],
			Meta: Metadata{
				Bit:       rec[1],
				Operation: rec[2],
				Angle:     angle,
				Rodopios:  rod,
			},
		}
		if ord != nil {
			s.Ordinal = *ord
		} else {
			s.Ordinal = i + 1
		}
		if x, y := rec[3], rec[4]; x != "" && x != Infinity {
			s.Meta.Point = &Point{X: x, Y: y}
		}
		t = append(t, s)
	}
	return t, nil
}

// Infinity is written in place of the coordinates of the point at infinity.
const Infinity = "Infinity"

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Load reads a trace file, choosing the decoder by extension. A path of
// "-" reads JSON from standard input.
func Load(path string) (*KeyData, error) {
	if path == "-" {
		return DecodeJSON(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".csv":
		t, err := DecodeCSV(f)
		if err != nil {
			return nil, err
		}
		return NewKeyData(t), nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// IsNotExist reports whether err means the trace file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
