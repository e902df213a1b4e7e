package derive

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/njchilds90/gainsym"
)

// Format selects how results are written.
type Format string

const (
	FormatText  Format = "text"
	FormatLaTeX Format = "latex"
	FormatJSON  Format = "json"
)

// ParseFormat accepts text, latex or json, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatLaTeX, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%q (want text, latex or json): %w", s, ErrUnknownFormat)
}

// WriteRatios writes e1..e4 in order.
func WriteRatios(w io.Writer, r *Ratios, f Format) error {
	switch f {
	case FormatText:
		for i, e := range r.E {
			if _, err := fmt.Fprintf(w, "e%d =\n%s\n", i+1, gainsym.PrettyPrint(e)); err != nil {
				return err
			}
		}
		return nil
	case FormatLaTeX:
		for i, e := range r.E {
			if _, err := fmt.Fprintf(w, "e_{%d} = %s\n", i+1, e.LaTeX()); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		out, err := ratiosJSON(r)
		if err != nil {
			return err
		}
		return writeJSON(w, out)
	}
	return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
}

func ratiosJSON(r *Ratios) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(r.E))
	for i, e := range r.E {
		s, err := gainsym.ToJSON(e)
		if err != nil {
			return nil, fmt.Errorf("e%d: %w", i+1, err)
		}
		out[fmt.Sprintf("e%d", i+1)] = json.RawMessage(s)
	}
	return out, nil
}

// WriteSystem writes T3ᵀ followed by x1.
func WriteSystem(w io.Writer, s *System, f Format) error {
	t3t := s.T3.Transpose()
	switch f {
	case FormatText:
		_, err := fmt.Fprintf(w, "T3^T =\n%s\nx1 =\n%s", gainsym.PrettyPrintMatrix(t3t), gainsym.PrettyPrintMatrix(s.X1))
		return err
	case FormatLaTeX:
		_, err := fmt.Fprintf(w, "T_3^{T} = %s\nx_1 = %s\n", t3t.LaTeX(), s.X1.LaTeX())
		return err
	case FormatJSON:
		out, err := systemJSON(s)
		if err != nil {
			return err
		}
		return writeJSON(w, out)
	}
	return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
}

type systemDoc struct {
	T3Transpose json.RawMessage `json:"t3_transpose"`
	X1          json.RawMessage `json:"x1"`
}

func systemJSON(s *System) (*systemDoc, error) {
	t, err := gainsym.MatrixToJSON(s.T3.Transpose())
	if err != nil {
		return nil, fmt.Errorf("T3^T: %w", err)
	}
	x, err := gainsym.MatrixToJSON(s.X1)
	if err != nil {
		return nil, fmt.Errorf("x1: %w", err)
	}
	return &systemDoc{T3Transpose: json.RawMessage(t), X1: json.RawMessage(x)}, nil
}

// WriteReport writes the ratios followed by the system. JSON output is a
// single object with "ratios" and "system" members.
func WriteReport(w io.Writer, r *Ratios, s *System, f Format) error {
	if f != FormatJSON {
		if err := WriteRatios(w, r, f); err != nil {
			return err
		}
		return WriteSystem(w, s, f)
	}
	ratios, err := ratiosJSON(r)
	if err != nil {
		return err
	}
	system, err := systemJSON(s)
	if err != nil {
		return err
	}
	return writeJSON(w, struct {
		Ratios map[string]json.RawMessage `json:"ratios"`
		System *systemDoc                 `json:"system"`
	}{ratios, system})
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
