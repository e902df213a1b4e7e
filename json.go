package gainsym

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// ============================================================
// JSON Serialization
// ============================================================

func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// MatrixToJSON encodes m as {"rows","cols","entries"} with entries in
// row-major order.
func MatrixToJSON(m *Matrix) (string, error) {
	entries := make([]map[string]interface{}, 0, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			entries = append(entries, m.data[i][j].toJSON())
		}
	}
	b, err := json.Marshal(map[string]interface{}{
		"rows":    m.rows,
		"cols":    m.cols,
		"entries": entries,
	})
	return string(b), err
}

func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object: %w", ErrInvalidJSON)
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field: %w", ErrInvalidJSON)
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string: %w", ErrInvalidJSON)
	}

	subObj := func(field string) (map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q: %w", typ, field, ErrInvalidJSON)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object: %w", typ, field, ErrInvalidJSON)
		}
		return m, nil
	}

	subExprs := func(field string) ([]Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q: %w", typ, field, ErrInvalidJSON)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array: %w", typ, field, ErrInvalidJSON)
		}
		out := make([]Expr, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object: %w", typ, field, i, ErrInvalidJSON)
			}
			e, err := FromJSON(m)
			if err != nil {
				return nil, fmt.Errorf("%s: %s[%d]: %w", typ, field, i, err)
			}
			out[i] = e
		}
		return out, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q: %w", typ, field, ErrInvalidJSON)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s: %q must be a non-empty string: %w", typ, field, ErrInvalidJSON)
		}
		return s, nil
	}

	switch typ {
	case "num":
		val, err := subString("value")
		if err != nil {
			return nil, err
		}
		r := new(big.Rat)
		if _, ok := r.SetString(val); !ok {
			return nil, fmt.Errorf("invalid num value %q: %w", val, ErrInvalidJSON)
		}
		return &Num{val: r}, nil

	case "sym":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		if name != "ln" {
			return nil, fmt.Errorf("func %q: %w", name, ErrInvalidJSON)
		}
		return S(name), nil

	case "add":
		terms, err := subExprs("terms")
		if err != nil {
			return nil, err
		}
		return AddOf(terms...), nil

	case "mul":
		factors, err := subExprs("factors")
		if err != nil {
			return nil, err
		}
		return MulOf(factors...), nil

	case "pow":
		baseM, err := subObj("base")
		if err != nil {
			return nil, err
		}
		expM, err := subObj("exp")
		if err != nil {
			return nil, err
		}
		base, err := FromJSON(baseM)
		if err != nil {
			return nil, fmt.Errorf("pow: base: %w", err)
		}
		exp, err := FromJSON(expM)
		if err != nil {
			return nil, fmt.Errorf("pow: exp: %w", err)
		}
		return PowOf(base, exp), nil

	case "func":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		argM, err := subObj("arg")
		if err != nil {
			return nil, err
		}
		arg, err := FromJSON(argM)
		if err != nil {
			return nil, fmt.Errorf("func: arg: %w", err)
		}
		return funcOf(name, arg).Simplify(), nil
	}
	return nil, fmt.Errorf("unknown expression type %q: %w", typ, ErrInvalidJSON)
}
